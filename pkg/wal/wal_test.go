package wal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Seq  int    `json:"seq"`
	Name string `json:"name"`
}

func readEntries(t *testing.T, w *WAL) []entry {
	t.Helper()
	var got []entry
	err := w.ReadAll(func(raw json.RawMessage) error {
		var e entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		got = append(got, e)
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestWriteAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	w, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(entry{Seq: 1, Name: "a"}))
	require.NoError(t, w.Write(entry{Seq: 2, Name: "b"}))
	require.NoError(t, w.Close())

	w, err = Open(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, []entry{{1, "a"}, {2, "b"}}, readEntries(t, w))

	// 重播後仍然附加在檔案尾端
	require.NoError(t, w.Write(entry{Seq: 3, Name: "c"}))
	assert.Len(t, readEntries(t, w), 3)
}

func TestReadAllIgnoresTornTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	require.NoError(t, os.WriteFile(path, []byte("{\"seq\":1,\"name\":\"a\"}\n{\"seq\":2,\"na"), FileModePrivate))

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, []entry{{1, "a"}}, readEntries(t, w))
}

func TestTornTailIsTruncatedBeforeAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	require.NoError(t, os.WriteFile(path, []byte("{\"seq\":1,\"name\":\"a\"}\n{\"seq\":2,\"na"), FileModePrivate))

	w, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []entry{{1, "a"}}, readEntries(t, w))
	require.NoError(t, w.Write(entry{Seq: 3, Name: "c"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"seq\":1,\"name\":\"a\"}\n{\"seq\":3,\"name\":\"c\"}\n", string(data))

	w, err = Open(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []entry{{1, "a"}, {3, "c"}}, readEntries(t, w))
}

func TestCorruptRecordInTheMiddleFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	require.NoError(t, os.WriteFile(path, []byte("{\"seq\":1}\n{\"seq\n{\"seq\":2}\n"), FileModePrivate))

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	err = w.ReadAll(func(json.RawMessage) error { return nil })
	assert.ErrorContains(t, err, "wal: decode")
}

// shortWriteFile 寫入一半後回傳錯誤，模擬磁碟寫入失敗
type shortWriteFile struct {
	*os.File
}

func (f shortWriteFile) Write(p []byte) (int, error) {
	n, _ := f.File.Write(p[:len(p)/2])
	return n, errors.New("disk full")
}

func TestFailedWriteIsRolledBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	w, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(entry{Seq: 1, Name: "a"}))

	osFile := w.file.(*os.File)
	w.file = shortWriteFile{File: osFile}
	assert.Error(t, w.Write(entry{Seq: 2, Name: "b"}))

	w.file = osFile
	require.NoError(t, w.Write(entry{Seq: 3, Name: "c"}))
	require.NoError(t, w.Close())

	w, err = Open(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []entry{{1, "a"}, {3, "c"}}, readEntries(t, w))
}

func TestWriteAfterClose(t *testing.T) {
	w, err := Open(filepath.Join(t.TempDir(), "ledger.wal"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.Write(entry{Seq: 1}), ErrClosed)
}
