package wal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// FileModePrivate rw------- (只有擁有者可讀寫)，帳務資料使用
const FileModePrivate fs.FileMode = 0600

// ErrClosed WAL 已關閉
var ErrClosed = errors.New("wal: closed")

// file 是 WAL 需要的檔案操作，*os.File 即滿足
type file interface {
	io.ReadWriteSeeker
	io.Closer
	Sync() error
	Truncate(size int64) error
}

// WAL 是 JSON lines 格式的 Write-Ahead Log，每次寫入都會 fsync
//
// size 是最後一筆完整紀錄結尾的 offset，寫入失敗或重播遇到殘缺紀錄時
// 檔案會被截斷回 size，之後的寫入才不會接在殘缺的資料後面。
type WAL struct {
	path   string
	file   file
	size   int64
	mu     sync.Mutex
	closed bool
}

// Open 開啟或建立一個 WAL 檔案
// O_RDWR 讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func Open(path string) (*WAL, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	if err != nil {
		return nil, fmt.Errorf("wal: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("wal: stat %s: %w", path, err)
	}
	return &WAL{path: path, file: f, size: info.Size()}, nil
}

// Path WAL 檔案路徑
func (w *WAL) Path() string {
	return w.path
}

// Write 寫入一筆資料並刷入硬碟，回傳 nil 代表資料已落地
// 寫入或 fsync 失敗時會截斷回寫入前的長度。
func (w *WAL) Write(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("wal: encode: %w", err)
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if _, err := w.file.Write(line); err != nil {
		return errors.Join(fmt.Errorf("wal: write: %w", err), w.truncate(w.size))
	}
	if err := w.file.Sync(); err != nil {
		return errors.Join(fmt.Errorf("wal: sync: %w", err), w.truncate(w.size))
	}
	w.size += int64(len(line))
	return nil
}

// truncate 將檔案截斷到 size 並 fsync，呼叫者需持有 mu
func (w *WAL) truncate(size int64) error {
	if err := w.file.Truncate(size); err != nil {
		return fmt.Errorf("wal: truncate to %d: %w", size, err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("wal: sync after truncate: %w", err)
	}
	w.size = size
	return nil
}

// Close 關閉檔案，重複呼叫不會出錯
func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// ReadAll 從頭讀取所有資料
// callback 每次接收一筆 JSON，避免一次將所有資料載入記憶體。
// 沒有換行結尾的最後一行是當機留下的殘缺紀錄，會被截斷掉。
func (w *WAL) ReadAll(callback func(raw json.RawMessage) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("wal: seek: %w", err)
	}

	reader := bufio.NewReader(w.file)
	var offset int64
	for {
		line, err := reader.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return w.truncate(offset)
			}
			w.size = offset
			return nil
		}
		if err != nil {
			return fmt.Errorf("wal: read: %w", err)
		}

		start := offset
		offset += int64(len(line))
		raw := bytes.TrimSpace(line)
		if len(raw) == 0 {
			continue
		}
		if !json.Valid(raw) {
			return fmt.Errorf("wal: decode: invalid record at offset %d", start)
		}
		if err := callback(json.RawMessage(raw)); err != nil {
			return err
		}
	}
}
