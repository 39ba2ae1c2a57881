package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-cash-ledger/pkg/wal"
)

var t0 = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

func newTran(owner string, account domain.AccountName, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:              uuid.New(),
		OwnerID:         owner,
		Type:            domain.TransactionTypeIncome,
		Amount:          domain.NewMoney(amount),
		Category:        "Salary",
		Description:     "pay",
		Division:        domain.DivisionPersonal,
		Account:         account,
		TransactionDate: t0,
		CreatedAt:       t0,
	}
}

func balance(t *testing.T, s *Store, owner string, name domain.AccountName) domain.Money {
	t.Helper()
	a, err := s.Accounts().Get(context.Background(), owner, name)
	require.NoError(t, err)
	return a.Balance
}

func TestAtomicCommit(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore()
	require.NoError(t, err)

	tran := newTran("u1", domain.AccountBank, 100)
	err = s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		require.NoError(t, accounts.Ensure(ctx, "u1", domain.AccountBank, t0))
		require.NoError(t, accounts.AddBalance(ctx, "u1", domain.AccountBank, tran.Amount))
		return trans.Create(ctx, tran)
	})
	require.NoError(t, err)

	assert.Equal(t, domain.NewMoney(100), balance(t, s, "u1", domain.AccountBank))
	got, err := s.Transactions().Get(ctx, tran.ID)
	require.NoError(t, err)
	assert.Equal(t, tran.Description, got.Description)
}

func TestAtomicRollback(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore()
	require.NoError(t, err)

	boom := errors.New("boom")
	tran := newTran("u1", domain.AccountCash, 50)
	err = s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		require.NoError(t, accounts.Ensure(ctx, "u1", domain.AccountCash, t0))
		require.NoError(t, accounts.AddBalance(ctx, "u1", domain.AccountCash, tran.Amount))
		require.NoError(t, trans.Create(ctx, tran))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Accounts().Get(ctx, "u1", domain.AccountCash)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = s.Transactions().Get(ctx, tran.ID)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestDebitGuard(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore()
	require.NoError(t, err)

	err = s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		if err := accounts.Ensure(ctx, "u1", domain.AccountWallet, t0); err != nil {
			return err
		}
		if err := accounts.AddBalance(ctx, "u1", domain.AccountWallet, domain.NewMoney(10)); err != nil {
			return err
		}
		return accounts.Debit(ctx, "u1", domain.AccountWallet, domain.NewMoney(11))
	})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	_, err = s.Accounts().Get(ctx, "u1", domain.AccountWallet)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		return accounts.Debit(ctx, "u1", domain.AccountWallet, domain.NewMoney(1))
	})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCreateDuplicateAccount(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore()
	require.NoError(t, err)

	create := func() error {
		return s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
			return accounts.Create(ctx, domain.NewAccount("u1", domain.AccountBank, t0))
		})
	}
	require.NoError(t, create())
	assert.ErrorIs(t, create(), domain.ErrDuplicateAccount)

	list, err := s.Accounts().List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWritesOutsideAtomicAreRejected(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)
	err = s.Accounts().AddBalance(context.Background(), "u1", domain.AccountBank, 1)
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestUpdateKeepsCreatedAtAndUndo(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore()
	require.NoError(t, err)

	tran := newTran("u1", domain.AccountBank, 10)
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Create(ctx, tran)
	}))

	changed := *tran
	changed.Description = "changed"
	changed.CreatedAt = t0.Add(time.Hour)
	err = s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		if err := trans.Update(ctx, &changed); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)
	got, _ := s.Transactions().Get(ctx, tran.ID)
	assert.Equal(t, "pay", got.Description)

	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Update(ctx, &changed)
	}))
	got, _ = s.Transactions().Get(ctx, tran.ID)
	assert.Equal(t, "changed", got.Description)
	assert.True(t, got.CreatedAt.Equal(t0))
}

func TestListAndScanOrdering(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore()
	require.NoError(t, err)

	a := newTran("u1", domain.AccountBank, 1)
	a.TransactionDate = t0.Add(-48 * time.Hour)
	a.Category = "Food"
	b := newTran("u1", domain.AccountBank, 2)
	b.CreatedAt = t0.Add(time.Minute)
	b.Description = "Groceries at Market"
	other := newTran("u2", domain.AccountBank, 3)
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		for _, tr := range []*domain.Transaction{a, b, other} {
			if err := trans.Create(ctx, tr); err != nil {
				return err
			}
		}
		return nil
	}))

	list, err := s.Transactions().List(ctx, "u1", domain.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)

	list, err = s.Transactions().List(ctx, "u1", domain.TransactionFilter{SearchText: "MARKET"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	list, err = s.Transactions().List(ctx, "u1", domain.TransactionFilter{Category: "food"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	all, err := s.Transactions().Scan(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, b.ID, all[0].ID)
}

func TestWALReplay(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.wal")
	w, err := wal.Open(path)
	require.NoError(t, err)
	s, err := NewStore(WithWAL(w))
	require.NoError(t, err)

	keep := newTran("u1", domain.AccountBank, 100)
	gone := newTran("u1", domain.AccountBank, 5)
	require.NoError(t, s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		if err := accounts.Ensure(ctx, "u1", domain.AccountBank, t0); err != nil {
			return err
		}
		if err := accounts.AddBalance(ctx, "u1", domain.AccountBank, domain.NewMoney(105)); err != nil {
			return err
		}
		if err := trans.Create(ctx, keep); err != nil {
			return err
		}
		return trans.Create(ctx, gone)
	}))
	require.NoError(t, s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		if err := accounts.AddBalance(ctx, "u1", domain.AccountBank, domain.NewMoney(-5)); err != nil {
			return err
		}
		return trans.Delete(ctx, gone.ID)
	}))
	// 失敗的 unit 不會寫入 WAL
	_ = s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		return accounts.Debit(ctx, "u1", domain.AccountBank, domain.NewMoney(1000))
	})
	require.NoError(t, s.Close())

	w, err = wal.Open(path)
	require.NoError(t, err)
	restored, err := NewStore(WithWAL(w))
	require.NoError(t, err)
	defer restored.Close()

	assert.Equal(t, domain.NewMoney(100), balance(t, restored, "u1", domain.AccountBank))
	_, err = restored.Transactions().Get(ctx, keep.ID)
	assert.NoError(t, err)
	_, err = restored.Transactions().Get(ctx, gone.ID)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestWALFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	w, err := wal.Open(filepath.Join(t.TempDir(), "ledger.wal"))
	require.NoError(t, err)
	s, err := NewStore(WithWAL(w))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	err = s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		return accounts.Ensure(ctx, "u1", domain.AccountCash, t0)
	})
	require.ErrorIs(t, err, domain.ErrWALWriteFailed)
	_, err = s.Accounts().Get(ctx, "u1", domain.AccountCash)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func openWALStore(t *testing.T, path string) *Store {
	t.Helper()
	w, err := wal.Open(path)
	require.NoError(t, err)
	s, err := NewStore(WithWAL(w))
	require.NoError(t, err)
	return s
}

func credit(t *testing.T, s *Store, amount int64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		if err := accounts.Ensure(ctx, "u1", domain.AccountBank, t0); err != nil {
			return err
		}
		if err := accounts.AddBalance(ctx, "u1", domain.AccountBank, domain.NewMoney(amount)); err != nil {
			return err
		}
		return trans.Create(ctx, newTran("u1", domain.AccountBank, amount))
	}))
}

func TestRestartAfterTornTailKeepsLaterWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")

	s := openWALStore(t, path)
	credit(t, s, 100)
	require.NoError(t, s.Close())

	// 當機留下半筆紀錄
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, wal.FileModePrivate)
	require.NoError(t, err)
	_, err = f.WriteString(`{"ops":[{"kind":"account.add","ownerId":"u1`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	s = openWALStore(t, path)
	assert.Equal(t, domain.NewMoney(100), balance(t, s, "u1", domain.AccountBank))
	credit(t, s, 50)
	require.NoError(t, s.Close())

	s = openWALStore(t, path)
	defer s.Close()
	assert.Equal(t, domain.NewMoney(150), balance(t, s, "u1", domain.AccountBank))
	all, err := s.Transactions().Scan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
