package gormstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-cash-ledger/pkg/database"
)

var t0 = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client, err := database.NewClient(database.Config{
		Driver:   database.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "ledger.db"),
		LogLevel: "silent",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := New(client)
	require.NoError(t, err)
	return store
}

func income(owner string, account domain.AccountName, amount int64, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:              uuid.New(),
		OwnerID:         owner,
		Type:            domain.TransactionTypeIncome,
		Amount:          domain.NewMoney(amount),
		Category:        "Salary",
		Description:     "Monthly Salary",
		Division:        domain.DivisionOffice,
		Account:         account,
		TransactionDate: date,
		CreatedAt:       date,
	}
}

func TestAccountsLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		return accounts.Create(ctx, domain.NewAccount("u1", domain.AccountBank, t0))
	})
	require.NoError(t, err)

	err = s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		return accounts.Create(ctx, domain.NewAccount("u1", domain.AccountBank, t0))
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

	err = s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		if err := accounts.Ensure(ctx, "u1", domain.AccountBank, t0); err != nil {
			return err
		}
		if err := accounts.Ensure(ctx, "u1", domain.AccountCash, t0); err != nil {
			return err
		}
		if err := accounts.Lock(ctx, "u1", domain.AccountCash, domain.AccountBank); err != nil {
			return err
		}
		if err := accounts.AddBalance(ctx, "u1", domain.AccountBank, domain.NewMoney(100)); err != nil {
			return err
		}
		return accounts.Debit(ctx, "u1", domain.AccountBank, domain.NewMoney(30))
	})
	require.NoError(t, err)

	list, err := s.Accounts().List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.AccountBank, list[0].Name)
	assert.Equal(t, domain.NewMoney(70), list[0].Balance)
	assert.Equal(t, domain.Money(0), list[1].Balance)
}

func TestDebitErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		return accounts.Debit(ctx, "u1", domain.AccountWallet, domain.NewMoney(1))
	})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = s.Atomic(ctx, func(accounts usecase.AccountStore, _ usecase.TransactionStore) error {
		if err := accounts.Ensure(ctx, "u1", domain.AccountWallet, t0); err != nil {
			return err
		}
		return accounts.Debit(ctx, "u1", domain.AccountWallet, domain.NewMoney(1))
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// rollback 後帳戶不存在
	_, err = s.Accounts().Get(ctx, "u1", domain.AccountWallet)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRollbackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tran := income("u1", domain.AccountBank, 5, t0)
	err := s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		if err := accounts.Ensure(ctx, "u1", domain.AccountBank, t0); err != nil {
			return err
		}
		if err := trans.Create(ctx, tran); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = s.Transactions().Get(ctx, tran.ID)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	_, err = s.Accounts().Get(ctx, "u1", domain.AccountBank)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestTransactionRoundTripAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	from, to := domain.AccountBank, domain.AccountWallet
	transfer := &domain.Transaction{
		ID:              uuid.New(),
		OwnerID:         "u1",
		Type:            domain.TransactionTypeTransfer,
		Amount:          domain.Money(12345),
		Category:        domain.TransferCategory,
		Description:     domain.TransferDescription(from, to),
		Division:        domain.DivisionPersonal,
		Account:         from,
		FromAccount:     &from,
		ToAccount:       &to,
		TransactionDate: t0,
		CreatedAt:       t0,
	}
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Create(ctx, transfer)
	}))

	got, err := s.Transactions().Get(ctx, transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, transfer, got)

	changed := *got
	changed.Description = "moved"
	changed.CreatedAt = t0.Add(time.Hour)
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Update(ctx, &changed)
	}))
	got, err = s.Transactions().Get(ctx, transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, "moved", got.Description)
	assert.True(t, got.CreatedAt.Equal(t0))

	// 內容沒有變動仍算更新成功
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Update(ctx, got)
	}))

	err = s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Update(ctx, income("u1", domain.AccountBank, 1, t0))
	})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	// 已刪除的交易不能再被更新，整個 unit 回滾
	require.NoError(t, s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Delete(ctx, transfer.ID)
	}))
	err = s.Atomic(ctx, func(accounts usecase.AccountStore, trans usecase.TransactionStore) error {
		if err := accounts.Ensure(ctx, "u1", domain.AccountCash, t0); err != nil {
			return err
		}
		return trans.Update(ctx, got)
	})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	_, err = s.Accounts().Get(ctx, "u1", domain.AccountCash)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListFiltersWithoutPatterns(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := income("u1", domain.AccountBank, 1, t0.Add(-24*time.Hour))
	b := income("u1", domain.AccountCash, 2, t0)
	b.Category = "FOOD"
	b.Description = "Coffee 100% arabica_beans"
	b.Division = domain.DivisionPersonal
	c := income("u2", domain.AccountBank, 3, t0)
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		for _, tr := range []*domain.Transaction{a, b, c} {
			if err := trans.Create(ctx, tr); err != nil {
				return err
			}
		}
		return nil
	}))

	list := func(f domain.TransactionFilter) []domain.Transaction {
		t.Helper()
		out, err := s.Transactions().List(ctx, "u1", f)
		require.NoError(t, err)
		return out
	}

	all := list(domain.TransactionFilter{})
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID)

	assert.Len(t, list(domain.TransactionFilter{Category: "food"}), 1)
	assert.Len(t, list(domain.TransactionFilter{Account: "CASH"}), 1)
	assert.Len(t, list(domain.TransactionFilter{Division: "Office"}), 1)
	assert.Len(t, list(domain.TransactionFilter{SearchText: "100%"}), 1)
	assert.Len(t, list(domain.TransactionFilter{SearchText: "_beans"}), 1)
	// % 與 _ 不會被當成萬用字元
	assert.Empty(t, list(domain.TransactionFilter{SearchText: "%x"}))
	assert.Empty(t, list(domain.TransactionFilter{SearchText: "c_ffee"}))

	from := t0.Add(-time.Hour)
	ranged := list(domain.TransactionFilter{From: &from})
	require.Len(t, ranged, 1)
	assert.Equal(t, b.ID, ranged[0].ID)
}

func TestScanAndDeleteMany(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var ids []uuid.UUID
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		for i := 0; i < 5; i++ {
			owner := "u1"
			if i%2 == 1 {
				owner = "u2"
			}
			tr := income(owner, domain.AccountBank, int64(i+1), t0.Add(time.Duration(i)*time.Minute))
			ids = append(ids, tr.ID)
			if err := trans.Create(ctx, tr); err != nil {
				return err
			}
		}
		return nil
	}))

	all, err := s.Transactions().Scan(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, ids[4], all[0].ID)

	u2, err := s.Transactions().Scan(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, u2, 2)

	var deleted int64
	require.NoError(t, s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		var err error
		deleted, err = trans.DeleteMany(ctx, []uuid.UUID{ids[0], ids[1], uuid.New()})
		return err
	}))
	assert.Equal(t, int64(2), deleted)

	err = s.Atomic(ctx, func(_ usecase.AccountStore, trans usecase.TransactionStore) error {
		return trans.Delete(ctx, ids[0])
	})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestLedgerServiceOnSQLite(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := usecase.NewLedgerService(s, usecase.Options{})

	_, err := svc.RecordTransaction(ctx, usecase.RecordInput{
		OwnerID:         "u1",
		Type:            domain.TransactionTypeIncome,
		Amount:          domain.NewMoney(1000),
		Category:        "Salary",
		Description:     "pay",
		Division:        domain.DivisionOffice,
		Account:         domain.AccountBank,
		TransactionDate: t0,
	})
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			_, err := svc.RecordTransfer(ctx, "u1", domain.AccountBank, domain.AccountWallet, domain.NewMoney(10))
			return err
		})
	}
	require.NoError(t, g.Wait())

	bank, err := svc.GetAccount(ctx, "u1", domain.AccountBank)
	require.NoError(t, err)
	wallet, err := svc.GetAccount(ctx, "u1", domain.AccountWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.NewMoney(800), bank.Balance)
	assert.Equal(t, domain.NewMoney(200), wallet.Balance)

	_, err = svc.RecordTransaction(ctx, usecase.RecordInput{
		OwnerID:         "u1",
		Type:            domain.TransactionTypeExpense,
		Amount:          domain.NewMoney(500),
		Category:        "Food",
		Description:     "dinner",
		Division:        domain.DivisionPersonal,
		Account:         domain.AccountCash,
		TransactionDate: t0,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	_, err = svc.GetAccount(ctx, "u1", domain.AccountCash)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
