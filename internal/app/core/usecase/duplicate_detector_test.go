package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
)

// seed 記錄 description 相同、同一天但不同時間的交易
func (f *fixture) seed(ownerID, description string, account domain.AccountName, amount int64, date time.Time) *domain.Transaction {
	f.t.Helper()
	f.clock.Advance(time.Second)
	tran, err := f.svc.RecordTransaction(f.ctx, usecase.RecordInput{
		OwnerID:         ownerID,
		Type:            domain.TransactionTypeIncome,
		Amount:          domain.NewMoney(amount),
		Category:        "Sales",
		Description:     description,
		Division:        domain.DivisionOffice,
		Account:         account,
		TransactionDate: date,
	})
	require.NoError(f.t, err)
	return tran
}

func seedDuplicates(f *fixture) (newest *domain.Transaction) {
	morning := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 4, 2, 20, 0, 0, 0, time.UTC)

	// group 1: 3 筆
	f.seed(owner, "Invoice 42", domain.AccountBank, 100, morning)
	f.seed(owner, "Invoice 42", domain.AccountBank, 100, evening)
	newest = f.seed(owner, "Invoice 42", domain.AccountBank, 100, morning)
	// group 2/3/4: 金額、帳戶、日期不同
	f.seed(owner, "Invoice 42", domain.AccountBank, 101, morning)
	f.seed(owner, "Invoice 42", domain.AccountCash, 100, morning)
	f.seed(owner, "Invoice 42", domain.AccountBank, 100, morning.Add(24*time.Hour))
	// group 5: 另一個 owner，2 筆
	f.seed("user-2", "Invoice 42", domain.AccountBank, 100, morning)
	f.seed("user-2", "Invoice 42", domain.AccountBank, 100, morning)
	return newest
}

func TestDuplicateScanIsDryRun(t *testing.T) {
	f := newFixture(t, usecase.Options{})
	seedDuplicates(f)
	detector := usecase.NewDuplicateDetector(f.store, usecase.DuplicateDetectorOptions{Clock: f.clock})

	res, err := detector.Scan(f.ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Kept)
	assert.Equal(t, 3, res.Deleted)
	assert.Len(t, res.Duplicates, 3)

	all, err := f.store.Transactions().Scan(f.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 8)
}

func TestDuplicateRunKeepsNewest(t *testing.T) {
	f := newFixture(t, usecase.Options{})
	newest := seedDuplicates(f)
	detector := usecase.NewDuplicateDetector(f.store, usecase.DuplicateDetectorOptions{Clock: f.clock})

	res, err := detector.Run(f.ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Kept)
	assert.Equal(t, 2, res.Deleted)

	trans, err := f.svc.ListTransactions(f.ctx, owner, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, trans, 4)
	var ids []string
	for _, tr := range trans {
		ids = append(ids, tr.ID.String())
	}
	assert.Contains(t, ids, newest.ID.String())

	// 未開啟 reconcile 時不動餘額
	assert.Equal(t, domain.NewMoney(501), f.balance(domain.AccountBank))

	// 其他 owner 不受影響
	others, err := f.svc.ListTransactions(f.ctx, "user-2", domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, others, 2)

	again, err := detector.Run(f.ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Kept)
	assert.Equal(t, 0, again.Deleted)
}

func TestDuplicateRunReconcilesBalances(t *testing.T) {
	f := newFixture(t, usecase.Options{})
	seedDuplicates(f)
	detector := usecase.NewDuplicateDetector(f.store, usecase.DuplicateDetectorOptions{
		Clock:             f.clock,
		ReconcileBalances: true,
	})

	res, err := detector.Run(f.ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Kept)
	assert.Equal(t, 3, res.Deleted)

	assert.Equal(t, domain.NewMoney(301), f.balance(domain.AccountBank))
	f.assertReplayInvariant()

	other, err := f.svc.GetAccount(f.ctx, "user-2", domain.AccountBank)
	require.NoError(t, err)
	assert.Equal(t, domain.NewMoney(100), other.Balance)
}
