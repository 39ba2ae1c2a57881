package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validIncome() *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		OwnerID:         "u1",
		Type:            TransactionTypeIncome,
		Amount:          NewMoney(1000),
		Category:        "Salary",
		Description:     "Monthly Salary",
		Division:        DivisionOffice,
		Account:         AccountBank,
		TransactionDate: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want Money
		ok   bool
	}{
		{"1", NewMoney(1), true},
		{"1000", NewMoney(1000), true},
		{"12.34", Money(123400), true},
		{"0.0001", Money(1), true},
		{"-5", Money(-50000), true},
		{"1.23456", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if !tc.ok {
			require.Error(t, err, tc.in)
			assert.True(t, errors.Is(err, ErrValidation), tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestMoneyDecimalRoundTrip(t *testing.T) {
	m, err := MoneyFromDecimal(decimal.RequireFromString("250.75"))
	require.NoError(t, err)
	assert.Equal(t, "250.75", m.String())
	assert.True(t, m.Decimal().Equal(decimal.RequireFromString("250.75")))
	assert.Equal(t, "-3", NewMoney(3).Neg().String())
}

func TestParseEnums(t *testing.T) {
	_, err := ParseAccountName("account", "cash")
	assert.ErrorIs(t, err, ErrValidation)
	n, err := ParseAccountName("account", "Wallet")
	require.NoError(t, err)
	assert.Equal(t, AccountWallet, n)

	_, err = ParseTransactionType("refund")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseDivision("")
	assert.ErrorIs(t, err, ErrValidation)
	d, err := ParseDivision("Office")
	require.NoError(t, err)
	assert.Equal(t, DivisionOffice, d)
}

func TestTransactionValidate(t *testing.T) {
	require.NoError(t, validIncome().Validate())

	bads := map[string]func(tx *Transaction){
		"zero amount":       func(tx *Transaction) { tx.Amount = 0 },
		"negative amount":   func(tx *Transaction) { tx.Amount = NewMoney(-5) },
		"empty category":    func(tx *Transaction) { tx.Category = " " },
		"long description":  func(tx *Transaction) { tx.Description = strings.Repeat("x", MaxDescriptionLength+1) },
		"bad division":      func(tx *Transaction) { tx.Division = "Home" },
		"bad account":       func(tx *Transaction) { tx.Account = "Card" },
		"zero date":         func(tx *Transaction) { tx.TransactionDate = time.Time{} },
		"income with from":  func(tx *Transaction) { tx.FromAccount = ptr(AccountCash) },
		"transfer no to":    func(tx *Transaction) { tx.Type = TransactionTypeTransfer; tx.FromAccount = ptr(AccountBank) },
		"transfer mismatch": func(tx *Transaction) {
			tx.Type = TransactionTypeTransfer
			tx.FromAccount = ptr(AccountCash)
			tx.ToAccount = ptr(AccountWallet)
		},
	}
	for name, mutate := range bads {
		tx := validIncome()
		mutate(tx)
		err := tx.Validate()
		assert.ErrorIs(t, err, ErrValidation, name)
	}

	transfer := validIncome()
	transfer.Type = TransactionTypeTransfer
	transfer.FromAccount = ptr(AccountBank)
	transfer.ToAccount = ptr(AccountWallet)
	require.NoError(t, transfer.Validate())
}

func TestTransactionMutableBoundary(t *testing.T) {
	tx := validIncome()
	assert.True(t, tx.Mutable(tx.CreatedAt.Add(EditWindow)))
	assert.False(t, tx.Mutable(tx.CreatedAt.Add(EditWindow+time.Nanosecond)))
}

func TestTransactionEffect(t *testing.T) {
	tx := validIncome()
	assert.Equal(t, map[AccountName]Money{AccountBank: NewMoney(1000)}, tx.Effect())

	tx.Type = TransactionTypeExpense
	assert.Equal(t, map[AccountName]Money{AccountBank: NewMoney(-1000)}, tx.Effect())

	tx.Type = TransactionTypeTransfer
	tx.FromAccount = ptr(AccountBank)
	tx.ToAccount = ptr(AccountWallet)
	assert.Equal(t, map[AccountName]Money{AccountBank: NewMoney(-1000), AccountWallet: NewMoney(1000)}, tx.Effect())

	tx.ToAccount = ptr(AccountBank)
	assert.Equal(t, map[AccountName]Money{AccountBank: 0}, tx.Effect())
}

func TestLockOrder(t *testing.T) {
	assert.Equal(t, []AccountName{AccountBank, AccountCash, AccountWallet},
		LockOrder(AccountWallet, AccountCash, AccountBank, AccountCash))
}

func TestPatchValidateAndApply(t *testing.T) {
	bad := TransactionPatch{Amount: ptr(Money(0))}
	assert.ErrorIs(t, bad.Validate(), ErrValidation)

	tx := validIncome()
	p := TransactionPatch{
		Category: ptr("Bonus"),
		Account:  ptr(AccountCash),
	}
	require.NoError(t, p.Validate())
	assert.True(t, p.AccountChanged(tx))
	p.Apply(tx)
	assert.Equal(t, "Bonus", tx.Category)
	assert.Equal(t, AccountCash, tx.Account)
	assert.Equal(t, NewMoney(1000), tx.Amount)
}

func TestFilterMatch(t *testing.T) {
	tx := validIncome()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	f := TransactionFilter{Category: "SALARY", Account: "bank", SearchText: "monthly sal", From: &from, To: &to}.Normalized()
	assert.True(t, f.Match(tx))

	f = TransactionFilter{Division: "personal"}.Normalized()
	assert.False(t, f.Match(tx))

	f = TransactionFilter{SearchText: "(.*"}.Normalized()
	assert.False(t, f.Match(tx))

	bad := TransactionFilter{From: &to, To: &from}
	assert.ErrorIs(t, bad.Validate(), ErrValidation)
}

func TestKeyOfUsesCalendarDay(t *testing.T) {
	a := validIncome()
	b := validIncome()
	b.ID = uuid.New()
	b.TransactionDate = b.TransactionDate.Add(10 * time.Hour)
	assert.Equal(t, KeyOf(a), KeyOf(b))

	b.TransactionDate = b.TransactionDate.Add(24 * time.Hour)
	assert.NotEqual(t, KeyOf(a), KeyOf(b))
}

func TestKindOf(t *testing.T) {
	cases := map[error]ErrorKind{
		nil:                     KindNone,
		Invalid("amount", "x"):  KindValidation,
		ErrDuplicateAccount:     KindDuplicateAccount,
		ErrInsufficientBalance:  KindInsufficientBalance,
		ErrTransactionNotFound:  KindNotFound,
		ErrForbidden:            KindForbidden,
		ErrEditingWindowExpired: KindEditingWindowExpired,
		errors.New("boom"):      KindInternal,
	}
	for err, want := range cases {
		assert.Equal(t, want, KindOf(err), "%v", err)
	}
}
