package domain

import (
	"sort"
	"time"
)

// AccountName 帳戶名稱，只允許 Cash / Bank / Wallet
type AccountName string

const (
	AccountCash   AccountName = "Cash"
	AccountBank   AccountName = "Bank"
	AccountWallet AccountName = "Wallet"
)

// AccountNames 所有合法帳戶名稱
var AccountNames = []AccountName{AccountCash, AccountBank, AccountWallet}

// Valid 是否為合法帳戶名稱
func (n AccountName) Valid() bool {
	switch n {
	case AccountCash, AccountBank, AccountWallet:
		return true
	}
	return false
}

// ParseAccountName 解析帳戶名稱 (大小寫需完全一致)
func ParseAccountName(field, s string) (AccountName, error) {
	if s == "" {
		return "", Invalid(field, "is required")
	}
	n := AccountName(s)
	if !n.Valid() {
		return "", Invalid(field, "must be one of Cash, Bank, Wallet")
	}
	return n, nil
}

// Account 帳戶，以 (OwnerID, Name) 作為唯一鍵
type Account struct {
	OwnerID   string
	Name      AccountName
	Balance   Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount 建立餘額為 0 的帳戶
func NewAccount(ownerID string, name AccountName, now time.Time) *Account {
	return &Account{
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LockOrder 回傳需要鎖定的帳戶，去除重複並排序以避免死鎖
func LockOrder(names ...AccountName) []AccountName {
	ids := make([]AccountName, 0, len(names))
	seen := make(map[AccountName]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		ids = append(ids, n)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
