package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TransactionFilter 查詢交易的條件，空值代表不篩選
//
// Category / Division / Account 為不分大小寫的完全比對，
// SearchText 為描述的不分大小寫子字串比對，From / To 為 transactionDate 的閉區間。
type TransactionFilter struct {
	Category   string
	Division   string
	Account    string
	SearchText string
	From       *time.Time
	To         *time.Time
}

// Normalized 回傳轉小寫、去除空白後的條件
func (f TransactionFilter) Normalized() TransactionFilter {
	f.Category = normalize(f.Category)
	f.Division = normalize(f.Division)
	f.Account = normalize(f.Account)
	f.SearchText = normalize(f.SearchText)
	return f
}

// Validate 日期區間不可顛倒
func (f TransactionFilter) Validate() error {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return Invalid("dateRange", "end date is before start date")
	}
	return nil
}

// Match 以記憶體比對單筆交易，f 需先經過 Normalized
func (f TransactionFilter) Match(t *Transaction) bool {
	if f.Category != "" && normalize(t.Category) != f.Category {
		return false
	}
	if f.Division != "" && normalize(string(t.Division)) != f.Division {
		return false
	}
	if f.Account != "" && normalize(string(t.Account)) != f.Account {
		return false
	}
	if f.SearchText != "" && !strings.Contains(strings.ToLower(t.Description), f.SearchText) {
		return false
	}
	if f.From != nil && t.TransactionDate.Before(*f.From) {
		return false
	}
	if f.To != nil && t.TransactionDate.After(*f.To) {
		return false
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SortByTransactionDateDesc transactionDate 新到舊，同時間再以 createdAt、id 排序
func SortByTransactionDateDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.TransactionDate.Equal(b.TransactionDate) {
			return a.TransactionDate.After(b.TransactionDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	})
}

// SortByCreatedAtDesc createdAt 新到舊，同時間以 id 排序 (重複偵測的保留順序)
func SortByCreatedAtDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

// DuplicateKey 判斷重複交易的組合鍵
type DuplicateKey struct {
	OwnerID     string
	Description string
	Amount      Money
	Type        TransactionType
	Account     AccountName
	Day         string // transactionDate 的 UTC 日期 (YYYY-MM-DD)
}

// KeyOf 取得交易的重複判斷鍵
func KeyOf(t *Transaction) DuplicateKey {
	return DuplicateKey{
		OwnerID:     t.OwnerID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Account:     t.Account,
		Day:         t.TransactionDate.UTC().Format("2006-01-02"),
	}
}

func (k DuplicateKey) String() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s", k.OwnerID, k.Description, k.Amount, k.Type, k.Account, k.Day)
}
