package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxDescriptionLength 描述長度上限
	MaxDescriptionLength = 100
	// MaxCategoryLength 類別長度上限
	MaxCategoryLength = 64
	// EditWindow 交易建立後可修改/刪除的期限
	EditWindow = 12 * time.Hour
	// TransferCategory 轉帳固定使用的類別
	TransferCategory = "transfer"
)

// TransactionType 交易類型
type TransactionType string

const (
	// 收入
	TransactionTypeIncome TransactionType = "income"
	// 支出
	TransactionTypeExpense TransactionType = "expense"
	// 轉帳
	TransactionTypeTransfer TransactionType = "transfer"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// ParseTransactionType 解析交易類型
func ParseTransactionType(s string) (TransactionType, error) {
	if s == "" {
		return "", Invalid("type", "is required")
	}
	t := TransactionType(s)
	if !t.Valid() {
		return "", Invalid("type", "must be one of income, expense, transfer")
	}
	return t, nil
}

// Division 報表用的歸屬 (個人 / 公司)
type Division string

const (
	DivisionPersonal Division = "Personal"
	DivisionOffice   Division = "Office"
)

func (d Division) Valid() bool {
	return d == DivisionPersonal || d == DivisionOffice
}

// ParseDivision 解析 division
func ParseDivision(s string) (Division, error) {
	if s == "" {
		return "", Invalid("division", "is required")
	}
	d := Division(s)
	if !d.Valid() {
		return "", Invalid("division", "must be one of Personal, Office")
	}
	return d, nil
}

// Transaction 交易紀錄
//
// 轉帳時 Account == *FromAccount，且 FromAccount / ToAccount 都有值；
// 收入、支出則兩者皆為 nil。
type Transaction struct {
	ID              uuid.UUID
	OwnerID         string
	Type            TransactionType
	Amount          Money
	Category        string
	Description     string
	Division        Division
	Account         AccountName
	FromAccount     *AccountName
	ToAccount       *AccountName
	TransactionDate time.Time
	// CreatedAt: 系統時間，建立後不可變，用來判斷可修改期限
	CreatedAt time.Time
}

// Mutable 判斷在 now 這個時間點是否仍可修改 (含 12 小時整)
func (t *Transaction) Mutable(now time.Time) bool {
	return now.Sub(t.CreatedAt) <= EditWindow
}

// Effect 回傳此交易對各帳戶的帶正負號影響
func (t *Transaction) Effect() map[AccountName]Money {
	switch t.Type {
	case TransactionTypeIncome:
		return map[AccountName]Money{t.Account: t.Amount}
	case TransactionTypeExpense:
		return map[AccountName]Money{t.Account: -t.Amount}
	case TransactionTypeTransfer:
		if t.FromAccount == nil || t.ToAccount == nil {
			return map[AccountName]Money{}
		}
		effect := map[AccountName]Money{*t.FromAccount: -t.Amount}
		effect[*t.ToAccount] += t.Amount
		return effect
	}
	return map[AccountName]Money{}
}

// TouchedAccounts 交易涉及的帳戶 (已排序)
func (t *Transaction) TouchedAccounts() []AccountName {
	names := []AccountName{t.Account}
	if t.FromAccount != nil {
		names = append(names, *t.FromAccount)
	}
	if t.ToAccount != nil {
		names = append(names, *t.ToAccount)
	}
	return LockOrder(names...)
}

// Validate 檢查交易紀錄本身的不變量
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.OwnerID) == "" {
		return Invalid("ownerId", "is required")
	}
	if !t.Type.Valid() {
		return Invalid("type", "must be one of income, expense, transfer")
	}
	if !t.Amount.IsPositive() {
		return Invalid("amount", ErrAmountMustBePositive.Error())
	}
	if err := ValidateCategory(t.Category); err != nil {
		return err
	}
	if err := ValidateDescription(t.Description); err != nil {
		return err
	}
	if !t.Division.Valid() {
		return Invalid("division", "must be one of Personal, Office")
	}
	if !t.Account.Valid() {
		return Invalid("account", "must be one of Cash, Bank, Wallet")
	}
	if t.TransactionDate.IsZero() {
		return Invalid("transactionDate", "is required")
	}
	switch t.Type {
	case TransactionTypeTransfer:
		if t.FromAccount == nil || t.ToAccount == nil {
			return Invalid("fromAccount", "transfer requires fromAccount and toAccount")
		}
		if !t.FromAccount.Valid() || !t.ToAccount.Valid() {
			return Invalid("toAccount", "must be one of Cash, Bank, Wallet")
		}
		if *t.FromAccount != t.Account {
			return Invalid("account", "must equal fromAccount for transfers")
		}
	default:
		if t.FromAccount != nil || t.ToAccount != nil {
			return Invalid("fromAccount", "only transfers carry fromAccount/toAccount")
		}
	}
	return nil
}

// ValidateDescription 描述不可為空且不超過 MaxDescriptionLength
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return Invalid("description", "is required")
	}
	if len([]rune(s)) > MaxDescriptionLength {
		return Invalid("description", fmt.Sprintf("must be at most %d characters", MaxDescriptionLength))
	}
	return nil
}

// ValidateCategory 類別不可為空且長度合理
func ValidateCategory(s string) error {
	if strings.TrimSpace(s) == "" {
		return Invalid("category", "is required")
	}
	if len([]rune(s)) > MaxCategoryLength {
		return Invalid("category", fmt.Sprintf("must be at most %d characters", MaxCategoryLength))
	}
	return nil
}

// TransferDescription 轉帳交易的描述
func TransferDescription(from, to AccountName) string {
	return fmt.Sprintf("Transfer from %s to %s", from, to)
}

// TransactionPatch 修改交易時允許變更的欄位，nil 代表不變
type TransactionPatch struct {
	Amount          *Money
	Category        *string
	Description     *string
	Division        *Division
	Account         *AccountName
	TransactionDate *time.Time
}

// Validate 只檢查有帶值的欄位
func (p *TransactionPatch) Validate() error {
	if p.Amount != nil && !p.Amount.IsPositive() {
		return Invalid("amount", ErrAmountMustBePositive.Error())
	}
	if p.Category != nil {
		if err := ValidateCategory(*p.Category); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := ValidateDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Division != nil && !p.Division.Valid() {
		return Invalid("division", "must be one of Personal, Office")
	}
	if p.Account != nil && !p.Account.Valid() {
		return Invalid("account", "must be one of Cash, Bank, Wallet")
	}
	if p.TransactionDate != nil && p.TransactionDate.IsZero() {
		return Invalid("transactionDate", "must not be zero")
	}
	return nil
}

// AccountChanged patch 是否把交易改到另一個帳戶
func (p *TransactionPatch) AccountChanged(t *Transaction) bool {
	return p.Account != nil && *p.Account != t.Account
}

// Apply 將 patch 套用到交易紀錄 (不處理餘額)
func (p *TransactionPatch) Apply(t *Transaction) {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Division != nil {
		t.Division = *p.Division
	}
	if p.Account != nil {
		t.Account = *p.Account
	}
	if p.TransactionDate != nil {
		t.TransactionDate = *p.TransactionDate
	}
}
