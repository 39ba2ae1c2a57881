package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation 欄位缺漏、超出範圍或格式錯誤 (在任何寫入前就拒絕)
	ErrValidation = errors.New("validation failed")

	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount 帳戶已存在 (同一個 owner 同名帳戶只能有一個)
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrTransactionNotFound 找不到交易
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrForbidden 交易不屬於呼叫者
	ErrForbidden = errors.New("transaction belongs to another owner")

	// ErrEditingWindowExpired 超過 12 小時的可修改期限
	ErrEditingWindowExpired = errors.New("editing window expired")

	// ErrInternal 儲存層或基礎設施錯誤
	ErrInternal = errors.New("internal error")

	// ErrWALWriteFailed 寫入 WAL 失敗
	ErrWALWriteFailed = errors.New("wal write failed")
)

// ValidationError 描述是哪個欄位驗證失敗
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is 讓 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid 建立一個 ValidationError
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrorKind 是對外穩定的錯誤分類，transport 層依此轉換狀態碼
type ErrorKind string

const (
	KindNone                 ErrorKind = ""
	KindValidation           ErrorKind = "Validation"
	KindDuplicateAccount     ErrorKind = "DuplicateAccount"
	KindInsufficientBalance  ErrorKind = "InsufficientBalance"
	KindNotFound             ErrorKind = "NotFound"
	KindForbidden            ErrorKind = "Forbidden"
	KindEditingWindowExpired ErrorKind = "EditingWindowExpired"
	KindInternal             ErrorKind = "Internal"
)

// KindOf 取得錯誤分類；無法辨識的錯誤一律視為 Internal
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation), errors.Is(err, ErrAmountMustBePositive):
		return KindValidation
	case errors.Is(err, ErrDuplicateAccount):
		return KindDuplicateAccount
	case errors.Is(err, ErrInsufficientBalance):
		return KindInsufficientBalance
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrAccountNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrEditingWindowExpired):
		return KindEditingWindowExpired
	default:
		return KindInternal
	}
}
