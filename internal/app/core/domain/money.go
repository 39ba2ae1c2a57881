package domain

import (
	"github.com/shopspring/decimal"
)

// amount 使用int64，並定義精度：小數點後 4 位
const (
	CurrencyScale  = 10000
	CurrencyDigits = 4
)

// Money 以最小單位 (1/CurrencyScale) 儲存的金額，可以為負 (帳戶餘額沒有下限)
type Money int64

// NewMoney 由整數單位建立金額，例如 NewMoney(1000) 代表 1000.0000
func NewMoney(units int64) Money {
	return Money(units * CurrencyScale)
}

// MoneyFromDecimal 將 decimal 轉為 Money，超過 4 位小數或溢位時回傳驗證錯誤
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Shift(CurrencyDigits)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, Invalid("amount", "at most 4 decimal places are allowed")
	}
	if !scaled.BigInt().IsInt64() {
		return 0, Invalid("amount", "out of range")
	}
	return Money(scaled.IntPart()), nil
}

// ParseMoney 解析字串金額 (例如 "1250.50")
func ParseMoney(s string) (Money, error) {
	if s == "" {
		return 0, Invalid("amount", "is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, Invalid("amount", "not a decimal number")
	}
	return MoneyFromDecimal(d)
}

// Decimal 轉回 decimal 表示
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -CurrencyDigits)
}

func (m Money) String() string {
	return m.Decimal().String()
}

// IsPositive 金額是否 > 0
func (m Money) IsPositive() bool {
	return m > 0
}

// Neg 反向金額
func (m Money) Neg() Money {
	return -m
}
