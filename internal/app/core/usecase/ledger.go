package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

// AccountStore 帳戶的持久化介面
//
// 所有餘額異動都必須是對目前持久化狀態的原子加減，
// 不可以先讀出餘額再整筆寫回。
type AccountStore interface {
	// Get 取得帳戶，不存在回傳 domain.ErrAccountNotFound
	Get(ctx context.Context, ownerID string, name domain.AccountName) (*domain.Account, error)
	// List 列出 owner 的所有帳戶 (依名稱排序)
	List(ctx context.Context, ownerID string) ([]domain.Account, error)
	// Create 建立帳戶，已存在回傳 domain.ErrDuplicateAccount
	Create(ctx context.Context, account *domain.Account) error
	// Ensure 帳戶不存在時以餘額 0 建立，已存在則不動作
	Ensure(ctx context.Context, ownerID string, name domain.AccountName, now time.Time) error
	// Lock 依 domain.LockOrder 的順序鎖定已存在的帳戶，直到 unit of work 結束
	Lock(ctx context.Context, ownerID string, names ...domain.AccountName) error
	// AddBalance 原子地加上 delta (可為負，不檢查下限)
	AddBalance(ctx context.Context, ownerID string, name domain.AccountName, delta domain.Money) error
	// Debit 只有在餘額 >= amount 時才原子地扣款，否則回傳 domain.ErrInsufficientBalance
	Debit(ctx context.Context, ownerID string, name domain.AccountName, amount domain.Money) error
}

// TransactionStore 交易紀錄的持久化介面
type TransactionStore interface {
	// Get 取得交易，不存在回傳 domain.ErrTransactionNotFound
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Create(ctx context.Context, tran *domain.Transaction) error
	// Update 覆寫可修改的欄位 (CreatedAt 不變)
	Update(ctx context.Context, tran *domain.Transaction) error
	// Delete 刪除交易，不存在回傳 domain.ErrTransactionNotFound
	Delete(ctx context.Context, id uuid.UUID) error
	// List 依條件列出 owner 的交易，transactionDate 新到舊
	List(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	// Scan 列出交易 (ownerID 為空代表全部)，createdAt 新到舊
	Scan(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	// DeleteMany 批次刪除，回傳實際刪除筆數
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// UnitOfWork 讓多筆寫入成為一個原子單位
type UnitOfWork interface {
	// Atomic 執行 fn；fn 回傳錯誤時所有寫入都不可被外部觀察到
	Atomic(ctx context.Context, fn func(accounts AccountStore, trans TransactionStore) error) error
}

// Store 是帳務系統的儲存介面
type Store interface {
	UnitOfWork
	Accounts() AccountStore
	Transactions() TransactionStore
}

// Clock 取得目前時間，測試時可替換
type Clock interface {
	Now() time.Time
}

// ClockFunc 讓一般函式實作 Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock 使用系統時間 (UTC)
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })
