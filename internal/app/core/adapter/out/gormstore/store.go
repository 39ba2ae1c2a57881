package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-cash-ledger/pkg/database"
)

// Store 以 GORM 實作帳務儲存 (MySQL / SQLite)
//
// 每個 unit of work 對應一個資料庫 Transaction，
// 支援 SELECT ... FOR UPDATE 的資料庫會以悲觀鎖鎖定交易與帳戶。
type Store struct {
	db         *gorm.DB
	rowLocking bool
}

// New 建立 Store 並自動建立資料表
func New(client *database.Client) (*Store, error) {
	db := client.DB()
	if err := db.AutoMigrate(&sqlAccount{}, &sqlTransaction{}); err != nil {
		return nil, fmt.Errorf("gormstore: migrate: %w", err)
	}
	return &Store{
		db: db,
		// sqlite 整個資料庫只有一個寫入者，不支援 FOR UPDATE
		rowLocking: db.Dialector.Name() != database.DriverSQLite,
	}, nil
}

// Atomic 在同一個資料庫 Transaction 中執行 fn，fn 回傳錯誤即 Rollback
func (s *Store) Atomic(ctx context.Context, fn func(accounts usecase.AccountStore, trans usecase.TransactionStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&accountRepo{db: tx, rowLocking: s.rowLocking}, &transactionRepo{db: tx, rowLocking: s.rowLocking})
	})
}

// Accounts 在 Transaction 之外讀取帳戶
func (s *Store) Accounts() usecase.AccountStore {
	return &accountRepo{db: s.db, rowLocking: s.rowLocking}
}

// Transactions 在 Transaction 之外讀取交易
func (s *Store) Transactions() usecase.TransactionStore {
	return &transactionRepo{db: s.db}
}

var (
	_ usecase.Store            = (*Store)(nil)
	_ usecase.AccountStore     = (*accountRepo)(nil)
	_ usecase.TransactionStore = (*transactionRepo)(nil)
)
