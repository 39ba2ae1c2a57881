package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

type accountRepo struct {
	db         *gorm.DB
	rowLocking bool
}

func (r *accountRepo) scope(ctx context.Context, ownerID string, name domain.AccountName) *gorm.DB {
	return r.db.WithContext(ctx).Model(&sqlAccount{}).
		Where("owner_id = ? AND account_name = ?", ownerID, string(name))
}

func (r *accountRepo) Get(ctx context.Context, ownerID string, name domain.AccountName) (*domain.Account, error) {
	var row sqlAccount
	err := r.scope(ctx, ownerID, name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainAccount(&row), nil
}

func (r *accountRepo) List(ctx context.Context, ownerID string) ([]domain.Account, error) {
	var rows []sqlAccount
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("account_name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(rows))
	for i := range rows {
		out = append(out, *toDomainAccount(&rows[i]))
	}
	return out, nil
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	err := r.db.WithContext(ctx).Create(toAccountRow(account)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateAccount, account.Name)
	}
	return err
}

// Ensure INSERT 時遇到 unique key 衝突就略過
func (r *accountRepo) Ensure(ctx context.Context, ownerID string, name domain.AccountName, now time.Time) error {
	row := toAccountRow(domain.NewAccount(ownerID, name, now))
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

// Lock 取得帳戶悲觀鎖，IN 查詢依 account_name 排序鎖定
func (r *accountRepo) Lock(ctx context.Context, ownerID string, names ...domain.AccountName) error {
	if !r.rowLocking || len(names) == 0 {
		return nil
	}
	ordered := domain.LockOrder(names...)
	keys := make([]string, 0, len(ordered))
	for _, n := range ordered {
		keys = append(keys, string(n))
	}
	var rows []sqlAccount
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND account_name IN ?", ownerID, keys).
		Order("account_name").
		Find(&rows).Error
}

// AddBalance 以 balance = balance + ? 原子地加減，不讀回餘額
func (r *accountRepo) AddBalance(ctx context.Context, ownerID string, name domain.AccountName, delta domain.Money) error {
	res := r.scope(ctx, ownerID, name).
		Updates(map[string]any{"balance": gorm.Expr("balance + ?", int64(delta))})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Debit 以 WHERE balance >= ? 保護扣款，沒有更新任何列時再判斷原因
func (r *accountRepo) Debit(ctx context.Context, ownerID string, name domain.AccountName, amount domain.Money) error {
	res := r.scope(ctx, ownerID, name).
		Where("balance >= ?", int64(amount)).
		Updates(map[string]any{"balance": gorm.Expr("balance - ?", int64(amount))})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	account, err := r.Get(ctx, ownerID, name)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w in %s: current balance %s", domain.ErrInsufficientBalance, name, account.Balance)
}
