package gormstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

// deleteBatchSize 批次刪除時每次 IN 的筆數上限
const deleteBatchSize = 500

// transactionRepo rowLocking 只在 unit of work 內開啟
type transactionRepo struct {
	db         *gorm.DB
	rowLocking bool
}

// Get 在 unit of work 內以 SELECT ... FOR UPDATE 鎖住交易，
// 同一筆交易的修改與刪除會依序執行，後到者讀到的是已提交的版本。
func (r *transactionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var row sqlTransaction
	query := r.db.WithContext(ctx)
	if r.rowLocking {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.Where("id = ?", id.String()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&row)
}

func (r *transactionRepo) Create(ctx context.Context, tran *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(toTransactionRow(tran)).Error
}

// Update 只覆寫可修改的欄位，created_at 不變
func (r *transactionRepo) Update(ctx context.Context, tran *domain.Transaction) error {
	row := toTransactionRow(tran)
	res := r.db.WithContext(ctx).Model(&sqlTransaction{}).Where("id = ?", row.ID).
		Updates(map[string]any{
			"amount":           row.Amount,
			"category":         row.Category,
			"description":      row.Description,
			"division":         row.Division,
			"account":          row.Account,
			"from_account":     row.FromAccount,
			"to_account":       row.ToAccount,
			"transaction_date": row.TransactionDate,
		})
	if res.Error != nil {
		return res.Error
	}
	// mysql 連線使用 clientFoundRows，0 代表這筆交易已不存在
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&sqlTransaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var total int64
	for start := 0; start < len(ids); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(ids))
		keys := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, id.String())
		}
		res := r.db.WithContext(ctx).Where("id IN ?", keys).Delete(&sqlTransaction{})
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}

// List 條件都已轉小寫，以 LOWER() 比對而不是 LIKE，使用者輸入不會成為 pattern
func (r *transactionRepo) List(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	filter = filter.Normalized()
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Category != "" {
		q = q.Where("LOWER(category) = ?", filter.Category)
	}
	if filter.Division != "" {
		q = q.Where("LOWER(division) = ?", filter.Division)
	}
	if filter.Account != "" {
		q = q.Where("LOWER(account) = ?", filter.Account)
	}
	if filter.SearchText != "" {
		q = q.Where("INSTR(LOWER(description), ?) > 0", filter.SearchText)
	}
	if filter.From != nil {
		q = q.Where("transaction_date >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("transaction_date <= ?", filter.To.UTC())
	}

	var rows []sqlTransaction
	if err := q.Order("transaction_date DESC").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out, err := toDomainTransactions(rows)
	if err != nil {
		return nil, err
	}
	domain.SortByTransactionDateDesc(out)
	return out, nil
}

func (r *transactionRepo) Scan(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	q := r.db.WithContext(ctx)
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	var rows []sqlTransaction
	if err := q.Order("created_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out, err := toDomainTransactions(rows)
	if err != nil {
		return nil, err
	}
	domain.SortByCreatedAtDesc(out)
	return out, nil
}
