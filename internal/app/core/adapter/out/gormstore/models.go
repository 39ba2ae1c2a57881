package gormstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID     string    `gorm:"size:64;not null;uniqueIndex:uk_owner_account,priority:1"`
	AccountName string    `gorm:"size:16;not null;uniqueIndex:uk_owner_account,priority:2"`
	Balance     int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"precision:6"`
	UpdatedAt   time.Time `gorm:"precision:6"` // 自動更新時間
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlTransaction 對應資料庫的 transactions 表
type sqlTransaction struct {
	ID              string    `gorm:"primaryKey;type:char(36)"` // 對應 domain.Transaction.ID
	OwnerID         string    `gorm:"size:64;not null;index:idx_owner_created,priority:1;index:idx_owner_date,priority:1"`
	Type            string    `gorm:"size:16;not null"`
	Amount          int64     `gorm:"not null"`
	Category        string    `gorm:"size:64;not null"`
	Description     string    `gorm:"size:100;not null"`
	Division        string    `gorm:"size:16;not null"`
	Account         string    `gorm:"size:16;not null"`
	FromAccount     *string   `gorm:"size:16"`
	ToAccount       *string   `gorm:"size:16"`
	TransactionDate time.Time `gorm:"precision:6;not null;index:idx_owner_date,priority:2,sort:desc"`
	CreatedAt       time.Time `gorm:"precision:6;not null;index:idx_owner_created,priority:2,sort:desc"`
}

func (*sqlTransaction) TableName() string {
	return "transactions"
}

func toDomainAccount(row *sqlAccount) *domain.Account {
	return &domain.Account{
		OwnerID:   row.OwnerID,
		Name:      domain.AccountName(row.AccountName),
		Balance:   domain.Money(row.Balance),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func toAccountRow(a *domain.Account) *sqlAccount {
	return &sqlAccount{
		OwnerID:     a.OwnerID,
		AccountName: string(a.Name),
		Balance:     int64(a.Balance),
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
	}
}

func accountPtr(s *string) *domain.AccountName {
	if s == nil {
		return nil
	}
	name := domain.AccountName(*s)
	return &name
}

func stringPtr(n *domain.AccountName) *string {
	if n == nil {
		return nil
	}
	s := string(*n)
	return &s
}

func toDomainTransaction(row *sqlTransaction) (*domain.Transaction, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Transaction{
		ID:              id,
		OwnerID:         row.OwnerID,
		Type:            domain.TransactionType(row.Type),
		Amount:          domain.Money(row.Amount),
		Category:        row.Category,
		Description:     row.Description,
		Division:        domain.Division(row.Division),
		Account:         domain.AccountName(row.Account),
		FromAccount:     accountPtr(row.FromAccount),
		ToAccount:       accountPtr(row.ToAccount),
		TransactionDate: row.TransactionDate.UTC(),
		CreatedAt:       row.CreatedAt.UTC(),
	}, nil
}

func toTransactionRow(t *domain.Transaction) *sqlTransaction {
	return &sqlTransaction{
		ID:              t.ID.String(),
		OwnerID:         t.OwnerID,
		Type:            string(t.Type),
		Amount:          int64(t.Amount),
		Category:        t.Category,
		Description:     t.Description,
		Division:        string(t.Division),
		Account:         string(t.Account),
		FromAccount:     stringPtr(t.FromAccount),
		ToAccount:       stringPtr(t.ToAccount),
		TransactionDate: t.TransactionDate.UTC(),
		CreatedAt:       t.CreatedAt.UTC(),
	}
}

func toDomainTransactions(rows []sqlTransaction) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}
