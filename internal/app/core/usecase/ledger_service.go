package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

// Options LedgerService 的可選配置
type Options struct {
	Clock  Clock
	Logger *logger.Logger
	// ReconcileAmountEdits 為 true 時修改金額會同步調整帳戶餘額；
	// 預設 false，維持「已入帳金額不再回寫餘額」的既有行為。
	ReconcileAmountEdits bool
}

// LedgerService 是核心業務邏輯層，維持「帳戶餘額 = 交易紀錄累計影響」
type LedgerService struct {
	store                Store
	clock                Clock
	log                  *logger.Logger
	reconcileAmountEdits bool
}

// NewLedgerService 建立 LedgerService
func NewLedgerService(store Store, opts Options) *LedgerService {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &LedgerService{
		store:                store,
		clock:                opts.Clock,
		log:                  opts.Logger.WithComponent("ledger"),
		reconcileAmountEdits: opts.ReconcileAmountEdits,
	}
}

// RecordInput 記一筆收入或支出所需的欄位
type RecordInput struct {
	OwnerID         string
	Type            domain.TransactionType
	Amount          domain.Money
	Category        string
	Description     string
	Division        domain.Division
	Account         domain.AccountName
	TransactionDate time.Time
}

// TransferResult 轉帳結果
type TransferResult struct {
	Transaction *domain.Transaction
	Source      *domain.Account
	Destination *domain.Account
}

func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Invalid("ownerId", "is required")
	}
	return nil
}

// CreateAccount 建立餘額為 0 的帳戶，已存在回傳 domain.ErrDuplicateAccount
func (s *LedgerService) CreateAccount(ctx context.Context, ownerID string, name domain.AccountName) (*domain.Account, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !name.Valid() {
		return nil, domain.Invalid("accountName", "must be one of Cash, Bank, Wallet")
	}
	account := domain.NewAccount(ownerID, name, s.clock.Now())
	err := s.store.Atomic(ctx, func(accounts AccountStore, _ TransactionStore) error {
		return accounts.Create(ctx, account)
	})
	if err != nil {
		return nil, s.fail(ctx, "create account", err, logger.FieldOwner, ownerID, logger.FieldAccount, name)
	}
	s.log.InfoContext(ctx, "account created", logger.FieldOwner, ownerID, logger.FieldAccount, name)
	return account, nil
}

// GetAccount 取得單一帳戶
func (s *LedgerService) GetAccount(ctx context.Context, ownerID string, name domain.AccountName) (*domain.Account, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	account, err := s.store.Accounts().Get(ctx, ownerID, name)
	if err != nil {
		return nil, asInternal(err)
	}
	return account, nil
}

// ListAccounts 列出 owner 的帳戶
func (s *LedgerService) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	accounts, err := s.store.Accounts().List(ctx, ownerID)
	if err != nil {
		return nil, asInternal(err)
	}
	return accounts, nil
}

// RecordTransaction 記一筆收入或支出
//
// 收入: 帳戶不存在時以餘額 0 建立後再入帳。
// 支出: 帳戶不存在視為餘額 0，餘額不足回傳 domain.ErrInsufficientBalance 且不建立帳戶。
// 餘額異動與交易紀錄在同一個原子單位內完成。
func (s *LedgerService) RecordTransaction(ctx context.Context, in RecordInput) (*domain.Transaction, error) {
	if in.Type == domain.TransactionTypeTransfer {
		return nil, domain.Invalid("type", "transfers are recorded with RecordTransfer")
	}
	now := s.clock.Now()
	tran := &domain.Transaction{
		ID:              uuid.New(),
		OwnerID:         in.OwnerID,
		Type:            in.Type,
		Amount:          in.Amount,
		Category:        strings.TrimSpace(in.Category),
		Description:     strings.TrimSpace(in.Description),
		Division:        in.Division,
		Account:         in.Account,
		TransactionDate: in.TransactionDate,
		CreatedAt:       now,
	}
	if err := tran.Validate(); err != nil {
		return nil, err
	}

	err := s.store.Atomic(ctx, func(accounts AccountStore, trans TransactionStore) error {
		if tran.Type == domain.TransactionTypeIncome {
			if err := accounts.Ensure(ctx, tran.OwnerID, tran.Account, now); err != nil {
				return err
			}
		}
		if err := accounts.Lock(ctx, tran.OwnerID, tran.Account); err != nil {
			return err
		}
		switch tran.Type {
		case domain.TransactionTypeIncome:
			if err := accounts.AddBalance(ctx, tran.OwnerID, tran.Account, tran.Amount); err != nil {
				return err
			}
		case domain.TransactionTypeExpense:
			if err := accounts.Debit(ctx, tran.OwnerID, tran.Account, tran.Amount); err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					return fmt.Errorf("%w in %s: current balance 0", domain.ErrInsufficientBalance, tran.Account)
				}
				return err
			}
		}
		return trans.Create(ctx, tran)
	})
	if err != nil {
		return nil, s.fail(ctx, "record transaction", err,
			logger.FieldOwner, tran.OwnerID, logger.FieldAccount, tran.Account, logger.FieldAmount, tran.Amount.String())
	}

	s.log.InfoContext(ctx, "transaction recorded",
		logger.FieldOwner, tran.OwnerID,
		logger.FieldTranID, tran.ID,
		"type", tran.Type,
		logger.FieldAccount, tran.Account,
		logger.FieldAmount, tran.Amount.String())
	return tran, nil
}

// RecordTransfer 在同一個 owner 的兩個帳戶間轉帳
//
// 兩個帳戶都會在必要時以餘額 0 建立；來源餘額不足時整個操作不留下任何寫入。
// 來源與目的相同時仍需足夠餘額並留下一筆轉帳紀錄，但淨額為 0。
func (s *LedgerService) RecordTransfer(ctx context.Context, ownerID string, from, to domain.AccountName, amount domain.Money) (*TransferResult, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, domain.Invalid("amount", domain.ErrAmountMustBePositive.Error())
	}
	if !from.Valid() {
		return nil, domain.Invalid("fromAccount", "must be one of Cash, Bank, Wallet")
	}
	if !to.Valid() {
		return nil, domain.Invalid("toAccount", "must be one of Cash, Bank, Wallet")
	}

	now := s.clock.Now()
	fromName, toName := from, to
	tran := &domain.Transaction{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Type:            domain.TransactionTypeTransfer,
		Amount:          amount,
		Category:        domain.TransferCategory,
		Description:     domain.TransferDescription(from, to),
		Division:        domain.DivisionPersonal,
		Account:         from,
		FromAccount:     &fromName,
		ToAccount:       &toName,
		TransactionDate: now,
		CreatedAt:       now,
	}
	if err := tran.Validate(); err != nil {
		return nil, err
	}

	result := &TransferResult{Transaction: tran}
	err := s.store.Atomic(ctx, func(accounts AccountStore, trans TransactionStore) error {
		for _, name := range domain.LockOrder(from, to) {
			if err := accounts.Ensure(ctx, ownerID, name, now); err != nil {
				return err
			}
		}
		if err := accounts.Lock(ctx, ownerID, from, to); err != nil {
			return err
		}
		if err := accounts.Debit(ctx, ownerID, from, amount); err != nil {
			return err
		}
		if err := accounts.AddBalance(ctx, ownerID, to, amount); err != nil {
			return err
		}
		if err := trans.Create(ctx, tran); err != nil {
			return err
		}

		var err error
		if result.Source, err = accounts.Get(ctx, ownerID, from); err != nil {
			return err
		}
		result.Destination, err = accounts.Get(ctx, ownerID, to)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "record transfer", err,
			logger.FieldOwner, ownerID, "from", from, "to", to, logger.FieldAmount, amount.String())
	}

	s.log.InfoContext(ctx, "transfer recorded",
		logger.FieldOwner, ownerID,
		logger.FieldTranID, tran.ID,
		"from", from,
		"to", to,
		logger.FieldAmount, amount.String())
	return result, nil
}

// ListTransactions 依條件列出交易，transactionDate 新到舊
func (s *LedgerService) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	trans, err := s.store.Transactions().List(ctx, ownerID, filter.Normalized())
	if err != nil {
		return nil, s.fail(ctx, "list transactions", err, logger.FieldOwner, ownerID)
	}
	return trans, nil
}

// GetTransaction 取得單筆交易 (只能讀自己的)
func (s *LedgerService) GetTransaction(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	tran, err := s.store.Transactions().Get(ctx, id)
	if err != nil {
		return nil, asInternal(err)
	}
	if tran.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return tran, nil
}

// loadMutable 在 unit of work 內取得可修改的交易
func (s *LedgerService) loadMutable(ctx context.Context, trans TransactionStore, ownerID string, id uuid.UUID, now time.Time) (*domain.Transaction, error) {
	tran, err := trans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tran.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if !tran.Mutable(now) {
		return nil, fmt.Errorf("%w (%s limit)", domain.ErrEditingWindowExpired, domain.EditWindow)
	}
	return tran, nil
}

// EditTransaction 在 12 小時內修改交易
//
// 帳戶變更時: 從原帳戶抵銷原交易，並以「原本的」類型與金額套用到新帳戶。
// 未開啟 ReconcileAmountEdits 時，金額修改不會反映到任何帳戶餘額。
// 轉帳交易不允許修改帳戶。
func (s *LedgerService) EditTransaction(ctx context.Context, ownerID string, id uuid.UUID, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	now := s.clock.Now()

	var updated *domain.Transaction
	err := s.store.Atomic(ctx, func(accounts AccountStore, trans TransactionStore) error {
		before, err := s.loadMutable(ctx, trans, ownerID, id, now)
		if err != nil {
			return err
		}
		accountChanged := patch.AccountChanged(before)
		if accountChanged && before.Type == domain.TransactionTypeTransfer {
			return domain.Invalid("account", "the source of a transfer cannot be changed")
		}

		after := *before
		patch.Apply(&after)
		if err := after.Validate(); err != nil {
			return err
		}

		var deltas balanceDeltas
		switch {
		case s.reconcileAmountEdits:
			deltas = diffEffects(after.Effect(), before.Effect())
		case accountChanged:
			moved := *before
			moved.Account = after.Account
			deltas = diffEffects(moved.Effect(), before.Effect())
		}
		if err := applyDeltas(ctx, accounts, ownerID, deltas, now); err != nil {
			return err
		}
		if err := trans.Update(ctx, &after); err != nil {
			return err
		}
		updated = &after
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "edit transaction", err, logger.FieldOwner, ownerID, logger.FieldTranID, id)
	}

	s.log.InfoContext(ctx, "transaction edited",
		logger.FieldOwner, ownerID,
		logger.FieldTranID, id,
		logger.FieldAccount, updated.Account)
	return updated, nil
}

// DeleteTransaction 在 12 小時內刪除交易並抵銷其對餘額的影響
//
// 轉帳會同時抵銷來源與目的帳戶。
func (s *LedgerService) DeleteTransaction(ctx context.Context, ownerID string, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	now := s.clock.Now()

	err := s.store.Atomic(ctx, func(accounts AccountStore, trans TransactionStore) error {
		tran, err := s.loadMutable(ctx, trans, ownerID, id, now)
		if err != nil {
			return err
		}
		if err := applyDeltas(ctx, accounts, ownerID, reversal(tran), now); err != nil {
			return err
		}
		return trans.Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, "delete transaction", err, logger.FieldOwner, ownerID, logger.FieldTranID, id)
	}

	s.log.InfoContext(ctx, "transaction deleted", logger.FieldOwner, ownerID, logger.FieldTranID, id)
	return nil
}

// fail 記錄錯誤並轉成對外的錯誤；領域錯誤只記 debug
func (s *LedgerService) fail(ctx context.Context, op string, err error, args ...any) error {
	err = asInternal(err)
	kind := domain.KindOf(err)
	args = append(args, logger.FieldOperation, op, logger.FieldKind, kind)
	if kind == domain.KindInternal {
		s.log.Failure(ctx, op+" failed", err, args...)
	} else {
		s.log.DebugContext(ctx, op+" rejected", append(args, logger.FieldError, err)...)
	}
	return err
}
