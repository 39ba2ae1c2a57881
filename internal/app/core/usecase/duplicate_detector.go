package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

// DuplicateDetectorOptions DuplicateDetector 的可選配置
type DuplicateDetectorOptions struct {
	// ReconcileBalances 為 true 時刪除重複交易也會抵銷其餘額影響
	ReconcileBalances bool
	Clock             Clock
	Logger            *logger.Logger
}

// ScanResult 重複偵測的結果
type ScanResult struct {
	Kept       int
	Deleted    int
	Duplicates []domain.Transaction
}

// DuplicateDetector 找出並刪除重複的交易 (離線維護用)
//
// 同一組 (owner, description, amount, type, account, transactionDate 的日期)
// 依 createdAt 新到舊只保留第一筆。刪除不受 12 小時期限限制。
type DuplicateDetector struct {
	store     Store
	reconcile bool
	clock     Clock
	log       *logger.Logger
}

// NewDuplicateDetector 建立 DuplicateDetector
func NewDuplicateDetector(store Store, opts DuplicateDetectorOptions) *DuplicateDetector {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &DuplicateDetector{
		store:     store,
		reconcile: opts.ReconcileBalances,
		clock:     opts.Clock,
		log:       opts.Logger.WithComponent("dedup"),
	}
}

// partition 將 createdAt 新到舊排序的交易分成保留與重複
func partition(trans []domain.Transaction) (kept int, duplicates []domain.Transaction) {
	domain.SortByCreatedAtDesc(trans)
	seen := make(map[domain.DuplicateKey]struct{}, len(trans))
	for i := range trans {
		key := domain.KeyOf(&trans[i])
		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, trans[i])
			continue
		}
		seen[key] = struct{}{}
		kept++
	}
	return kept, duplicates
}

// Scan 只找出重複交易，不做任何寫入
//
// 參數:
//
//	ownerID: 空字串代表所有 owner
func (d *DuplicateDetector) Scan(ctx context.Context, ownerID string) (*ScanResult, error) {
	trans, err := d.store.Transactions().Scan(ctx, ownerID)
	if err != nil {
		return nil, asInternal(err)
	}
	kept, duplicates := partition(trans)
	return &ScanResult{Kept: kept, Deleted: len(duplicates), Duplicates: duplicates}, nil
}

// Run 在同一個原子單位內找出並刪除重複交易
func (d *DuplicateDetector) Run(ctx context.Context, ownerID string) (*ScanResult, error) {
	start := time.Now()
	result := &ScanResult{}
	err := d.store.Atomic(ctx, func(accounts AccountStore, trans TransactionStore) error {
		all, err := trans.Scan(ctx, ownerID)
		if err != nil {
			return err
		}
		kept, duplicates := partition(all)
		result.Kept = kept
		result.Duplicates = duplicates
		if len(duplicates) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(duplicates))
		for i := range duplicates {
			ids = append(ids, duplicates[i].ID)
			d.log.DebugContext(ctx, "duplicate found",
				logger.FieldTranID, duplicates[i].ID,
				"key", domain.KeyOf(&duplicates[i]).String())
		}
		deleted, err := trans.DeleteMany(ctx, ids)
		if err != nil {
			return err
		}
		result.Deleted = int(deleted)

		if !d.reconcile {
			return nil
		}
		now := d.clock.Now()
		for _, deltas := range reversalsByOwner(duplicates) {
			if err := applyDeltas(ctx, accounts, deltas.ownerID, deltas.deltas, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		err = asInternal(err)
		d.log.Failure(ctx, "duplicate scan failed", err, logger.FieldOwner, ownerID)
		return nil, err
	}

	d.log.InfoContext(ctx, "duplicate scan finished",
		logger.FieldOwner, ownerID,
		"kept", result.Kept,
		"deleted", result.Deleted,
		"reconciled", d.reconcile,
		logger.FieldDuration, time.Since(start).Milliseconds())
	return result, nil
}

type ownerDeltas struct {
	ownerID string
	deltas  balanceDeltas
}

// reversalsByOwner 依 owner 彙總要抵銷的金額，維持第一次出現的順序
func reversalsByOwner(trans []domain.Transaction) []ownerDeltas {
	index := make(map[string]int)
	var out []ownerDeltas
	for i := range trans {
		t := &trans[i]
		pos, ok := index[t.OwnerID]
		if !ok {
			pos = len(out)
			index[t.OwnerID] = pos
			out = append(out, ownerDeltas{ownerID: t.OwnerID, deltas: balanceDeltas{}})
		}
		for name, v := range reversal(t) {
			out[pos].deltas[name] += v
		}
	}
	return out
}
