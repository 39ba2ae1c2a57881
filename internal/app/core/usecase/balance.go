package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

// balanceDeltas 帳戶 -> 需要加減的金額
type balanceDeltas map[domain.AccountName]domain.Money

// diffEffects 計算從 before 變成 after 各帳戶需要調整的金額
func diffEffects(after, before map[domain.AccountName]domain.Money) balanceDeltas {
	deltas := make(balanceDeltas, len(after)+len(before))
	for name, v := range after {
		deltas[name] += v
	}
	for name, v := range before {
		deltas[name] -= v
	}
	return deltas
}

// reversal 抵銷一筆交易對帳戶的影響
func reversal(tran *domain.Transaction) balanceDeltas {
	return diffEffects(nil, tran.Effect())
}

// names 回傳需要異動的帳戶 (已排序，略過 0)
func (d balanceDeltas) names() []domain.AccountName {
	names := make([]domain.AccountName, 0, len(d))
	for name, v := range d {
		if v != 0 {
			names = append(names, name)
		}
	}
	return domain.LockOrder(names...)
}

// applyDeltas 依固定順序建立、鎖定並原子地調整餘額，不檢查下限
//
// 參數:
//
//	accounts: unit of work 內的 AccountStore
//	ownerID: 帳戶擁有者
//	deltas: 各帳戶的調整金額
//	now: 帳戶不存在時建立帳戶所用的時間
func applyDeltas(ctx context.Context, accounts AccountStore, ownerID string, deltas balanceDeltas, now time.Time) error {
	names := deltas.names()
	if len(names) == 0 {
		return nil
	}
	for _, name := range names {
		if err := accounts.Ensure(ctx, ownerID, name, now); err != nil {
			return fmt.Errorf("ensure account %s: %w", name, err)
		}
	}
	if err := accounts.Lock(ctx, ownerID, names...); err != nil {
		return fmt.Errorf("lock accounts: %w", err)
	}
	for _, name := range names {
		if err := accounts.AddBalance(ctx, ownerID, name, deltas[name]); err != nil {
			return fmt.Errorf("adjust account %s: %w", name, err)
		}
	}
	return nil
}

// asInternal 非領域錯誤一律包成 domain.ErrInternal
func asInternal(err error) error {
	if err == nil {
		return nil
	}
	if domain.KindOf(err) != domain.KindInternal || errors.Is(err, domain.ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrInternal, err)
}
