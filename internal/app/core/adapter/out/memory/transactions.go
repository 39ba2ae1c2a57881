package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

// transactionView 是 TransactionStore 的記憶體實作；unit 為 nil 時只能讀取
type transactionView struct {
	store *Store
	unit  *unit
}

func (v *transactionView) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	defer v.store.readLock(v.unit)()
	t, ok := v.store.trans[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return cloneTransaction(t), nil
}

func (v *transactionView) Create(ctx context.Context, tran *domain.Transaction) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	v.put(tran, nil)
	return nil
}

func (v *transactionView) Update(ctx context.Context, tran *domain.Transaction) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	prev, ok := v.store.trans[tran.ID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	updated := cloneTransaction(tran)
	updated.CreatedAt = prev.CreatedAt
	v.put(updated, prev)
	return nil
}

// put 寫入交易；prev 為 nil 代表新增，undo 時刪除
func (v *transactionView) put(tran, prev *domain.Transaction) {
	stored := cloneTransaction(tran)
	v.store.trans[stored.ID] = stored
	v.unit.record(op{Kind: opTranPut, Transaction: cloneTransaction(stored)}, func() {
		if prev == nil {
			delete(v.store.trans, stored.ID)
			return
		}
		v.store.trans[prev.ID] = prev
	})
}

func (v *transactionView) Delete(ctx context.Context, id uuid.UUID) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	if !v.remove(id) {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (v *transactionView) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if err := writable(v.unit); err != nil {
		return 0, err
	}
	var n int64
	for _, id := range ids {
		if v.remove(id) {
			n++
		}
	}
	return n, nil
}

func (v *transactionView) remove(id uuid.UUID) bool {
	prev, ok := v.store.trans[id]
	if !ok {
		return false
	}
	delete(v.store.trans, id)
	v.unit.record(op{Kind: opTranDelete, ID: id}, func() {
		v.store.trans[id] = prev
	})
	return true
}

func (v *transactionView) List(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	defer v.store.readLock(v.unit)()
	filter = filter.Normalized()
	out := make([]domain.Transaction, 0)
	for _, t := range v.store.trans {
		if t.OwnerID == ownerID && filter.Match(t) {
			out = append(out, *cloneTransaction(t))
		}
	}
	domain.SortByTransactionDateDesc(out)
	return out, nil
}

func (v *transactionView) Scan(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	defer v.store.readLock(v.unit)()
	out := make([]domain.Transaction, 0, len(v.store.trans))
	for _, t := range v.store.trans {
		if ownerID == "" || t.OwnerID == ownerID {
			out = append(out, *cloneTransaction(t))
		}
	}
	domain.SortByCreatedAtDesc(out)
	return out, nil
}
