package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
)

// accountView 是 AccountStore 的記憶體實作；unit 為 nil 時只能讀取
type accountView struct {
	store *Store
	unit  *unit
}

func (v *accountView) Get(ctx context.Context, ownerID string, name domain.AccountName) (*domain.Account, error) {
	defer v.store.readLock(v.unit)()
	a, ok := v.store.accounts[accountKey{ownerID, name}]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	c := *a
	return &c, nil
}

func (v *accountView) List(ctx context.Context, ownerID string) ([]domain.Account, error) {
	defer v.store.readLock(v.unit)()
	out := make([]domain.Account, 0, len(domain.AccountNames))
	for key, a := range v.store.accounts {
		if key.ownerID == ownerID {
			out = append(out, *a)
		}
	}
	sortAccounts(out)
	return out, nil
}

func (v *accountView) Create(ctx context.Context, account *domain.Account) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	key := accountKey{account.OwnerID, account.Name}
	if _, ok := v.store.accounts[key]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateAccount, account.Name)
	}
	v.put(key, account)
	return nil
}

func (v *accountView) Ensure(ctx context.Context, ownerID string, name domain.AccountName, now time.Time) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	key := accountKey{ownerID, name}
	if _, ok := v.store.accounts[key]; ok {
		return nil
	}
	v.put(key, domain.NewAccount(ownerID, name, now))
	return nil
}

func (v *accountView) put(key accountKey, account *domain.Account) {
	c := *account
	v.store.accounts[key] = &c
	snapshot := c
	v.unit.record(op{Kind: opAccountPut, Account: &snapshot}, func() {
		delete(v.store.accounts, key)
	})
}

// Lock 整個 unit of work 已持有寫鎖，這裡只確認名稱合法
func (v *accountView) Lock(ctx context.Context, ownerID string, names ...domain.AccountName) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	for _, name := range names {
		if !name.Valid() {
			return domain.Invalid("account", "must be one of Cash, Bank, Wallet")
		}
	}
	return nil
}

func (v *accountView) AddBalance(ctx context.Context, ownerID string, name domain.AccountName, delta domain.Money) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	a, ok := v.store.accounts[accountKey{ownerID, name}]
	if !ok {
		return domain.ErrAccountNotFound
	}
	v.add(a, delta)
	return nil
}

func (v *accountView) Debit(ctx context.Context, ownerID string, name domain.AccountName, amount domain.Money) error {
	if err := writable(v.unit); err != nil {
		return err
	}
	a, ok := v.store.accounts[accountKey{ownerID, name}]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if a.Balance < amount {
		return fmt.Errorf("%w in %s: current balance %s", domain.ErrInsufficientBalance, name, a.Balance)
	}
	v.add(a, -amount)
	return nil
}

func (v *accountView) add(a *domain.Account, delta domain.Money) {
	prevUpdated := a.UpdatedAt
	now := v.store.now()
	a.Balance += delta
	a.UpdatedAt = now
	v.unit.record(op{Kind: opAccountAdd, OwnerID: a.OwnerID, Name: a.Name, Delta: delta, UpdatedAt: now}, func() {
		a.Balance -= delta
		a.UpdatedAt = prevUpdated
	})
}
