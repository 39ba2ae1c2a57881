package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-cash-ledger/pkg/wal"
)

type accountKey struct {
	ownerID string
	name    domain.AccountName
}

// Store 是一個使用 Mutex 實現的帳本儲存
//
// 結構:
//
//	accounts: 帳戶資料 Map
//	trans: 交易資料 Map
//	mu: 寫入時整個 unit of work 持有寫鎖，讀取持有讀鎖
//	wal: Write-Ahead Log 實例 (nil 代表純記憶體)
type Store struct {
	accounts map[accountKey]*domain.Account
	trans    map[uuid.UUID]*domain.Transaction
	mu       sync.RWMutex
	wal      *wal.WAL
	now      func() time.Time
}

// Option 設定 Store
type Option func(*Store)

// WithWAL 每個成功的 unit of work 會寫入一筆 WAL 紀錄，開啟時會先重播
func WithWAL(w *wal.WAL) Option {
	return func(s *Store) { s.wal = w }
}

// WithClock 設定更新帳戶 UpdatedAt 所用的時間來源
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore 建立一個新的 Store 實例
//
// 回傳:
//
//	*Store: Store 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		accounts: make(map[accountKey]*domain.Account),
		trans:    make(map[uuid.UUID]*domain.Transaction),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.wal != nil {
		if err := s.recoverFromWAL(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// op 是 WAL 中的單一異動，重播時依序套用
type op struct {
	Kind        string              `json:"op"`
	Account     *domain.Account     `json:"account,omitempty"`
	OwnerID     string              `json:"ownerId,omitempty"`
	Name        domain.AccountName  `json:"name,omitempty"`
	Delta       domain.Money        `json:"delta,omitempty"`
	UpdatedAt   time.Time           `json:"updatedAt,omitempty"`
	Transaction *domain.Transaction `json:"transaction,omitempty"`
	ID          uuid.UUID           `json:"id,omitempty"`
}

const (
	opAccountPut = "account.put"
	opAccountAdd = "account.add"
	opTranPut    = "transaction.put"
	opTranDelete = "transaction.delete"
)

// record 一個 unit of work 提交後寫入 WAL 的內容
type record struct {
	Ops []op `json:"ops"`
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
// 只有 NewStore 呼叫，無需 Lock (單執行緒)
func (s *Store) recoverFromWAL() error {
	return s.wal.ReadAll(func(raw json.RawMessage) error {
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("memory: replay: %w", err)
		}
		for _, o := range rec.Ops {
			s.replay(o)
		}
		return nil
	})
}

func (s *Store) replay(o op) {
	switch o.Kind {
	case opAccountPut:
		a := *o.Account
		s.accounts[accountKey{a.OwnerID, a.Name}] = &a
	case opAccountAdd:
		if a, ok := s.accounts[accountKey{o.OwnerID, o.Name}]; ok {
			a.Balance += o.Delta
			a.UpdatedAt = o.UpdatedAt
		}
	case opTranPut:
		s.trans[o.Transaction.ID] = cloneTransaction(o.Transaction)
	case opTranDelete:
		delete(s.trans, o.ID)
	}
}

// Atomic 以寫鎖執行整個 unit of work
//
// fn 回傳錯誤或 WAL 寫入失敗時，依相反順序執行 undo 讓狀態回到執行前。
// WAL 寫入失敗時 wal.Write 已將檔案截斷回寫入前，記憶體與檔案保持一致。
func (s *Store) Atomic(ctx context.Context, fn func(accounts usecase.AccountStore, trans usecase.TransactionStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &unit{store: s}
	if err := fn(&accountView{store: s, unit: u}, &transactionView{store: s, unit: u}); err != nil {
		u.rollback()
		return err
	}
	if s.wal != nil && len(u.ops) > 0 {
		if err := s.wal.Write(record{Ops: u.ops}); err != nil {
			u.rollback()
			return fmt.Errorf("%w: %w", domain.ErrWALWriteFailed, err)
		}
	}
	return nil
}

// Accounts 在 unit of work 之外讀取帳戶
func (s *Store) Accounts() usecase.AccountStore {
	return &accountView{store: s}
}

// Transactions 在 unit of work 之外讀取交易
func (s *Store) Transactions() usecase.TransactionStore {
	return &transactionView{store: s}
}

// unit 紀錄一個 unit of work 的 WAL 異動與 undo 動作
type unit struct {
	store *Store
	ops   []op
	undo  []func()
}

func (u *unit) record(o op, undo func()) {
	u.ops = append(u.ops, o)
	u.undo = append(u.undo, undo)
}

func (u *unit) rollback() {
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.ops, u.undo = nil, nil
}

// readLock 在 unit of work 之外取得讀鎖
func (s *Store) readLock(u *unit) func() {
	if u != nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// writable unit of work 之外不允許寫入
func writable(u *unit) error {
	if u == nil {
		return fmt.Errorf("%w: memory store writes require Atomic", domain.ErrInternal)
	}
	return nil
}

func cloneTransaction(t *domain.Transaction) *domain.Transaction {
	c := *t
	if t.FromAccount != nil {
		from := *t.FromAccount
		c.FromAccount = &from
	}
	if t.ToAccount != nil {
		to := *t.ToAccount
		c.ToAccount = &to
	}
	return &c
}

var (
	_ usecase.Store            = (*Store)(nil)
	_ usecase.AccountStore     = (*accountView)(nil)
	_ usecase.TransactionStore = (*transactionView)(nil)
)

// sortAccounts 依帳戶名稱排序
func sortAccounts(accounts []domain.Account) {
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
}

// Close 關閉 WAL
func (s *Store) Close() error {
	if s.wal == nil {
		return nil
	}
	return s.wal.Close()
}
