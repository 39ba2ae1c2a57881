package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JoeShih716/go-cash-ledger/internal/app/core/adapter/out/gormstore"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-cash-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-cash-ledger/internal/config"
	"github.com/JoeShih716/go-cash-ledger/pkg/database"
	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
	"github.com/JoeShih716/go-cash-ledger/pkg/wal"
)

// Store 依設定開啟的儲存層，Close 釋放底層資源 (DB 連線或 WAL 檔案)
type Store struct {
	usecase.Store
	closer func() error
}

// Close 關閉底層資源
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// OpenStore 依 store.driver 建立儲存層
//
// 參數:
//
//	cfg: 完整設定
//	log: 用於記錄連線狀態
//
// 回傳:
//
//	*Store: 可交給 LedgerService 與 DuplicateDetector 的儲存層
//	error: 連線或 WAL 恢復失敗
func OpenStore(cfg *config.Config, log *logger.Logger) (*Store, error) {
	log = log.WithComponent("bootstrap")

	switch cfg.Store.Driver {
	case config.StoreGorm:
		client, err := database.NewClient(cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		store, err := gormstore.New(client)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("init gorm store: %w", err)
		}
		log.Info("store ready", "driver", cfg.Store.Driver, "database", client.Driver())
		return &Store{Store: store, closer: client.Close}, nil

	case config.StoreMemory:
		if err := os.MkdirAll(filepath.Dir(cfg.Store.WALPath), 0o755); err != nil {
			return nil, fmt.Errorf("create wal dir: %w", err)
		}
		w, err := wal.Open(cfg.Store.WALPath)
		if err != nil {
			return nil, err
		}
		store, err := memory.NewStore(memory.WithWAL(w))
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("init memory store: %w", err)
		}
		log.Info("store ready", "driver", cfg.Store.Driver, "wal", w.Path())
		return &Store{Store: store, closer: store.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
