package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

// Client 封裝 GORM DB 實例
type Client struct {
	db     *gorm.DB
	driver string
}

// NewClient 建立並回傳一個新的資料庫客戶端實例 (GORM)
//
// 參數:
//
//	cfg: Config - 連線配置
//	log: 記錄重試過程，nil 代表不記錄
//
// 回傳值:
//
//	*Client: 封裝後的客戶端
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("database")

	gormConfig := &gorm.Config{
		// 預設跳過事務模式，需要原子性的地方一律明確使用 Transaction
		SkipDefaultTransaction: true,
		// duplicate key 轉成 gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         newLogger(cfg.LogLevel),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	if cfg.Driver == DriverSQLite && cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	maxRetries := cfg.ConnectRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}
	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = 2 * time.Second
	}

	var db *gorm.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(dialector(cfg), gormConfig)
		if err == nil {
			// Try pinging to ensure connection is actually alive
			rawDB, dbErr := db.DB()
			if dbErr == nil {
				if err = rawDB.Ping(); err == nil {
					break
				}
			} else {
				err = dbErr
			}
		}

		if i < maxRetries-1 {
			log.Warn("database connect failed, retrying",
				"attempt", i+1,
				"max_attempts", maxRetries,
				"retry_in", retryInterval.String(),
				logger.FieldError, err)
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", cfg.Driver, maxRetries, err)
	}

	// 取得底層 sql.DB 物件以設定連線池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.db: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite 只允許單一寫入者，用一條連線讓 Transaction 依序執行
		sqlDB.SetMaxOpenConns(1)
		_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
		_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
		_, _ = sqlDB.Exec("PRAGMA busy_timeout = 5000;")
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	log.Info("database connected", "driver", cfg.Driver)
	return &Client{db: db, driver: cfg.Driver}, nil
}

func dialector(cfg Config) gorm.Dialector {
	if cfg.Driver == DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return mysql.Open(cfg.DSN())
}

// DB 回傳底層的 *gorm.DB 實例，供 adapter 使用
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Driver 回傳使用中的資料庫種類
func (c *Client) Driver() string {
	return c.driver
}

// Close 關閉資料庫連線
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger 根據配置建立 GORM Logger
func newLogger(level string) gormlogger.Interface {
	var logLevel gormlogger.LogLevel
	switch level {
	case "info":
		logLevel = gormlogger.Info
	case "warn":
		logLevel = gormlogger.Warn
	case "error":
		logLevel = gormlogger.Error
	case "silent":
		logLevel = gormlogger.Silent
	default:
		logLevel = gormlogger.Error // 預設只記錄錯誤
	}

	return gormlogger.Default.LogMode(logLevel)
}
