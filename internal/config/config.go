package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-cash-ledger/pkg/database"
	"github.com/JoeShih716/go-cash-ledger/pkg/logger"
)

// DefaultPath 預設的設定檔位置
const DefaultPath = "config/config.yaml"

// EnvPrefix 環境變數前綴，環境變數優先於設定檔
const EnvPrefix = "LEDGER_"

// 儲存層種類
const (
	StoreGorm   = "gorm"
	StoreMemory = "memory"
)

// Config 服務的完整設定
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Store    StoreConfig     `yaml:"store"`
	Database database.Config `yaml:"database"`
	Ledger   LedgerConfig    `yaml:"ledger"`
	Log      logger.Config   `yaml:"log"`
}

// ServerConfig gRPC server 設定
type ServerConfig struct {
	Address         string        `yaml:"address"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Reflection      bool          `yaml:"reflection"`
}

// StoreConfig 選擇儲存層
type StoreConfig struct {
	Driver  string `yaml:"driver"`   // gorm / memory
	WALPath string `yaml:"wal_path"` // memory 使用的 WAL 檔案
}

// LedgerConfig 帳務政策
type LedgerConfig struct {
	ReconcileAmountEdits bool `yaml:"reconcile_amount_edits"`
	ReconcileDuplicates  bool `yaml:"reconcile_duplicates"`
}

// Load 讀取設定檔並套用環境變數與預設值
//
// 參數:
//
//	path: 設定檔路徑，檔案不存在時只使用環境變數與預設值
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnv 以 LEDGER_* 環境變數覆蓋設定
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	str("SERVER_ADDRESS", &c.Server.Address)
	str("STORE_DRIVER", &c.Store.Driver)
	str("WAL_PATH", &c.Store.WALPath)
	str("DB_DRIVER", &c.Database.Driver)
	str("DB_HOST", &c.Database.Host)
	num("DB_PORT", &c.Database.Port)
	str("DB_USER", &c.Database.User)
	str("DB_PASSWORD", &c.Database.Password)
	str("DB_NAME", &c.Database.DBName)
	str("DB_PATH", &c.Database.Path)
	str("DB_LOG_LEVEL", &c.Database.LogLevel)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	flag("RECONCILE_AMOUNT_EDITS", &c.Ledger.ReconcileAmountEdits)
	flag("RECONCILE_DUPLICATES", &c.Ledger.ReconcileDuplicates)
	return errors.Join(errs...)
}

// applyDefaults 補全沒有設定的欄位
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":50051"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Store.Driver == "" {
		c.Store.Driver = StoreGorm
	}
	if c.Store.WALPath == "" {
		c.Store.WALPath = "data/ledger.wal"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = database.DriverSQLite
	}
	if c.Database.Driver == database.DriverSQLite && c.Database.Path == "" {
		c.Database.Path = "data/ledger.db"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 100
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 30 * time.Minute
	}
	if c.Database.ConnectRetries == 0 {
		c.Database.ConnectRetries = 10
	}
	if c.Database.RetryInterval == 0 {
		c.Database.RetryInterval = 2 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate 檢查設定，一次回傳所有問題
func (c *Config) Validate() error {
	var errs []error

	if _, port, err := net.SplitHostPort(c.Server.Address); err != nil {
		errs = append(errs, fmt.Errorf("invalid server address %q: %w", c.Server.Address, err))
	} else if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port %q: must be between 0 and 65535", port))
	}

	switch c.Store.Driver {
	case StoreGorm:
		if err := c.Database.Validate(); err != nil {
			errs = append(errs, err)
		}
	case StoreMemory:
		if strings.TrimSpace(c.Store.WALPath) == "" {
			errs = append(errs, errors.New("store.wal_path is required for the memory store"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid store driver %q: must be one of %s, %s", c.Store.Driver, StoreGorm, StoreMemory))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format))
	}

	return errors.Join(errs...)
}
