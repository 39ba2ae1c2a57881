package database

import (
	"fmt"
	"time"
)

// 支援的資料庫
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config 定義資料庫連線與連線池的配置
type Config struct {
	Driver string `yaml:"driver"` // mysql / sqlite

	Host     string `yaml:"host"`     // 資料庫主機地址
	Port     int    `yaml:"port"`     // 資料庫埠號 (預設 3306)
	User     string `yaml:"user"`     // 使用者名稱
	Password string `yaml:"password"` // 密碼
	DBName   string `yaml:"dbname"`   // 資料庫名稱

	// sqlite 檔案路徑，":memory:" 代表記憶體資料庫
	Path string `yaml:"path"`

	// 連線池設定 (Connection Pool)
	// 參考: https://github.com/go-sql-driver/mysql#important-settings
	MaxOpenConns    int           `yaml:"max_open_conns"`    // 最大開啟連線數
	MaxIdleConns    int           `yaml:"max_idle_conns"`    // 最大閒置連線數
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"` // 連線最大存活時間

	// 連線重試
	ConnectRetries int           `yaml:"connect_retries"`
	RetryInterval  time.Duration `yaml:"retry_interval"`

	// GORM 設定
	LogLevel string `yaml:"log_level"` // Log 等級: "silent", "error", "warn", "info"
}

// DSN (Data Source Name) 產生連線字串
// mysql 格式: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true
// clientFoundRows 讓 UPDATE 回傳符合條件的列數，內容沒變動時也不會是 0
// sqlite 直接使用檔案路徑
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
	)
}

// Validate 檢查必要欄位
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverMySQL:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("database: mysql requires host and dbname")
		}
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("database: sqlite requires path")
		}
	default:
		return fmt.Errorf("database: unsupported driver %q", c.Driver)
	}
	return nil
}
