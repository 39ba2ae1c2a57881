package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-cash-ledger/pkg/database"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "127.0.0.1:6000"
store:
  driver: gorm
database:
  driver: mysql
  host: db
  dbname: cash
  conn_max_lifetime: 5m
ledger:
  reconcile_amount_edits: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6000", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, database.DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Ledger.ReconcileAmountEdits)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":50051", cfg.Server.Address)
	assert.Equal(t, StoreGorm, cfg.Store.Driver)
	assert.Equal(t, database.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/ledger.db", cfg.Database.Path)
	require.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LEDGER_STORE_DRIVER", "memory")
	t.Setenv("LEDGER_WAL_PATH", "/tmp/ledger.wal")
	t.Setenv("LEDGER_DB_PORT", "3307")
	t.Setenv("LEDGER_RECONCILE_DUPLICATES", "true")
	t.Setenv("LEDGER_LOG_FORMAT", "json")

	cfg, err := Load(writeConfig(t, "store:\n  driver: gorm\n"))
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "/tmp/ledger.wal", cfg.Store.WALPath)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.True(t, cfg.Ledger.ReconcileDuplicates)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverrideErrors(t *testing.T) {
	t.Setenv("LEDGER_DB_PORT", "abc")
	t.Setenv("LEDGER_RECONCILE_AMOUNT_EDITS", "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEDGER_DB_PORT")
	assert.Contains(t, err.Error(), "LEDGER_RECONCILE_AMOUNT_EDITS")
}

func TestInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Address: "no-port"},
		Store:  StoreConfig{Driver: "redis"},
	}
	cfg.Log.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server address")
	assert.Contains(t, err.Error(), "invalid store driver")
	assert.Contains(t, err.Error(), "invalid log format")

	cfg = &Config{
		Server:   ServerConfig{Address: ":50051"},
		Store:    StoreConfig{Driver: StoreGorm},
		Database: database.Config{Driver: database.DriverMySQL},
	}
	cfg.Log.Format = "text"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql requires host")
}
