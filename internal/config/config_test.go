package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendrop/minter/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
ethereum:
  contract_address: "0x22C1f6050E56d2590D2cfB3858C2b3d0aD8BA757"
signers:
  admin_key: "aa"
claims:
  secret_key: "top-secret"
`)

	cfg, err := config.LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int64(1), cfg.Ethereum.ChainID)
	assert.Equal(t, time.Second, cfg.Claims.NotFoundDelay)
	assert.Equal(t, 5*time.Second, cfg.Claims.RejectDelay)
	assert.False(t, cfg.Debug)
}

func TestLoadAPIConfig_MissingContractAddress(t *testing.T) {
	path := writeConfigFile(t, `
signers:
  admin_key: "aa"
claims:
  secret_key: "top-secret"
`)

	_, err := config.LoadAPIConfig(path, t.TempDir())
	assert.ErrorContains(t, err, "contract_address")
}

func TestLoadAPIConfig_Overrides(t *testing.T) {
	path := writeConfigFile(t, `
debug: true
server:
  port: 9090
database:
  host: db.internal
  dbname: minter
ethereum:
  rpc_url: "http://localhost:8545"
  contract_address: "0x22C1f6050E56d2590D2cfB3858C2b3d0aD8BA757"
  chain_id: 100
signers:
  admin_key: "aa"
  helper_keys:
    - "bb"
    - "cc"
claims:
  secret_key: "top-secret"
  reject_delay: "250ms"
`)

	cfg, err := config.LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, int64(100), cfg.Ethereum.ChainID)
	assert.Len(t, cfg.Signers.HelperKeys, 2)
	assert.Equal(t, 250*time.Millisecond, cfg.Claims.RejectDelay)
}

func TestLoadReconcilerConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
  dbname: minter
`)

	cfg, err := config.LoadReconcilerConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 10, cfg.Worker.PoolSize)
	assert.Equal(t, 256, cfg.Worker.QueueSize)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := config.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "minter", Password: "minter",
		DBName: "minter_dev", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=minter password=minter dbname=minter_dev sslmode=disable",
		c.DSN())
}
