package postgres

import (
	"testing"
	"time"

	"bank-account-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "db.internal",
		Port:            6432,
		User:            "ledger",
		Password:        "s3cr@t/pw",
		DBName:          "bank_accounts",
		SSLMode:         "disable",
		MaxConns:        20,
		MinConns:        5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

func TestPoolConfig_MapsDatabaseSection(t *testing.T) {
	cfg := testDatabaseConfig()

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)

	conn := poolCfg.ConnConfig
	assert.Equal(t, "db.internal", conn.Host)
	assert.Equal(t, uint16(6432), conn.Port)
	assert.Equal(t, "ledger", conn.User)
	assert.Equal(t, "s3cr@t/pw", conn.Password, "escaped credentials survive parsing")
	assert.Equal(t, "bank_accounts", conn.Database)
	assert.Nil(t, conn.TLSConfig, "sslmode=disable")

	assert.Equal(t, int32(20), poolCfg.MaxConns)
	assert.Equal(t, int32(5), poolCfg.MinConns)
	assert.Equal(t, 30*time.Minute, poolCfg.MaxConnLifetime)
}

func TestPoolConfig_ZeroValuesKeepPgxDefaults(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MaxConns, cfg.MinConns, cfg.ConnMaxLifetime = 0, 0, 0

	defaults, err := poolConfig(config.DatabaseConfig{Host: "localhost", Port: 5432, SSLMode: "disable"})
	require.NoError(t, err)

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Positive(t, poolCfg.MaxConns)
	assert.Equal(t, defaults.MaxConns, poolCfg.MaxConns)
	assert.Equal(t, defaults.MaxConnLifetime, poolCfg.MaxConnLifetime)
}

func TestPoolConfig_MinAboveMax(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MaxConns, cfg.MinConns = 2, 10

	_, err := poolConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_conns")
}

func TestPoolConfig_BadSSLMode(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.SSLMode = "sometimes"

	_, err := poolConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing database config")
}
