package database

import (
	"path/filepath"
	"testing"

	"github.com/cinefeel/cinefeel-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Name:   filepath.Join(t.TempDir(), "cinefeel.db"),
		},
	}

	db, err := Open(cfg)
	require.NoError(t, err)
	defer func() { _ = Close(db) }()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "oracle", Name: "x"}}

	_, err := Open(cfg)
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	dsn, err := mysqlDSN("root:pw@tcp(127.0.0.1:3306)/cinefeel?loc=Local")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.Contains(t, dsn, "/cinefeel")

	_, err = mysqlDSN("not a dsn")
	assert.Error(t, err)
}
