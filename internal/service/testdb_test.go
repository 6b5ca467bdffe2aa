package service

import (
	"context"
	"testing"

	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/migration"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated in-memory SQLite database on a single connection
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Run(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, nickname string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Password: "x", Nickname: nickname}
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func tagsPtr(tags ...string) *[]string {
	if tags == nil {
		tags = []string{}
	}
	return &tags
}
