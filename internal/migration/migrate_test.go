package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRun_CreatesAllTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	pending, err := Pending(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "bookmarks", "tags", "bookmark_tags", "likes"}, pending)

	require.NoError(t, Run(db))

	pending, err = Pending(db)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// idempotent
	require.NoError(t, Run(db))

	assert.True(t, db.Migrator().HasIndex("bookmarks", "uk_bookmarks_user_tmdb"))
	assert.True(t, db.Migrator().HasIndex("likes", "uk_likes_user_bookmark"))
}
