package migration

import (
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"gorm.io/gorm"
)

// Models returns every table owned by the service, parents first
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Bookmark{},
		&domain.Tag{},
		&domain.BookmarkTag{},
		&domain.Like{},
	}
}

// Run executes AutoMigrate for all tables. Existing tables gain missing
// columns and indexes; nothing is dropped.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Pending returns the names of tables that do not exist yet
func Pending(db *gorm.DB) ([]string, error) {
	var missing []string
	for _, model := range Models() {
		if db.Migrator().HasTable(model) {
			continue
		}
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, err
		}
		missing = append(missing, stmt.Schema.Table)
	}
	return missing, nil
}
