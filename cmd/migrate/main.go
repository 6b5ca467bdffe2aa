package main

import (
	"flag"
	"log"
	"os"

	"github.com/cinefeel/cinefeel-backend/internal/config"
	"github.com/cinefeel/cinefeel-backend/internal/database"
	"github.com/cinefeel/cinefeel-backend/internal/migration"
	pkglogger "github.com/cinefeel/cinefeel-backend/pkg/logger"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "config file path (default: configs/config.$APP_ENV.yaml)")
	dryRun := flag.Bool("dry-run", false, "list missing tables without creating them")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("loaded env files: %v", dotenvFiles)

	path := *configPath
	if path == "" {
		path = config.ConfigPath(env)
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if *verbose {
		db.Logger = db.Logger.LogMode(gormlogger.Info)
	}

	pending, err := migration.Pending(db)
	if err != nil {
		log.Fatalf("Failed to inspect schema: %v", err)
	}

	if *dryRun {
		if len(pending) == 0 {
			pkglogger.Info("[dry-run] schema is up to date")
			return
		}
		pkglogger.Info("[dry-run] would create tables: %v", pending)
		return
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.Info("Migration completed (created: %v)", pending)
}
