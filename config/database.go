package config

import (
	"fmt"
	"log"
	"strings"

	"cafe-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects to the configured database and migrates the cafe table.
// The caller owns the handle and closes it with CloseDB.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.DBSource))
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Cafe{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Printf("Database connected (%s) and migrated", cfg.DBDriver)
	return db, nil
}

// CloseDB releases the connection pool behind db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN makes concurrent writers wait on the file lock instead of
// failing with SQLITE_BUSY.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=busy_timeout") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}
