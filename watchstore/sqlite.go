package watchstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens (creating if necessary) a SQLite-backed gorm.DB at path and
// runs migrations. Unlike the teacher's db.Connect, there is no Turso/libsql
// branch: a local watch log has no business talking to a remote database, so
// domkit-watch sticks to glebarez/sqlite's pure-Go, cgo-free driver.
func Connect(path string, debug bool) (*gorm.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gcfg := &gorm.Config{}
	if debug {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(path), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate runs domkit-watch's schema migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MutationLog{})
}
