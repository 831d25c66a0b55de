package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens (or creates) a SQLite database at path. The path ":memory:"
// yields a throwaway database, which the tests rely on.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = "sentra.db"
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return db, nil
}
