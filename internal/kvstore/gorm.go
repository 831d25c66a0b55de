package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is the row shape used by the SQL-backed store. The value column is
// a JSON type so snapshots stay inspectable from the database shell.
type Snapshot struct {
	Key   string         `gorm:"primaryKey;size:128"`
	Value datatypes.JSON `gorm:"type:json"`
}

// GormStore persists snapshots in a single key/value table. It works against
// both the SQLite and PostgreSQL drivers.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the snapshot table and wraps the connection.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot table: %w", err)
	}

	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row Snapshot
	err := g.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select snapshot %q: %w", key, err)
	}

	return string(row.Value), true, nil
}

func (g *GormStore) Set(ctx context.Context, key, value string) error {
	row := Snapshot{Key: key, Value: datatypes.JSON(value)}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert snapshot %q: %w", key, err)
	}

	return nil
}
