package kvstore

import (
	"context"
	"fmt"

	"github.com/hanafi-dev/sentra-portal-api/internal/database"
)

// Options selects and configures the persistence backend.
type Options struct {
	// Backend is one of "redis", "sqlite", "postgres" or "memory".
	Backend     string
	RedisURL    string
	DatabaseURL string
	SQLitePath  string
	Prefix      string
}

// Open dials the configured backend and returns a ready Store.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		client, err := database.ConnectRedis(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, opts.Prefix), nil
	case "sqlite":
		db, err := database.OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)
	case "postgres":
		db, err := database.ConnectPostgres(opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)
	default:
		return nil, fmt.Errorf("unknown kv backend: %s", opts.Backend)
	}
}
