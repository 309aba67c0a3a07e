package database

import (
	"context"
	"fmt"

	"github.com/Rana718/spotseed/internal/database/mysql"
	"github.com/Rana718/spotseed/internal/database/postgres"
	"github.com/Rana718/spotseed/internal/database/sqlite"
)

func NewAdapter(provider string, batchSize int) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(batchSize), nil
	case "mysql":
		return mysql.New(batchSize), nil
	case "sqlite", "sqlite3":
		return sqlite.New(batchSize), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// Open creates the adapter for provider and connects it to url.
func Open(ctx context.Context, provider, url string, batchSize int) (DatabaseAdapter, error) {
	adapter, err := NewAdapter(provider, batchSize)
	if err != nil {
		return nil, err
	}
	if err := adapter.Connect(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return adapter, nil
}
