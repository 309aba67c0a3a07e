package database

import (
	"context"
	"fmt"

	"github.com/Rana718/spotseed/internal/database/common"
)

// Record is a row the sink can insert.
type Record = common.Record

// Session is the persistence sink the seeder writes through. AddBatch assigns
// primary keys to the records it is given but does not make them durable;
// Commit does.
type Session interface {
	AddBatch(ctx context.Context, records []Record) error
	Commit(ctx context.Context) error
}

// DatabaseAdapter is a Session bound to a live database.
type DatabaseAdapter interface {
	Session

	Connect(ctx context.Context, url string) error
	Ping(ctx context.Context) error
	Close() error

	// ApplySchema creates the application tables if they are missing.
	ApplySchema(ctx context.Context) error
	// Truncate empties tables in the order given.
	Truncate(ctx context.Context, tables []string) error
}

// AddAndCommit submits records as one batch and commits it.
func AddAndCommit(ctx context.Context, s Session, records []Record) error {
	if err := s.AddBatch(ctx, records); err != nil {
		return err
	}
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}
