package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/spotseed/internal/database/common"
	"github.com/Rana718/spotseed/internal/schema"
	"github.com/mattn/go-sqlite3"
)

type Adapter struct {
	*common.SQLSession
	db *sql.DB
}

// New returns an unconnected SQLite adapter. Rows are inserted one at a time,
// so batchSize is not used.
func New(batchSize int) *Adapter {
	return &Adapter{
		SQLSession: common.NewSQLSession(
			squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
			quoteIdentifier,
			describe,
		),
	}
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// dataSource converts a sqlite:// URL into a go-sqlite3 DSN with foreign keys
// enforced.
func dataSource(url string) string {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_foreign_keys=on&_journal_mode=WAL"
	}
	return dbPath
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("sqlite3", dataSource(url))
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// A single connection keeps the seeding transaction and schema changes
	// on the same database handle.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	s.Bind(db)
	return nil
}

func (s *Adapter) Close() error {
	s.Rollback()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) ApplySchema(ctx context.Context) error {
	stmts, err := schema.Statements("sqlite")
	if err != nil {
		return err
	}
	if err := s.ExecAll(ctx, stmts); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Adapter) Truncate(ctx context.Context, tables []string) error {
	for _, t := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+quoteIdentifier(t)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", t, err)
		}
		// sqlite_sequence only exists once an AUTOINCREMENT table has been written.
		s.db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", t)
	}
	return nil
}

func describe(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("unique violation: %w", err)
	}
	return err
}
