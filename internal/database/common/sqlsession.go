package common

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// SQLSession implements the sink on database/sql for drivers that report
// generated keys through LastInsertId. Rows are inserted one statement at a
// time inside a transaction so every record gets its own id.
type SQLSession struct {
	db       *sql.DB
	tx       *sql.Tx
	qb       squirrel.StatementBuilderType
	quote    func(string) string
	describe func(error) error
}

func NewSQLSession(qb squirrel.StatementBuilderType, quote func(string) string, describe func(error) error) *SQLSession {
	if describe == nil {
		describe = func(err error) error { return err }
	}
	return &SQLSession{qb: qb, quote: quote, describe: describe}
}

func (s *SQLSession) Bind(db *sql.DB) {
	s.db = db
}

func (s *SQLSession) DB() *sql.DB {
	return s.db
}

func (s *SQLSession) begin(ctx context.Context) (*sql.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.tx = tx
	return tx, nil
}

func (s *SQLSession) AddBatch(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	if _, ok := SameTable(records); !ok {
		return fmt.Errorf("batch must target exactly one table")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	for _, r := range records {
		query, args, err := BuildInsert(s.qb, s.quote, []Record{r}, "")
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return s.describe(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read inserted id: %w", err)
		}
		r.SetID(id)
	}
	return nil
}

func (s *SQLSession) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return s.describe(err)
	}
	return nil
}

// Rollback discards the open transaction, if any.
func (s *SQLSession) Rollback() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}

// ExecAll runs statements outside the seeding transaction.
func (s *SQLSession) ExecAll(ctx context.Context, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
