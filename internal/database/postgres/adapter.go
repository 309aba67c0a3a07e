package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/spotseed/internal/database/common"
	"github.com/Rana718/spotseed/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const pgErrUniqueViolation = "23505"

// Adapter writes batches inside one open transaction per stage. Commit ends
// the transaction; the next AddBatch opens a new one.
type Adapter struct {
	pool      *pgxpool.Pool
	tx        pgx.Tx
	qb        squirrel.StatementBuilderType
	batchSize int
}

func New(batchSize int) *Adapter {
	if batchSize <= 0 {
		batchSize = common.DefaultBatchSize
	}
	return &Adapter{
		qb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		batchSize: batchSize,
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	// Exec mode sends parameters as text, which lets decimal and nullable
	// values go through their driver.Valuer.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.tx != nil {
		p.tx.Rollback(context.Background())
		p.tx = nil
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) begin(ctx context.Context) (pgx.Tx, error) {
	if p.tx != nil {
		return p.tx, nil
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	p.tx = tx
	return tx, nil
}

// AddBatch inserts records with multi-row INSERT ... RETURNING id and hands
// the returned ids back in VALUES order.
func (p *Adapter) AddBatch(ctx context.Context, records []common.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}

	for _, chunk := range common.Chunk(records, p.batchSize) {
		query, args, err := common.BuildInsert(p.qb, pq.QuoteIdentifier, chunk, "RETURNING id")
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return describe(err)
		}

		i := 0
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan returned id: %w", err)
			}
			if i < len(chunk) {
				chunk[i].SetID(id)
			}
			i++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return describe(err)
		}
		if i != len(chunk) {
			return fmt.Errorf("insert into %s returned %d ids for %d rows", chunk[0].TableName(), i, len(chunk))
		}
	}
	return nil
}

func (p *Adapter) Commit(ctx context.Context) error {
	if p.tx == nil {
		return nil
	}
	err := p.tx.Commit(ctx)
	p.tx = nil
	if err != nil {
		return describe(err)
	}
	return nil
}

func (p *Adapter) ApplySchema(ctx context.Context) error {
	stmts, err := schema.Statements("postgresql")
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (p *Adapter) Truncate(ctx context.Context, tables []string) error {
	if len(tables) == 0 {
		return nil
	}
	quoted := make([]string, len(tables))
	for i, t := range tables {
		quoted[i] = pq.QuoteIdentifier(t)
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(quoted, ", "))
	if _, err := p.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

// describe names the violated constraint for unique violations.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return fmt.Errorf("unique violation on %s (%s): %w", pgErr.TableName, pgErr.ConstraintName, err)
	}
	return err
}
