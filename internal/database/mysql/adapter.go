package mysql

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
	"github.com/go-sql-driver/mysql"
)

const errDuplicateEntry = 1062

type Adapter struct {
	*common.SQLSession
	db *sql.DB
}

// New returns an unconnected MySQL adapter. Rows are inserted one at a time,
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
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// ParseURL turns a mysql:// URL or a driver DSN into a driver DSN with
// parseTime enabled.
func ParseURL(url string) (string, error) {
	dsn := url
	if strings.HasPrefix(url, "mysql://") {
		dsn = strings.TrimPrefix(url, "mysql://")

		atIndex := strings.LastIndex(dsn, "@")
		if atIndex > 0 {
			credentials := dsn[:atIndex]
			remainder := dsn[atIndex+1:]

			slashIndex := strings.Index(remainder, "/")
			if slashIndex > 0 {
				hostPort := remainder[:slashIndex]
				dbAndParams := remainder[slashIndex+1:]

				dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=REQUIRED", "tls=skip-verify")
				dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=DISABLED", "tls=false")
				dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=require", "tls=skip-verify")
				dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=disable", "tls=false")

				dsn = fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
			}
		}
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MySQL DSN: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn, err := ParseURL(url)
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	m.Bind(db)
	return nil
}

func (m *Adapter) Close() error {
	m.Rollback()
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) ApplySchema(ctx context.Context) error {
	stmts, err := schema.Statements("mysql")
	if err != nil {
		return err
	}
	if err := m.ExecAll(ctx, stmts); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (m *Adapter) Truncate(ctx context.Context, tables []string) error {
	stmts := []string{"SET FOREIGN_KEY_CHECKS = 0"}
	for _, t := range tables {
		stmts = append(stmts, "TRUNCATE TABLE "+quoteIdentifier(t))
	}
	stmts = append(stmts, "SET FOREIGN_KEY_CHECKS = 1")

	// SET applies per connection, so pin one for the whole sequence.
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
	}
	return nil
}

func describe(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return fmt.Errorf("unique violation: %w", err)
	}
	return err
}
