// Package schema holds the application tables the seeder writes into, as
// DDL per database provider.
package schema

import (
	_ "embed"
	"fmt"

	"github.com/Rana718/spotseed/internal/database/common"
)

var (
	//go:embed postgres.sql
	postgresDDL string
	//go:embed mysql.sql
	mysqlDDL string
	//go:embed sqlite.sql
	sqliteDDL string
)

// DDL returns the raw CREATE TABLE script for provider.
func DDL(provider string) (string, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgresDDL, nil
	case "mysql":
		return mysqlDDL, nil
	case "sqlite", "sqlite3":
		return sqliteDDL, nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// Statements returns the DDL for provider split into single statements, in
// foreign key order.
func Statements(provider string) ([]string, error) {
	ddl, err := DDL(provider)
	if err != nil {
		return nil, err
	}
	return common.ParseSQLStatements(ddl), nil
}
