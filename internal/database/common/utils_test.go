package common

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	table string
	name  string
	id    int64
}

func (r *row) TableName() string { return r.table }
func (r *row) Columns() []string { return []string{"name"} }
func (r *row) Values() []interface{} { return []interface{}{r.name} }
func (r *row) SetID(id int64) { r.id = id }

func TestParseSQLStatements(t *testing.T) {
	sql := `-- users
CREATE TABLE a (id INT, note TEXT DEFAULT 'x;y');
CREATE TABLE b (id INT);`

	stmts := ParseSQLStatements(sql)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "'x;y'")
	assert.True(t, strings.HasPrefix(stmts[1], "CREATE TABLE b"))
}

func TestBuildInsert(t *testing.T) {
	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	records := []Record{&row{table: "user", name: "a"}, &row{table: "user", name: "b"}}

	query, args, err := BuildInsert(qb, func(s string) string { return `"` + s + `"` }, records, "RETURNING id")
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "user" (name) VALUES ($1),($2) RETURNING id`, query)
	assert.Equal(t, []interface{}{"a", "b"}, args)
}

func TestBuildInsertRejectsMixedTables(t *testing.T) {
	qb := squirrel.StatementBuilder
	records := []Record{&row{table: "user"}, &row{table: "vault"}}

	_, _, err := BuildInsert(qb, func(s string) string { return s }, records, "")
	assert.Error(t, err)
}

func TestChunk(t *testing.T) {
	records := make([]Record, 5)
	for i := range records {
		records[i] = &row{table: "t"}
	}

	chunks := Chunk(records, 2)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[2], 1)
	assert.Empty(t, Chunk(nil, 2))
}
