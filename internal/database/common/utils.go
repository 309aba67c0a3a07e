package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Pre-compiled regex patterns for SQL parsing
var (
	commentRegex = regexp.MustCompile(`(?m)^\s*--.*$`)
	stringRegex  = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`")
)

// ParseSQLStatements splits a DDL script into statements, ignoring semicolons
// inside quoted strings and dropping line comments.
func ParseSQLStatements(sql string) []string {
	sql = commentRegex.ReplaceAllString(sql, "")

	stringPositions := make(map[int]bool)
	for _, match := range stringRegex.FindAllStringIndex(sql, -1) {
		for i := match[0]; i < match[1]; i++ {
			stringPositions[i] = true
		}
	}

	estimatedStmts := strings.Count(sql, ";") + 1
	statements := make([]string, 0, estimatedStmts)

	var currentStatement strings.Builder
	currentStatement.Grow(len(sql) / estimatedStmts)

	for i, char := range sql {
		if char == ';' && !stringPositions[i] {
			stmt := strings.TrimSpace(currentStatement.String())
			if stmt != "" && !strings.HasPrefix(stmt, "/*") {
				statements = append(statements, stmt)
			}
			currentStatement.Reset()
		} else {
			currentStatement.WriteRune(char)
		}
	}

	if currentStatement.Len() > 0 {
		stmt := strings.TrimSpace(currentStatement.String())
		if stmt != "" && !strings.HasPrefix(stmt, "/*") {
			statements = append(statements, stmt)
		}
	}

	return statements
}

// BuildInsert renders a multi-row INSERT for records that all target the same
// table. quote is applied to the table name, which may be a reserved word.
func BuildInsert(qb squirrel.StatementBuilderType, quote func(string) string, records []Record, suffix string) (string, []interface{}, error) {
	table, ok := SameTable(records)
	if !ok {
		return "", nil, fmt.Errorf("batch must target exactly one table")
	}

	columns := records[0].Columns()
	q := qb.Insert(quote(table)).Columns(columns...)
	for _, r := range records {
		values := r.Values()
		if len(values) != len(columns) {
			return "", nil, fmt.Errorf("%s record has %d values for %d columns", table, len(values), len(columns))
		}
		q = q.Values(values...)
	}
	if suffix != "" {
		q = q.Suffix(suffix)
	}
	return q.ToSql()
}
