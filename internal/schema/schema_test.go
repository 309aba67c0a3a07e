package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementsPerProvider(t *testing.T) {
	for _, provider := range []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"} {
		t.Run(provider, func(t *testing.T) {
			stmts, err := Statements(provider)
			require.NoError(t, err)
			require.Len(t, stmts, 6)
			for _, stmt := range stmts {
				assert.True(t, strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS"), stmt)
			}
			assert.Contains(t, stmts[0], "user")
			assert.Contains(t, stmts[5], "transaction_hash")
		})
	}
}

func TestStatementsUnknownProvider(t *testing.T) {
	_, err := Statements("oracle")
	assert.Error(t, err)
}
