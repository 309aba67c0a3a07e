package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertionOrderDefault(t *testing.T) {
	order, err := InsertionOrder(DefaultSeedConfig())
	require.NoError(t, err)
	assert.Equal(t, []Stage{StageUsers, StagePositions, StageVaults, StageTransactions}, order)
}

func TestInsertionOrderAllStages(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Disabled = nil

	order, err := InsertionOrder(cfg)
	require.NoError(t, err)
	assert.Equal(t, []Stage{
		StageUsers, StagePositions, StageVaults, StageAirdrops, StageLinkedAccounts, StageTransactions,
	}, order)
}

func TestInsertionOrderRejectsMissingDependency(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Disabled[StagePositions] = true

	_, err := InsertionOrder(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depends on positions")
}

func TestInsertionOrderWithoutPositionsAndTransactions(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Disabled[StagePositions] = true
	cfg.Disabled[StageTransactions] = true

	order, err := InsertionOrder(cfg)
	require.NoError(t, err)
	assert.Equal(t, []Stage{StageUsers, StageVaults}, order)
}

func TestBuildInsertionOrderDetectsCycle(t *testing.T) {
	g := NewDependencyGraph()
	g.AddStage(&StageInfo{Name: "a", Dependencies: []Stage{"b"}})
	g.AddStage(&StageInfo{Name: "b", Dependencies: []Stage{"a"}})

	_, err := g.BuildInsertionOrder()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestBuildInsertionOrderIgnoresSelfReference(t *testing.T) {
	g := NewDependencyGraph()
	g.AddStage(&StageInfo{Name: "a", Table: "ta", Dependencies: []Stage{"a"}})

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	assert.Equal(t, []Stage{"a"}, order)
	assert.Equal(t, []Stage{"a"}, g.GetOrder())
	assert.Equal(t, []string{"ta"}, g.Tables())
}

func TestTruncationOrder(t *testing.T) {
	tables, err := TruncationOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"transaction", "telegram_user", "airdrop", "vault", "position", "user"}, tables)
}

func TestSeedConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SeedConfig)
		wantErr bool
	}{
		{"default", func(*SeedConfig) {}, false},
		{"zero users", func(c *SeedConfig) { c.Users = 0 }, false},
		{"negative users", func(c *SeedConfig) { c.Users = -1 }, true},
		{"negative multiplicity", func(c *SeedConfig) { c.Multiplicity[StageVaults] = -2 }, true},
		{"multiplicity on root", func(c *SeedConfig) { c.Multiplicity[StageUsers] = 3 }, true},
		{"users disabled", func(c *SeedConfig) { c.Disabled[StageUsers] = true }, true},
		{"transactions without positions", func(c *SeedConfig) { c.Disabled[StagePositions] = true }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSeedConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
