package seeder

import (
	"fmt"
	"strings"
)

// Stage is one generation step. Each stage fills exactly one table.
type Stage string

const (
	StageUsers          Stage = "users"
	StagePositions      Stage = "positions"
	StageVaults         Stage = "vaults"
	StageAirdrops       Stage = "airdrops"
	StageLinkedAccounts Stage = "linked_accounts"
	StageTransactions   Stage = "transactions"
)

const (
	DefaultUsers     = 10
	DefaultPerParent = 2
)

type SeedConfig struct {
	Users        int            // Root records to create
	Multiplicity map[Stage]int  // Children per parent for fan-out stages
	Disabled     map[Stage]bool // Stages switched off
	RandSeed     int64          // 0 picks a random seed
}

func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Users:        DefaultUsers,
		Multiplicity: map[Stage]int{},
		Disabled: map[Stage]bool{
			StageAirdrops:       true,
			StageLinkedAccounts: true,
		},
	}
}

// PerParent returns how many children a fan-out stage creates per parent.
func (c SeedConfig) PerParent(stage Stage) int {
	if n, ok := c.Multiplicity[stage]; ok {
		return n
	}
	return DefaultPerParent
}

func (c SeedConfig) Enabled(stage Stage) bool {
	if stage == StageUsers {
		return true
	}
	return !c.Disabled[stage]
}

func (c SeedConfig) Validate() error {
	if c.Users < 0 {
		return fmt.Errorf("user count cannot be negative: %d", c.Users)
	}
	for stage, n := range c.Multiplicity {
		if n < 0 {
			return fmt.Errorf("multiplicity for %s cannot be negative: %d", stage, n)
		}
		if !isFanOut(stage) {
			return fmt.Errorf("multiplicity is only configurable for fan-out stages, got %s", stage)
		}
	}
	if c.Disabled[StageUsers] {
		return fmt.Errorf("the %s stage cannot be disabled", StageUsers)
	}
	_, err := InsertionOrder(c)
	return err
}

func isFanOut(stage Stage) bool {
	switch stage {
	case StagePositions, StageVaults, StageAirdrops, StageLinkedAccounts:
		return true
	}
	return false
}

// State tracks how far a run has progressed.
type State int

const (
	StateStart State = iota
	StateRootsCreated
	StateChildBatchesCreated
	StateTransactionsCreated
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRootsCreated:
		return "roots_created"
	case StateChildBatchesCreated:
		return "child_batches_created"
	case StateTransactionsCreated:
		return "transactions_created"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Report is the outcome of a run. On failure it describes what was committed
// before the failing stage.
type Report struct {
	State  State
	Order  []Stage
	Counts map[Stage]int
}

func (r *Report) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

func (r *Report) String() string {
	parts := make([]string, 0, len(r.Order))
	for _, stage := range r.Order {
		parts = append(parts, fmt.Sprintf("%s=%d", stage, r.Counts[stage]))
	}
	return strings.Join(parts, " ")
}
