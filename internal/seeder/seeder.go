package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/spotseed/internal/database"
	"github.com/Rana718/spotseed/internal/domain"
	"github.com/Rana718/spotseed/internal/unique"
)

// Seeder generates the application's entities in dependency order and writes
// each stage through the session before the next stage starts.
type Seeder struct {
	session             database.Session
	config              SeedConfig
	generator           *DataGenerator
	unique              *unique.Registry
	tokens              []string
	positionStatuses    []domain.PositionStatus
	transactionStatuses []domain.TransactionStatus
	log                 *Logger
}

type Option func(*Seeder)

// WithTokens sets the token symbols positions and vaults are drawn from.
func WithTokens(symbols []string) Option {
	return func(s *Seeder) { s.tokens = symbols }
}

func WithRegistry(r *unique.Registry) Option {
	return func(s *Seeder) { s.unique = r }
}

func WithGenerator(g *DataGenerator) Option {
	return func(s *Seeder) { s.generator = g }
}

func WithLogger(l *Logger) Option {
	return func(s *Seeder) { s.log = l }
}

func WithPositionStatuses(statuses []domain.PositionStatus) Option {
	return func(s *Seeder) { s.positionStatuses = statuses }
}

// WithTransactionStatuses sets the ordered statuses every position receives
// one transaction for.
func WithTransactionStatuses(statuses []domain.TransactionStatus) Option {
	return func(s *Seeder) { s.transactionStatuses = statuses }
}

func New(session database.Session, cfg SeedConfig, opts ...Option) *Seeder {
	s := &Seeder{
		session:             session,
		config:              cfg,
		positionStatuses:    domain.PositionStatuses(),
		transactionStatuses: domain.TransactionStatuses(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.generator == nil {
		s.generator = NewDataGenerator(cfg.RandSeed)
	}
	if s.unique == nil {
		s.unique = unique.NewRegistry()
	}
	if s.log == nil {
		s.log = NewLogger(nil)
	}
	if s.tokens == nil {
		if list, err := domain.LoadTokens(""); err == nil {
			s.tokens = list.Symbols()
		}
	}
	return s
}

// Run executes every enabled stage. The returned report is non-nil even on
// failure and reflects the stages committed before the error.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	report := &Report{State: StateStart, Counts: make(map[Stage]int)}

	if err := s.config.Validate(); err != nil {
		return report, fmt.Errorf("invalid seed configuration: %w", err)
	}
	order, err := InsertionOrder(s.config)
	if err != nil {
		return report, fmt.Errorf("failed to build insertion order: %w", err)
	}
	report.Order = order

	names := make([]string, len(order))
	for i, stage := range order {
		names[i] = string(stage)
	}
	s.log.Step("🌱 Starting database seeding...")
	s.log.Step("📋 Insertion order: %s", strings.Join(names, " → "))

	var (
		users     []*domain.User
		positions []*domain.Position
	)

	for i, stage := range order {
		var n int
		switch stage {
		case StageUsers:
			users, err = s.CreateUsers(ctx, s.config.Users)
			n = len(users)
		case StagePositions:
			positions, err = s.CreatePositions(ctx, users)
			n = len(positions)
		case StageVaults:
			var vaults []*domain.Vault
			vaults, err = s.CreateVaults(ctx, users)
			n = len(vaults)
		case StageAirdrops:
			var airdrops []*domain.AirDrop
			airdrops, err = s.CreateAirdrops(ctx, users)
			n = len(airdrops)
		case StageLinkedAccounts:
			var accounts []*domain.LinkedAccount
			accounts, err = s.CreateLinkedAccounts(ctx, users)
			n = len(accounts)
		case StageTransactions:
			var txs []*domain.Transaction
			txs, err = s.CreateTransactions(ctx, positions, s.transactionStatuses)
			n = len(txs)
		default:
			err = fmt.Errorf("unknown stage: %s", stage)
		}
		if err != nil {
			return report, fmt.Errorf("failed to seed %s: %w", stage, err)
		}

		report.Counts[stage] = n
		report.State = nextState(report.State, stage, order[i+1:])
	}

	report.State = StateDone
	s.log.Success("✅ Database seeding completed: %s", report)
	return report, nil
}

// nextState advances the run state after stage completed. Child batches are
// only complete once no fan-out stage remains.
func nextState(current State, stage Stage, remaining []Stage) State {
	switch {
	case stage == StageUsers:
		return StateRootsCreated
	case isFanOut(stage):
		for _, next := range remaining {
			if isFanOut(next) {
				return current
			}
		}
		return StateChildBatchesCreated
	case stage == StageTransactions:
		return StateTransactionsCreated
	}
	return current
}

// persist submits items as one batch and commits it.
func persist[T database.Record](ctx context.Context, s *Seeder, stage Stage, items []T) error {
	if len(items) == 0 {
		return nil
	}
	records := make([]database.Record, len(items))
	for i, item := range items {
		records[i] = item
	}
	if err := database.AddAndCommit(ctx, s.session, records); err != nil {
		return &PersistenceError{Stage: stage, Table: records[0].TableName(), Err: err}
	}
	return nil
}

// fanOut builds perParent children for every user. All parents are checked
// for an assigned id before anything is built.
func fanOut[C any](users []*domain.User, perParent int, build func(*domain.User) (C, error)) ([]C, error) {
	for _, u := range users {
		if u.ID == 0 {
			return nil, fmt.Errorf("%w: user %s", ErrMissingParentID, u.WalletID)
		}
	}

	children := make([]C, 0, len(users)*perParent)
	for _, u := range users {
		for i := 0; i < perParent; i++ {
			child, err := build(u)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}
	return children, nil
}
