package seeder

import (
	"context"
	"fmt"

	"github.com/Rana718/spotseed/internal/domain"
	"github.com/Rana718/spotseed/internal/unique"
)

// CreateTransactions creates one transaction per status for every position,
// following the order of statuses. Every position ends up with each status
// exactly once.
func (s *Seeder) CreateTransactions(ctx context.Context, positions []*domain.Position, statuses []domain.TransactionStatus) ([]*domain.Transaction, error) {
	if len(positions) == 0 {
		s.log.Info("  ⚠️  No transactions created.")
		return []*domain.Transaction{}, nil
	}
	if err := checkStatuses(statuses); err != nil {
		return nil, err
	}
	for _, p := range positions {
		if p.ID == 0 {
			return nil, fmt.Errorf("%w: position of user %d", ErrMissingParentID, p.UserID)
		}
	}

	transactions := make([]*domain.Transaction, 0, len(positions)*len(statuses))
	for _, p := range positions {
		for _, status := range statuses {
			hash, err := s.unique.Next(unique.TransactionHash, s.generator.TransactionHash)
			if err != nil {
				return nil, err
			}
			transactions = append(transactions, &domain.Transaction{
				PositionID:      p.ID,
				Status:          status,
				TransactionHash: hash,
			})
		}
	}

	if err := persist(ctx, s, StageTransactions, transactions); err != nil {
		return nil, err
	}
	s.log.Success("  ✅ Created %d transactions.", len(transactions))
	return transactions, nil
}

// checkStatuses rejects an empty or repeating status list, either of which
// would break the one-transaction-per-status guarantee.
func checkStatuses(statuses []domain.TransactionStatus) error {
	if len(statuses) == 0 {
		return fmt.Errorf("transaction status list is empty")
	}
	seen := make(map[domain.TransactionStatus]bool, len(statuses))
	for _, st := range statuses {
		if seen[st] {
			return fmt.Errorf("duplicate transaction status: %s", st)
		}
		seen[st] = true
	}
	return nil
}
