package seeder

import (
	"context"

	"github.com/Rana718/spotseed/internal/domain"
	"github.com/Rana718/spotseed/internal/unique"
)

// CreateUsers creates count users with distinct wallet ids and persists them,
// so the returned users carry their assigned ids.
func (s *Seeder) CreateUsers(ctx context.Context, count int) ([]*domain.User, error) {
	s.log.Step("  📝 Seeding users (%d records)...", count)

	users := make([]*domain.User, 0, count)
	for i := 0; i < count; i++ {
		walletID, err := s.unique.Next(unique.WalletID, s.generator.UUID)
		if err != nil {
			return nil, err
		}
		users = append(users, &domain.User{
			WalletID:           walletID,
			ContractAddress:    s.generator.Address(),
			IsContractDeployed: s.generator.Bool(),
		})
	}

	if len(users) == 0 {
		s.log.Info("  ⚠️  No users created.")
		return users, nil
	}
	if err := persist(ctx, s, StageUsers, users); err != nil {
		return nil, err
	}
	s.log.Success("  ✅ Created %d users", len(users))
	return users, nil
}
