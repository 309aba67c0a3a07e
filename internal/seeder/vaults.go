package seeder

import (
	"context"

	"github.com/Rana718/spotseed/internal/domain"
)

func (s *Seeder) CreateVaults(ctx context.Context, users []*domain.User) ([]*domain.Vault, error) {
	if len(users) == 0 {
		s.log.Info("  ⚠️  No vaults created.")
		return []*domain.Vault{}, nil
	}

	vaults, err := fanOut(users, s.config.PerParent(StageVaults), func(u *domain.User) (*domain.Vault, error) {
		symbol, err := pick(s.generator, s.tokens)
		if err != nil {
			return nil, err
		}
		return &domain.Vault{
			UserID: u.ID,
			Symbol: symbol,
			Amount: s.generator.Number(5),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := persist(ctx, s, StageVaults, vaults); err != nil {
		return nil, err
	}
	s.log.Success("  ✅ Created %d vaults for %d users.", len(vaults), len(users))
	return vaults, nil
}
