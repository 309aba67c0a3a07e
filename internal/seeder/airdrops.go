package seeder

import (
	"context"

	"github.com/Rana718/spotseed/internal/domain"
)

func (s *Seeder) CreateAirdrops(ctx context.Context, users []*domain.User) ([]*domain.AirDrop, error) {
	if len(users) == 0 {
		s.log.Info("  ⚠️  No airdrops created.")
		return []*domain.AirDrop{}, nil
	}

	airdrops, err := fanOut(users, s.config.PerParent(StageAirdrops), func(u *domain.User) (*domain.AirDrop, error) {
		return &domain.AirDrop{
			UserID:    u.ID,
			Amount:    s.generator.PositiveDecimal(5, 2),
			IsClaimed: s.generator.Bool(),
			ClaimedAt: s.generator.MaybeTimeThisDecade(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := persist(ctx, s, StageAirdrops, airdrops); err != nil {
		return nil, err
	}
	s.log.Success("  ✅ Created %d airdrops for %d users.", len(airdrops), len(users))
	return airdrops, nil
}
