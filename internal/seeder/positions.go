package seeder

import (
	"context"

	"github.com/Rana718/spotseed/internal/domain"
)

// CreatePositions creates the configured number of positions per user.
func (s *Seeder) CreatePositions(ctx context.Context, users []*domain.User) ([]*domain.Position, error) {
	if len(users) == 0 {
		s.log.Info("  ⚠️  No positions created.")
		return []*domain.Position{}, nil
	}

	positions, err := fanOut(users, s.config.PerParent(StagePositions), func(u *domain.User) (*domain.Position, error) {
		symbol, err := pick(s.generator, s.tokens)
		if err != nil {
			return nil, err
		}
		status, err := pick(s.generator, s.positionStatuses)
		if err != nil {
			return nil, err
		}
		return &domain.Position{
			UserID:              u.ID,
			TokenSymbol:         symbol,
			Amount:              s.generator.Number(5),
			Multiplier:          s.generator.IntRange(1, 10),
			StartPrice:          s.generator.PositiveDecimal(5, 2),
			Status:              status,
			IsProtection:        s.generator.Bool(),
			LiquidationBonus:    s.generator.Fraction(4),
			IsLiquidated:        s.generator.Bool(),
			DatetimeLiquidation: s.generator.MaybeTimeThisDecade(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := persist(ctx, s, StagePositions, positions); err != nil {
		return nil, err
	}
	s.log.Success("  ✅ Created %d positions for %d users.", len(positions), len(users))
	return positions, nil
}
