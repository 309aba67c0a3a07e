package seeder

import (
	"context"

	"github.com/Rana718/spotseed/internal/domain"
	"github.com/Rana718/spotseed/internal/unique"
)

// CreateLinkedAccounts creates telegram accounts bound to each user's wallet.
// Telegram ids share the run-wide uniqueness registry.
func (s *Seeder) CreateLinkedAccounts(ctx context.Context, users []*domain.User) ([]*domain.LinkedAccount, error) {
	if len(users) == 0 {
		s.log.Info("  ⚠️  No telegram users created.")
		return []*domain.LinkedAccount{}, nil
	}

	accounts, err := fanOut(users, s.config.PerParent(StageLinkedAccounts), func(u *domain.User) (*domain.LinkedAccount, error) {
		telegramID, err := s.unique.Next(unique.TelegramID, s.generator.UUID)
		if err != nil {
			return nil, err
		}
		return &domain.LinkedAccount{
			UserID:                u.ID,
			TelegramID:            telegramID,
			Username:              s.generator.Username(),
			FirstName:             s.generator.FirstName(),
			LastName:              s.generator.LastName(),
			WalletID:              u.WalletID,
			PhotoURL:              s.generator.ImageURL(),
			IsAllowedNotification: s.generator.Bool(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := persist(ctx, s, StageLinkedAccounts, accounts); err != nil {
		return nil, err
	}
	s.log.Success("  ✅ Created %d telegram users.", len(accounts))
	return accounts, nil
}
