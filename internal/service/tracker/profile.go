package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/observability"
)

// SaveProfile validates and persists the profile, replacing any previous one.
func (s *Service) SaveProfile(ctx context.Context, input ProfileInput) (domain.Profile, error) {
	p, err := input.Validate()
	if err != nil {
		return domain.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.SaveProfile(ctx, p); err != nil {
		observability.RecordFlushFailure()
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	s.profile = &p

	s.log.InfoContext(ctx, "profile saved",
		slog.String("name", p.Name),
		slog.Int("daily_goal", p.DailyGoal),
	)
	return p, nil
}
