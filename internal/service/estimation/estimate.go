package estimation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/estimate"
	"github.com/heartmarshall/mealtrack-backend/internal/observability"
)

// Estimate analyzes a meal photo and returns a new ai-estimated entry.
//
// A missing or malformed image is a ValidationError. Every other failure,
// whether the vision call or the parsing of its answer, is collapsed into
// domain.ErrEstimationFailed; the cause is only logged.
func (s *Service) Estimate(ctx context.Context, input EstimateInput) (*domain.MealEntry, error) {
	img, err := input.Validate()
	if err != nil {
		observability.RecordEstimation(observability.OutcomeRejected, 0)
		return nil, err
	}

	start := time.Now()

	raw, err := s.vision.Describe(ctx, img)
	if err != nil {
		observability.RecordEstimation(observability.OutcomeUpstream, time.Since(start))
		s.log.WarnContext(ctx, "vision call failed",
			slog.String("error", err.Error()),
			slog.Bool("upstream", errors.Is(err, domain.ErrUpstream)),
		)
		return nil, fmt.Errorf("estimate meal: %w", domain.ErrEstimationFailed)
	}

	est, err := estimate.Parse(raw)
	if err != nil {
		observability.RecordEstimation(observability.OutcomeParse, time.Since(start))
		s.log.WarnContext(ctx, "vision response not parseable",
			slog.String("error", err.Error()),
			slog.String("response", truncate(raw, rawResponseLogLimit)),
		)
		return nil, fmt.Errorf("estimate meal: %w", domain.ErrEstimationFailed)
	}

	took := time.Since(start)
	observability.RecordEstimation(observability.OutcomeSuccess, took)

	now := s.now().In(s.loc)
	ref := img.URI
	entry := &domain.MealEntry{
		ID:        domain.NewMealID(),
		Name:      est.MealName,
		Calories:  est.Calories,
		Time:      domain.ClockTime(now),
		ImageRef:  &ref,
		Source:    domain.SourceAIEstimated,
		CreatedAt: now.UTC(),
	}

	s.log.InfoContext(ctx, "meal estimated",
		slog.String("entry_id", entry.ID.String()),
		slog.String("meal_name", entry.Name),
		slog.Int("calories", entry.Calories),
		slog.Duration("took", took),
	)

	return entry, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
