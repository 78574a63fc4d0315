package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/observability"
	"github.com/heartmarshall/mealtrack-backend/internal/service/estimation"
)

// AddManualMeal appends a user-typed entry to the day ledger.
func (s *Service) AddManualMeal(ctx context.Context, input ManualMealInput) (domain.MealEntry, error) {
	name, calories, err := input.Validate()
	if err != nil {
		return domain.MealEntry{}, err
	}

	now := s.now().In(s.loc)
	entry := domain.MealEntry{
		ID:        domain.NewMealID(),
		Name:      name,
		Calories:  calories,
		Time:      domain.ClockTime(now),
		Source:    domain.SourceManual,
		CreatedAt: now.UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncLocked(ctx)
	if err := s.appendLocked(ctx, entry); err != nil {
		return domain.MealEntry{}, err
	}
	return entry, nil
}

// AnalyzePhoto estimates a meal from a photo and appends the result.
//
// An invalid image is rejected before anything else. Only one analysis may
// run at a time; a concurrent call gets ErrBusy. The analysis is not
// canceled when ctx is, it is bounded by the vision timeout instead. If the
// day is reset before the estimate arrives, here or by another process
// sharing the ledger, the estimate is dropped and ErrStaleEstimate is
// returned.
func (s *Service) AnalyzePhoto(ctx context.Context, input PhotoInput) (domain.MealEntry, error) {
	req := estimation.EstimateInput{Image: input.Image}
	if _, err := req.Validate(); err != nil {
		return domain.MealEntry{}, err
	}

	if !s.busy.CompareAndSwap(false, true) {
		return domain.MealEntry{}, ErrBusy
	}
	defer s.busy.Store(false)

	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	entry, err := s.estimator.Estimate(ctx, req)
	if err != nil {
		return domain.MealEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncLocked(ctx)
	if s.epoch != epoch {
		s.log.WarnContext(ctx, "estimate discarded after day reset",
			slog.String("entry_id", entry.ID.String()),
		)
		return domain.MealEntry{}, ErrStaleEstimate
	}

	if err := s.appendLocked(ctx, *entry); err != nil {
		return domain.MealEntry{}, err
	}
	return *entry, nil
}

// ResetDay clears the day ledger.
func (s *Service) ResetDay(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncLocked(ctx)
	if err := s.ledger.SaveMeals(ctx, []domain.MealEntry{}); err != nil {
		observability.RecordFlushFailure()
		return fmt.Errorf("reset day: %w", err)
	}

	cleared := len(s.meals)
	s.meals = []domain.MealEntry{}
	s.epoch++
	s.publishTotal()

	s.log.InfoContext(ctx, "day reset", slog.Int("cleared", cleared))
	return nil
}

// Refresh reloads the day ledger so that reads reflect changes made by
// another process sharing it, such as a scheduled reset.
func (s *Service) Refresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(ctx)
}

// syncLocked replaces the in-memory meals with the persisted ones. A ledger
// that no longer starts with the in-memory entries was reset elsewhere, so
// the epoch advances. Read failures keep the in-memory state. s.mu must be
// held.
func (s *Service) syncLocked(ctx context.Context) {
	stored, err := s.ledger.LoadMeals(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "meals not reloaded", slog.String("error", err.Error()))
		return
	}
	if stored == nil {
		stored = []domain.MealEntry{}
	}

	if !startsWith(stored, s.meals) {
		s.epoch++
		s.log.InfoContext(ctx, "day ledger changed outside this process",
			slog.Int("had", len(s.meals)),
			slog.Int("stored", len(stored)),
		)
	}
	s.meals = stored
	s.publishTotal()
}

func startsWith(meals, prefix []domain.MealEntry) bool {
	if len(prefix) > len(meals) {
		return false
	}
	for i, m := range prefix {
		if meals[i].ID != m.ID {
			return false
		}
	}
	return true
}

// appendLocked persists meals+entry and only then swaps it in. s.mu must be held.
func (s *Service) appendLocked(ctx context.Context, entry domain.MealEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if slices.ContainsFunc(s.meals, func(m domain.MealEntry) bool { return m.ID == entry.ID }) {
		return fmt.Errorf("meal %s: %w", entry.ID, domain.ErrAlreadyExists)
	}

	next := append(slices.Clone(s.meals), entry)
	if err := s.ledger.SaveMeals(ctx, next); err != nil {
		observability.RecordFlushFailure()
		s.log.ErrorContext(ctx, "meal not persisted",
			slog.String("entry_id", entry.ID.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("add meal: %w", err)
	}
	s.meals = next

	observability.RecordMealLogged(string(entry.Source))
	s.publishTotal()

	s.log.InfoContext(ctx, "meal logged",
		slog.String("entry_id", entry.ID.String()),
		slog.String("source", string(entry.Source)),
		slog.Int("calories", entry.Calories),
	)
	return nil
}

// publishTotal exports the current day total. s.mu must be held.
func (s *Service) publishTotal() {
	total := 0
	for _, m := range s.meals {
		total += m.Calories
	}
	observability.SetCaloriesConsumed(total)
}
