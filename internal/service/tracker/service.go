// Package tracker owns the application state: the profile and the day's
// meal ledger. Every mutation goes through a named operation that persists
// the new state before it becomes visible.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/estimation"
)

var (
	// ErrBusy is returned when a photo analysis is already in flight.
	ErrBusy = fmt.Errorf("meal analysis already in progress: %w", domain.ErrConflict)
	// ErrStaleEstimate is returned when the day was reset while a photo
	// was being analyzed. The estimate is discarded.
	ErrStaleEstimate = fmt.Errorf("day was reset during analysis: %w", domain.ErrConflict)
)

type estimator interface {
	Estimate(ctx context.Context, input estimation.EstimateInput) (*domain.MealEntry, error)
}

type ledgerStore interface {
	LoadProfile(ctx context.Context) (*domain.Profile, error)
	SaveProfile(ctx context.Context, p domain.Profile) error
	LoadMeals(ctx context.Context) ([]domain.MealEntry, error)
	SaveMeals(ctx context.Context, meals []domain.MealEntry) error
}

// Service holds the profile and the day ledger in memory and flushes every
// change to the ledger store.
type Service struct {
	log       *slog.Logger
	estimator estimator
	ledger    ledgerStore
	loc       *time.Location
	now       func() time.Time

	mu      sync.Mutex
	profile *domain.Profile
	meals   []domain.MealEntry
	// epoch advances on every day reset.
	epoch uint64

	busy atomic.Bool
}

// NewService creates a new tracker service with empty state. Call Load to
// restore persisted state.
func NewService(
	logger *slog.Logger,
	est estimator,
	ledger ledgerStore,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		log:       logger.With("service", "tracker"),
		estimator: est,
		ledger:    ledger,
		loc:       loc,
		now:       time.Now,
		meals:     []domain.MealEntry{},
	}
}

// Load restores the profile and meals from the ledger. Unreadable records
// are logged and treated as absent so the app still starts.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.ledger.LoadProfile(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "profile not restored", slog.String("error", err.Error()))
		profile = nil
	}

	meals, err := s.ledger.LoadMeals(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "meals not restored", slog.String("error", err.Error()))
		meals = []domain.MealEntry{}
	}

	s.profile = profile
	s.meals = meals
	s.publishTotal()

	s.log.InfoContext(ctx, "tracker state loaded",
		slog.Bool("has_profile", profile != nil),
		slog.Int("meals", len(meals)),
	)
}

// Profile returns the saved profile or domain.ErrNotFound.
func (s *Service) Profile() (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return domain.Profile{}, fmt.Errorf("profile: %w", domain.ErrNotFound)
	}
	return *s.profile, nil
}

// Meals returns a copy of the day's entries in insertion order.
func (s *Service) Meals() []domain.MealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.meals)
}

// Progress returns the day's intake against the goal.
func (s *Service) Progress() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeProgress(s.meals, s.profile)
}

// Busy reports whether a photo analysis is in flight.
func (s *Service) Busy() bool {
	return s.busy.Load()
}
