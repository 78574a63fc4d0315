// Package ledger persists the tracker's two records: the profile and the
// day's meal list. Each record is a JSON document under a fixed key and is
// rewritten in full on every save.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

const (
	ProfileKey = "calorieTrackerProfile"
	MealsKey   = "calorieTrackerMeals"
)

type recordStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

// Ledger encodes domain values into records of a backing store.
type Ledger struct {
	store recordStore
}

// New creates a Ledger over store.
func New(store recordStore) *Ledger {
	return &Ledger{store: store}
}

// LoadProfile returns the saved profile, or nil if none was saved yet.
func (l *Ledger) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	data, err := l.store.Get(ctx, ProfileKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p := rec.toDomain()
	return &p, nil
}

// SaveProfile overwrites the profile record.
func (l *Ledger) SaveProfile(ctx context.Context, p domain.Profile) error {
	data, err := json.Marshal(profileFromDomain(p))
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := l.store.Put(ctx, ProfileKey, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadMeals returns the saved meal list in insertion order. A missing
// record yields an empty list.
func (l *Ledger) LoadMeals(ctx context.Context) ([]domain.MealEntry, error) {
	data, err := l.store.Get(ctx, MealsKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.MealEntry{}, nil
		}
		return nil, fmt.Errorf("load meals: %w", err)
	}

	var recs []mealRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode meals: %w", err)
	}

	meals := make([]domain.MealEntry, 0, len(recs))
	for _, r := range recs {
		meals = append(meals, r.toDomain())
	}
	return meals, nil
}

// SaveMeals overwrites the meal list. An empty list is stored as [].
func (l *Ledger) SaveMeals(ctx context.Context, meals []domain.MealEntry) error {
	recs := make([]mealRecord, 0, len(meals))
	for _, m := range meals {
		recs = append(recs, mealFromDomain(m))
	}

	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode meals: %w", err)
	}
	if err := l.store.Put(ctx, MealsKey, data); err != nil {
		return fmt.Errorf("save meals: %w", err)
	}
	return nil
}

// Ping reports whether the backing store is reachable.
func (l *Ledger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}
