package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

type profileRecord struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Height    float64 `json:"height"`
	Age       int     `json:"age"`
	DailyGoal int     `json:"dailyGoal"`
}

func profileFromDomain(p domain.Profile) profileRecord {
	return profileRecord{
		Name:      p.Name,
		Weight:    p.WeightKg,
		Height:    p.HeightCm,
		Age:       p.Age,
		DailyGoal: p.DailyGoal,
	}
}

func (r profileRecord) toDomain() domain.Profile {
	return domain.Profile{
		Name:      r.Name,
		WeightKg:  r.Weight,
		HeightCm:  r.Height,
		Age:       r.Age,
		DailyGoal: r.DailyGoal,
	}
}

type mealRecord struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Calories  int               `json:"calories"`
	Time      string            `json:"time"`
	ImageRef  *string           `json:"imageRef,omitempty"`
	Source    domain.MealSource `json:"source"`
	CreatedAt time.Time         `json:"createdAt"`
}

func mealFromDomain(m domain.MealEntry) mealRecord {
	return mealRecord{
		ID:        m.ID,
		Name:      m.Name,
		Calories:  m.Calories,
		Time:      m.Time,
		ImageRef:  m.ImageRef,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
	}
}

func (r mealRecord) toDomain() domain.MealEntry {
	return domain.MealEntry{
		ID:        r.ID,
		Name:      r.Name,
		Calories:  r.Calories,
		Time:      r.Time,
		ImageRef:  r.ImageRef,
		Source:    r.Source,
		CreatedAt: r.CreatedAt,
	}
}
