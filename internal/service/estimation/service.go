package estimation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// rawResponseLogLimit bounds how much of an unparseable model answer is logged.
const rawResponseLogLimit = 300

type describer interface {
	Describe(ctx context.Context, img domain.MealImage) (string, error)
}

// Service turns a meal photo into an ai-estimated MealEntry.
type Service struct {
	vision describer
	loc    *time.Location
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new Estimation service. Entry clock times are
// rendered in loc.
func NewService(
	log *slog.Logger,
	vision describer,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		vision: vision,
		loc:    loc,
		now:    time.Now,
		log:    log.With("service", "estimation"),
	}
}
