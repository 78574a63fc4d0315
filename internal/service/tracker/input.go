package tracker

import (
	"errors"
	"strings"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// ProfileInput holds the profile form values.
type ProfileInput struct {
	Name      string
	WeightKg  float64
	HeightCm  float64
	Age       int
	DailyGoal int
}

// Validate checks the input and returns the profile to save.
func (i ProfileInput) Validate() (domain.Profile, error) {
	p := domain.Profile{
		Name:      strings.TrimSpace(i.Name),
		WeightKg:  i.WeightKg,
		HeightCm:  i.HeightCm,
		Age:       i.Age,
		DailyGoal: i.DailyGoal,
	}
	if err := p.Validate(); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// ManualMealInput holds the manual meal form values. Calories is the raw
// text typed by the user.
type ManualMealInput struct {
	Name     string
	Calories string
}

// Validate checks the input and returns the trimmed name and parsed calories.
func (i ManualMealInput) Validate() (string, int, error) {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	var calories int
	if strings.TrimSpace(i.Calories) == "" {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "required"})
	} else {
		n, err := domain.ParseCalories(i.Calories)
		switch {
		case err == nil:
			calories = n
		case errors.Is(err, domain.ErrCaloriesNegative):
			errs = append(errs, domain.FieldError{Field: "calories", Message: "must be non-negative"})
		case errors.Is(err, domain.ErrCaloriesTooLarge):
			errs = append(errs, domain.FieldError{Field: "calories", Message: "too large"})
		default:
			errs = append(errs, domain.FieldError{Field: "calories", Message: "must be a number"})
		}
	}

	if len(errs) > 0 {
		return "", 0, domain.NewValidationErrors(errs)
	}
	return name, calories, nil
}

// PhotoInput holds a meal photo as a base64 data URI.
type PhotoInput struct {
	Image string
}
