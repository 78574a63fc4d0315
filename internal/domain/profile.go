package domain

import (
	"math"
	"strings"
)

// DefaultDailyGoal is the calorie goal used until a profile is saved.
const DefaultDailyGoal = 2000

// Profile is the single user profile of the tracker. It is always saved
// and replaced as a whole.
type Profile struct {
	Name      string
	WeightKg  float64
	HeightCm  float64
	Age       int
	DailyGoal int
}

// Validate checks all fields and collects all errors.
func (p Profile) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if !positiveFinite(p.WeightKg) {
		errs = append(errs, FieldError{Field: "weight", Message: "must be positive"})
	}
	if !positiveFinite(p.HeightCm) {
		errs = append(errs, FieldError{Field: "height", Message: "must be positive"})
	}
	if p.Age <= 0 {
		errs = append(errs, FieldError{Field: "age", Message: "must be positive"})
	}
	if p.DailyGoal <= 0 {
		errs = append(errs, FieldError{Field: "dailyGoal", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// GoalOf returns the profile's daily goal, or DefaultDailyGoal when no
// profile has been saved yet.
func GoalOf(p *Profile) int {
	if p == nil || p.DailyGoal <= 0 {
		return DefaultDailyGoal
	}
	return p.DailyGoal
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
