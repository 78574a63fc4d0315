package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MealSource tells how a meal entry was produced.
type MealSource string

const (
	SourceManual      MealSource = "manual"
	SourceAIEstimated MealSource = "ai-estimated"
)

// IsValid reports whether s is a known source tag.
func (s MealSource) IsValid() bool {
	switch s {
	case SourceManual, SourceAIEstimated:
		return true
	}
	return false
}

// ClockLayout is the human-readable local time stamped on every entry.
const ClockLayout = "15:04"

// MealEntry is one logged meal. Entries are never mutated after creation;
// they are only removed together by a day reset.
type MealEntry struct {
	ID       uuid.UUID
	Name     string
	Calories int
	Time     string
	// ImageRef holds the photo the estimate was made from. Set only for
	// ai-estimated entries.
	ImageRef  *string
	Source    MealSource
	CreatedAt time.Time
}

// Validate checks the entry invariants and collects all errors.
func (m MealEntry) Validate() error {
	var errs []FieldError

	if m.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if m.Calories < 0 {
		errs = append(errs, FieldError{Field: "calories", Message: "must be non-negative"})
	}
	if !m.Source.IsValid() {
		errs = append(errs, FieldError{Field: "source", Message: "unknown source"})
	}
	if m.Source == SourceAIEstimated && (m.ImageRef == nil || *m.ImageRef == "") {
		errs = append(errs, FieldError{Field: "imageRef", Message: "required for ai-estimated entries"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// NewMealID returns a time-ordered identifier for a new entry.
func NewMealID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ClockTime formats t as the entry's local clock string.
func ClockTime(t time.Time) string {
	return t.Format(ClockLayout)
}
