package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxCalories bounds a single entry so that arithmetic on the day's total
// cannot overflow.
const MaxCalories = 1_000_000

var (
	ErrCaloriesNotNumeric = errors.New("calories must be a number")
	ErrCaloriesNegative   = errors.New("calories must be non-negative")
	ErrCaloriesTooLarge   = errors.New("calories out of range")
)

var numericLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ParseCalories converts user or model supplied text into a calorie count.
// Only plain decimal literals are accepted; fractions truncate toward zero.
// Text such as "about 300" is rejected rather than salvaged.
func ParseCalories(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if !numericLiteral.MatchString(s) {
		return 0, ErrCaloriesNotNumeric
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrCaloriesNotNumeric
	}
	return CaloriesFromFloat(f)
}

// CaloriesFromFloat truncates a numeric calorie value and checks its range.
func CaloriesFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrCaloriesNotNumeric
	}
	if f < 0 {
		return 0, ErrCaloriesNegative
	}
	if f > MaxCalories {
		return 0, ErrCaloriesTooLarge
	}
	return int(math.Trunc(f)), nil
}
