// Package estimate turns the free-form text returned by a vision model into
// a structured meal estimate.
//
// The model is asked for a bare JSON object but routinely wraps it in prose
// or markdown fences. Parse locates the first object in the text, decodes it
// strictly and coerces its two fields. It never guesses: anything that is not
// a well-formed object with a usable name and a numeric calorie value fails.
package estimate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

var (
	// ErrNoStructuredContent means the text holds no brace-delimited span at all.
	ErrNoStructuredContent = errors.New("no structured content")
	// ErrMalformedEstimate means a span was found but is not a usable estimate.
	ErrMalformedEstimate = errors.New("malformed estimate")
)

// ParseError reports why a response could not be parsed. It matches both
// its Kind and domain.ErrParse with errors.Is.
type ParseError struct {
	Kind   error
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *ParseError) Unwrap() []error { return []error{e.Kind, domain.ErrParse} }

func noContent(reason string) error {
	return &ParseError{Kind: ErrNoStructuredContent, Reason: reason}
}

func malformed(format string, args ...any) error {
	return &ParseError{Kind: ErrMalformedEstimate, Reason: fmt.Sprintf(format, args...)}
}

type rawEstimate struct {
	MealName json.RawMessage `json:"mealName"`
	Calories json.RawMessage `json:"calories"`
}

// Parse extracts exactly one Estimate from raw model output.
func Parse(raw string) (domain.Estimate, error) {
	span, err := extractObject(raw)
	if err != nil {
		return domain.Estimate{}, err
	}

	var re rawEstimate
	if err := json.Unmarshal([]byte(span), &re); err != nil {
		return domain.Estimate{}, malformed("decode object: %v", err)
	}

	name, err := coerceName(re.MealName)
	if err != nil {
		return domain.Estimate{}, err
	}
	calories, err := coerceCalories(re.Calories)
	if err != nil {
		return domain.Estimate{}, err
	}

	return domain.Estimate{MealName: name, Calories: calories}, nil
}

// extractObject returns the balanced object starting at the first '{'.
func extractObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start == -1 {
		return "", noContent("no opening brace")
	}

	end, ok := matchingBrace(raw, start)
	if !ok {
		return "", malformed("unterminated object")
	}
	return raw[start : end+1], nil
}

// matchingBrace scans from the '{' at start and returns the index of the
// brace that closes it. Braces inside JSON string literals are ignored.
func matchingBrace(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func coerceName(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", malformed("mealName missing")
	}

	var name string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &name); err != nil {
			return "", malformed("mealName: %v", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", malformed("mealName must be text")
		}
		name = n.String()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", malformed("mealName is blank")
	}
	return name, nil
}

// coerceCalories applies the manual entry rule to both a JSON number and a
// JSON string: a plain decimal literal, truncated toward zero.
func coerceCalories(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, malformed("calories missing")
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, malformed("calories: %v", err)
		}
	}

	n, err := domain.ParseCalories(text)
	if err != nil {
		return 0, malformed("calories %s: %v", raw, err)
	}
	return n, nil
}
