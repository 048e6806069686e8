// Package validate coerces untyped JSON fields (string/number/null) into
// validated values before any domain logic runs. All failures carry a kind
// from apperr; no helper here touches the database.
package validate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Clean trims a string field and substitutes def when empty or absent.
func Clean(value any, def string) string {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// Required trims a string field and fails when nothing is left.
func Required(field string, value any) (string, error) {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperr.BadRequest(apperr.KindRequiredFieldMissing,
			fmt.Sprintf("%s is required.", field))
	}
	return s, nil
}

// TitleCase normalizes enum-ish strings before comparison/storage:
// "URGENT" -> "Urgent", "pet" -> "Pet".
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// Category coerces a closed Human|Pet field, defaulting when empty.
func Category(field string, value any, def models.FoodCategory) (models.FoodCategory, error) {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	switch TitleCase(s) {
	case string(models.CategoryHuman):
		return models.CategoryHuman, nil
	case string(models.CategoryPet):
		return models.CategoryPet, nil
	default:
		return "", apperr.BadRequest(apperr.KindInvalidEnumValue,
			fmt.Sprintf("%s must be Human or Pet.", field))
	}
}

// Float coerces a required numeric field from a JSON number or string.
func Float(field string, value any) (float64, error) {
	f, ok := toFloat(value)
	if !ok {
		return 0, apperr.BadRequest(apperr.KindInvalidNumber,
			fmt.Sprintf("%s must be a number.", field))
	}
	return f, nil
}

// OptionalFloat returns nil for absent/null/empty values and fails only on
// values that are present but unparseable.
func OptionalFloat(field string, value any) (*float64, error) {
	if value == nil {
		return nil, nil
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	f, err := Float(field, value)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// NonNegative coerces a required numeric field that may be exactly zero
// (stock levels) but never negative.
func NonNegative(field string, value any) (float64, error) {
	f, ok := toFloat(value)
	if !ok {
		return 0, apperr.BadRequest(apperr.KindInvalidNumber,
			fmt.Sprintf("%s must be a non-negative number.", field))
	}
	if f < 0 {
		return 0, apperr.BadRequest(apperr.KindNegativeValue,
			fmt.Sprintf("%s must be a non-negative number.", field))
	}
	return f, nil
}

// Positive coerces a required numeric field that must be strictly greater
// than zero (logged wastage/donation/request quantities).
func Positive(field string, value any) (float64, error) {
	f, ok := toFloat(value)
	if !ok {
		return 0, apperr.BadRequest(apperr.KindInvalidNumber,
			fmt.Sprintf("%s must be a number.", field))
	}
	if f <= 0 {
		return 0, apperr.BadRequest(apperr.KindNonPositiveValue,
			fmt.Sprintf("%s must be greater than zero.", field))
	}
	return f, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// OptionalDate parses an ISO-8601 date or datetime, returning nil when the
// field is absent or empty. The result is truncated to a UTC date.
func OptionalDate(field string, value any) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, apperr.BadRequest(apperr.KindInvalidDate, "Invalid date format.")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, nil
		}
	}
	return nil, apperr.BadRequest(apperr.KindInvalidDate, "Invalid date format.")
}

// ID coerces an optional foreign-key field. Absent, null, empty and zero all
// mean "not provided" (ok=false); only present-but-garbage values fail.
func ID(field string, value any) (uint, bool, error) {
	switch v := value.(type) {
	case nil:
		return 0, false, nil
	case float64:
		if v == 0 {
			return 0, false, nil
		}
		if v < 0 || v != float64(uint(v)) {
			return 0, false, apperr.BadRequest(apperr.KindInvalidNumber,
				fmt.Sprintf("%s must be a positive integer.", field))
		}
		return uint(v), true, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" || s == "0" {
			return 0, false, nil
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, false, apperr.BadRequest(apperr.KindInvalidNumber,
				fmt.Sprintf("%s must be a positive integer.", field))
		}
		return uint(id), true, nil
	case json.Number:
		return ID(field, v.String())
	default:
		return 0, false, apperr.BadRequest(apperr.KindInvalidNumber,
			fmt.Sprintf("%s must be a positive integer.", field))
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
