package validate

import (
	"testing"

	"foodwise-backend/internal/apperr"
	"foodwise-backend/internal/models"
)

func kindOf(t *testing.T, err error) apperr.Kind {
	t.Helper()
	appErr, ok := err.(*apperr.Error)
	if !ok {
		t.Fatalf("expected *apperr.Error, got %T (%v)", err, err)
	}
	return appErr.Kind
}

func TestClean(t *testing.T) {
	if got := Clean("  hello  ", "def"); got != "hello" {
		t.Errorf("Clean trims: got %q", got)
	}
	if got := Clean("   ", "def"); got != "def" {
		t.Errorf("Clean defaults blank input: got %q", got)
	}
	if got := Clean(nil, "def"); got != "def" {
		t.Errorf("Clean defaults nil input: got %q", got)
	}
}

func TestRequired(t *testing.T) {
	if _, err := Required("Item type", "  "); err == nil {
		t.Fatal("expected error for blank required field")
	} else if kindOf(t, err) != apperr.KindRequiredFieldMissing {
		t.Errorf("wrong kind: %v", kindOf(t, err))
	}

	got, err := Required("Item type", " Rice ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Rice" {
		t.Errorf("expected trimmed value, got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"pet":          "Pet",
		"HUMAN":        "Human",
		"  claimed  ":  "Claimed",
		"very urgent":  "Very Urgent",
		"not SPECIFIED": "Not Specified",
	}
	for in, want := range cases {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategory(t *testing.T) {
	got, err := Category("Category", "pet", models.CategoryHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != models.CategoryPet {
		t.Errorf("expected Pet, got %v", got)
	}

	got, err = Category("Category", "", models.CategoryHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != models.CategoryHuman {
		t.Errorf("expected default Human, got %v", got)
	}

	if _, err := Category("Category", "Robot", models.CategoryHuman); err == nil {
		t.Fatal("expected error for unknown category")
	} else if kindOf(t, err) != apperr.KindInvalidEnumValue {
		t.Errorf("wrong kind: %v", kindOf(t, err))
	}
}

func TestFloatCoercion(t *testing.T) {
	if got, err := Float("Quantity", 4.5); err != nil || got != 4.5 {
		t.Errorf("Float(4.5) = %v, %v", got, err)
	}
	if got, err := Float("Quantity", "12.25"); err != nil || got != 12.25 {
		t.Errorf("Float(\"12.25\") = %v, %v", got, err)
	}
	if _, err := Float("Quantity", nil); err == nil {
		t.Fatal("expected error for nil")
	} else if kindOf(t, err) != apperr.KindInvalidNumber {
		t.Errorf("wrong kind: %v", kindOf(t, err))
	}
	if _, err := Float("Quantity", "abc"); err == nil {
		t.Fatal("expected error for garbage")
	}
}

func TestNonNegative(t *testing.T) {
	if got, err := NonNegative("Quantity", 0.0); err != nil || got != 0 {
		t.Errorf("zero must be allowed for stock levels: %v, %v", got, err)
	}
	if _, err := NonNegative("Quantity", -1.0); err == nil {
		t.Fatal("expected error for negative")
	} else if kindOf(t, err) != apperr.KindNegativeValue {
		t.Errorf("wrong kind: %v", kindOf(t, err))
	}
}

func TestPositive(t *testing.T) {
	if _, err := Positive("Quantity", 0.0); err == nil {
		t.Fatal("expected error for zero")
	} else if kindOf(t, err) != apperr.KindNonPositiveValue {
		t.Errorf("wrong kind: %v", kindOf(t, err))
	}
	if _, err := Positive("Quantity", -3.0); err == nil {
		t.Fatal("expected error for negative")
	}
	if got, err := Positive("Quantity", "2"); err != nil || got != 2 {
		t.Errorf("Positive(\"2\") = %v, %v", got, err)
	}
}

func TestOptionalFloat(t *testing.T) {
	if got, err := OptionalFloat("Claimed quantity", nil); err != nil || got != nil {
		t.Errorf("nil should coerce to nil: %v, %v", got, err)
	}
	if got, err := OptionalFloat("Claimed quantity", ""); err != nil || got != nil {
		t.Errorf("empty string should coerce to nil: %v, %v", got, err)
	}
	got, err := OptionalFloat("Claimed quantity", 7.0)
	if err != nil || got == nil || *got != 7 {
		t.Errorf("OptionalFloat(7) = %v, %v", got, err)
	}
	if _, err := OptionalFloat("Claimed quantity", "xyz"); err == nil {
		t.Fatal("expected error for garbage")
	}
}

func TestOptionalDate(t *testing.T) {
	got, err := OptionalDate("needed_by", "2025-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Format("2006-01-02") != "2025-03-14" {
		t.Errorf("wrong date: %v", got)
	}

	// Datetime inputs truncate to the date.
	got, err = OptionalDate("needed_by", "2025-03-14T18:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Format("2006-01-02") != "2025-03-14" {
		t.Errorf("datetime should truncate to date: %v", got)
	}

	if got, err := OptionalDate("needed_by", nil); err != nil || got != nil {
		t.Errorf("nil should stay unset: %v, %v", got, err)
	}
	if got, err := OptionalDate("needed_by", "  "); err != nil || got != nil {
		t.Errorf("blank should stay unset: %v, %v", got, err)
	}

	if _, err := OptionalDate("needed_by", "14/03/2025"); err == nil {
		t.Fatal("expected error for non-ISO date")
	} else if kindOf(t, err) != apperr.KindInvalidDate {
		t.Errorf("wrong kind: %v", kindOf(t, err))
	}
}

func TestID(t *testing.T) {
	if _, ok, err := ID("platform_id", nil); ok || err != nil {
		t.Errorf("nil id should be absent: %v %v", ok, err)
	}
	if _, ok, err := ID("platform_id", 0.0); ok || err != nil {
		t.Errorf("zero id should be absent: %v %v", ok, err)
	}
	if _, ok, err := ID("platform_id", ""); ok || err != nil {
		t.Errorf("empty id should be absent: %v %v", ok, err)
	}

	id, ok, err := ID("platform_id", 3.0)
	if err != nil || !ok || id != 3 {
		t.Errorf("ID(3) = %v %v %v", id, ok, err)
	}
	id, ok, err = ID("platform_id", "12")
	if err != nil || !ok || id != 12 {
		t.Errorf("ID(\"12\") = %v %v %v", id, ok, err)
	}

	if _, _, err := ID("platform_id", "abc"); err == nil {
		t.Fatal("expected error for garbage id")
	}
	if _, _, err := ID("platform_id", -2.0); err == nil {
		t.Fatal("expected error for negative id")
	}
}
