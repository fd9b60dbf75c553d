package validator

import (
	"math"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"123e4567-e89b-42d3-a456-426614174000", // v4
		"123E4567-E89B-42D3-A456-426614174000", // uppercase
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",          // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",      // invalid hex
		"urn:uuid:123e4567-e89b-42d3-a456-426614174000", // urn form
		"", // empty
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	for _, s := range []string{"2023-02-29", "2024/01/01", "", "24-01-01"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	for _, s := range []string{"00:00", "09:30", "23:59"} {
		if !IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"24:00", "9:3", "12:60", "noon", ""} {
		if IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = true, want false", s)
		}
	}
}

func TestIsNonNegative(t *testing.T) {
	cases := []struct {
		input float64
		want  bool
	}{
		{0, true},
		{12.5, true},
		{-0.01, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, c := range cases {
		if got := IsNonNegative(c.input); got != c.want {
			t.Errorf("IsNonNegative(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsPercentage(t *testing.T) {
	if !IsPercentage(0) || !IsPercentage(100) || !IsPercentage(30) {
		t.Error("IsPercentage rejected a value in range")
	}
	if IsPercentage(-1) || IsPercentage(100.5) || IsPercentage(math.NaN()) {
		t.Error("IsPercentage accepted a value out of range")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "tips", Message: "tips must not be negative"},
	}

	if got, want := errs.Error(), "date: date is required; tips: tips must not be negative"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if m := errs.ToMap(); m["tips"] != "tips must not be negative" {
		t.Errorf("ToMap()[tips] = %q", m["tips"])
	}
}
