package validator

import (
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-31", "2024-02-29", "1999-12-01"}
	invalid := []string{"2026-13-01", "2026-02-30", "31/01/2026", "2026-1-3", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "23:59"}
	invalid := []string{"24:00", "8:0", "12:60", "noon", ""}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestClockToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"12:05", 725},
		{"23:59", 1439},
		{"bogus", 0},
		{"", 0},
	}
	for _, c := range cases {
		got := ClockToMinutes(c.input)
		if got != c.want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2026-08"); !ok {
		t.Error("IsValidMonth(2026-08) = false, want true")
	}
	for _, m := range []string{"2026-13", "2026-08-01", "08-2026", ""} {
		if _, ok := IsValidMonth(m); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}
