package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-05")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.June || d.Day() != 5 {
		t.Errorf("ParseDate returned %v", d)
	}

	if _, err := ParseDate("05/06/2025"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("ParseDate accepted an empty string")
	}
}

func TestDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("bad fixture date %s: %v", s, err)
		}
		return d
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"one day", day("2025-06-01"), day("2025-06-02"), 1},
		{"seven days", day("2025-06-01"), day("2025-06-08"), 7},
		{"zero span", day("2025-06-01"), day("2025-06-01"), 0},
		{"negative span", day("2025-06-05"), day("2025-06-01"), 0},
		// a partial day rounds up
		{
			"partial day rounds up",
			time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
			1,
		},
		{
			"one day plus an hour rounds up to two",
			time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.start, tc.end); got != tc.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	yesterday, _ := ParseDate("2025-06-14")
	if !IsPastDate(yesterday, now) {
		t.Error("yesterday should be in the past")
	}

	// today is not past even though the clock has moved on
	today, _ := ParseDate("2025-06-15")
	if IsPastDate(today, now) {
		t.Error("today should not count as past")
	}

	tomorrow, _ := ParseDate("2025-06-16")
	if IsPastDate(tomorrow, now) {
		t.Error("tomorrow should not count as past")
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	got := Today(now)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Today(%v) = %v, want %v", now, got, want)
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+382 67 123 456", "67 123 456"},
		{"+1 555 0100", "555 0100"},
		{"067 123 456", "067 123 456"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatPhoneNumber(tc.in); got != tc.want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
