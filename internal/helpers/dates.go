package helpers

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// Today returns the given clock time normalized to midnight UTC.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// IsPastDate reports whether the date falls strictly before today.
func IsPastDate(date, now time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(Today(now))
}

// DaysBetween is the rental duration in calendar days: the ceiling of the
// span between start and end divided by one day. A partial day rounds up, so
// a same-day span with differing clock times still counts as one day.
func DaysBetween(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

var countryCodeRe = regexp.MustCompile(`^\+\d{1,4}`)

// FormatPhoneNumber strips a leading country code so numbers persist in a
// consistent local form.
func FormatPhoneNumber(phone string) string {
	return strings.TrimSpace(countryCodeRe.ReplaceAllString(phone, ""))
}
