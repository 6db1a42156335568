// File: services/availability/timeutil.go
package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute granularity.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ToMinutes converts a TimeOfDay to its offset from midnight in minutes.
// All slot comparisons happen on this derived value.
func ToMinutes(t TimeOfDay) int {
	return t.Hour*60 + t.Minute
}

// IsValidRange reports whether [start, end) is a proper interval.
// Zero-length and inverted ranges are invalid.
func IsValidRange(start, end int) bool {
	return end > start
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Touching endpoints do not
// overlap: a slot ending at 10:00 does not conflict with one starting
// at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// ParseClock converts a wire clock string to minutes from midnight.
// Accepts "HH:MM" and "HH:MM:SS"; the seconds component is always ":00"
// on the wire and is truncated here.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock string %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock string %q", s)
	}
	return ToMinutes(TimeOfDay{Hour: hour, Minute: minute}), nil
}

// FormatClock renders minutes from midnight as "HH:MM:SS" for the wire.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// NormalizeDate reduces any accepted wire date shape to "YYYY-MM-DD".
// Backends send plain dates as well as dates with a time suffix
// ("2025-03-10T00:00:00Z", "2025-03-10 00:00:00"); everything past the
// date part is dropped before the value is used as a lookup key.
func NormalizeDate(raw string) (string, error) {
	s := raw
	if idx := strings.IndexAny(s, "T "); idx >= 0 {
		s = s[:idx]
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return s, nil
}

// WeekdayDates enumerates every Monday-Friday date of the given month as
// "YYYY-MM-DD" strings, in calendar order. Saturday and Sunday are always
// excluded; this is fixed policy, not configuration.
func WeekdayDates(month, year int) []string {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var dates []string
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		default:
			dates = append(dates, d.Format("2006-01-02"))
		}
	}
	return dates
}

// MonthBounds returns the first date of the month and the first date of
// the following month, both as "YYYY-MM-DD", for range queries.
func MonthBounds(month, year int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), first.AddDate(0, 1, 0).Format("2006-01-02")
}
