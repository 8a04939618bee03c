package dateutil

import (
	"fmt"
	"math"
	"strings"
	"time"
	_ "time/tzdata" // embedded tz database, the binary must not depend on the host zoneinfo
)

// Unit is a calendar or clock unit used for date arithmetic
type Unit string

const (
	UnitYear   Unit = "year"
	UnitMonth  Unit = "month"
	UnitWeek   Unit = "week"
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
	UnitSecond Unit = "second"
)

// Units lists every supported unit, largest first
var Units = []Unit{UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond}

// ParseUnit parses a unit name case-insensitively. Plural forms are accepted ("Months").
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "s")
	for _, u := range Units {
		if string(u) == name {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown time unit %q", s)
}

// IsCalendarUnit reports whether u has variable length (year, month, week, day)
func (u Unit) IsCalendarUnit() bool {
	switch u {
	case UnitYear, UnitMonth, UnitWeek, UnitDay:
		return true
	}
	return false
}

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Used in tests and dry runs.
type FixedClock time.Time

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// LoadLocation resolves an IANA timezone identifier.
// Unlike time.LoadLocation it rejects "" and "Local", which are not identifiers.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("invalid timezone %q", name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// NowIn returns the clock's current instant in loc
func NowIn(clock Clock, loc *time.Location) time.Time {
	return clock.Now().In(loc)
}

// StartOfDay returns midnight (00:00:00) of the given date in its own location
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date (today if Monday)
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	daysFromMonday := weekday - 1
	return StartOfDay(date.AddDate(0, 0, -daysFromMonday))
}

// StartOfSundayWeek returns the most recent Sunday for the given date (today if Sunday)
func StartOfSundayWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -int(date.Weekday())))
}

// StartOfMonth returns the first day of the month at midnight
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// StartOfYear returns January 1st of the date's year at midnight
func StartOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
}

// AddUnits adds n units to t. Calendar units follow AddDate normalization
// (Jan 31 + 1 month = Mar 3 in a non-leap year); clock units add elapsed time.
func AddUnits(t time.Time, n int, unit Unit) (time.Time, error) {
	switch unit {
	case UnitYear:
		return t.AddDate(n, 0, 0), nil
	case UnitMonth:
		return t.AddDate(0, n, 0), nil
	case UnitWeek:
		return t.AddDate(0, 0, 7*n), nil
	case UnitDay:
		return t.AddDate(0, 0, n), nil
	case UnitHour:
		return addElapsed(t, int64(n), time.Hour), nil
	case UnitMinute:
		return addElapsed(t, int64(n), time.Minute), nil
	case UnitSecond:
		return addElapsed(t, int64(n), time.Second), nil
	default:
		return t, fmt.Errorf("unknown time unit %q", unit)
	}
}

// addElapsed adds n*step in chunks small enough that no Duration overflows
func addElapsed(t time.Time, n int64, step time.Duration) time.Time {
	limit := math.MaxInt64 / int64(step)
	for n > limit {
		t = t.Add(time.Duration(limit) * step)
		n -= limit
	}
	for n < -limit {
		t = t.Add(-time.Duration(limit) * step)
		n += limit
	}
	return t.Add(time.Duration(n) * step)
}

// IsMidnight returns true if the time-of-day is exactly 00:00:00
func IsMidnight(date time.Time) bool {
	return date.Hour() == 0 && date.Minute() == 0 && date.Second() == 0 && date.Nanosecond() == 0
}

// FormatISO8601 formats date to ISO 8601 format with timezone
// Example: 2025-01-15T10:00:00.000+0000
func FormatISO8601(date time.Time) string {
	return date.Format("2006-01-02T15:04:05.000-0700")
}
