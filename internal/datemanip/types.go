package datemanip

import (
	"strings"
	"time"

	"github.com/username/datemanip/internal/intl"
	"github.com/username/datemanip/pkg/dateutil"
)

// RangeKind selects which calendar-aligned range CreateDateRange computes
type RangeKind string

const (
	CurrentYear           RangeKind = "current_year"
	CurrentMonth          RangeKind = "current_month"
	CurrentWeekFromMonday RangeKind = "current_week_from_monday"
	CurrentWeekFromSunday RangeKind = "current_week_from_sunday"
	CurrentDay            RangeKind = "current_day"
)

// RangeKinds lists every valid range kind
var RangeKinds = []RangeKind{CurrentYear, CurrentMonth, CurrentWeekFromMonday, CurrentWeekFromSunday, CurrentDay}

// rangeRule keeps the alignment and the one-unit increment of a range kind together
type rangeRule struct {
	align func(time.Time) time.Time
	step  dateutil.Unit
}

var rangeRules = map[RangeKind]rangeRule{
	CurrentYear:           {align: dateutil.StartOfYear, step: dateutil.UnitYear},
	CurrentMonth:          {align: dateutil.StartOfMonth, step: dateutil.UnitMonth},
	CurrentWeekFromMonday: {align: dateutil.StartOfWeek, step: dateutil.UnitWeek},
	CurrentWeekFromSunday: {align: dateutil.StartOfSundayWeek, step: dateutil.UnitWeek},
	CurrentDay:            {align: dateutil.StartOfDay, step: dateutil.UnitDay},
}

// ParseRangeKind validates a range kind name
func ParseRangeKind(s string) (RangeKind, bool) {
	kind := RangeKind(s)
	_, ok := rangeRules[kind]
	return kind, ok
}

// Direction is the sign of a date modification
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// ParseDirection validates a direction name case-insensitively
func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Increase, Decrease:
		return d, true
	}
	return "", false
}

// Sign returns +1 for Increase and -1 for Decrease
func (d Direction) Sign() int {
	if d == Decrease {
		return -1
	}
	return 1
}

// Format selects how dates are rendered and parsed.
// When Intl is set it is used and Native is ignored.
type Format struct {
	Native string
	Intl   *intl.Settings
}

// NativeFormat is a Format using PHP date() characters
func NativeFormat(pattern string) Format {
	return Format{Native: pattern}
}

// IntlFormat is a Format using locale-aware settings
func IntlFormat(settings intl.Settings) Format {
	return Format{Intl: &settings}
}

// DateRange is the result of CreateDateRange. End is Start plus one unit of the range kind.
type DateRange struct {
	Kind      RangeKind
	Start     time.Time
	End       time.Time
	StartText string
	EndText   string
}

// Modification is the result of ModifyDateString
type Modification struct {
	Original time.Time
	Value    time.Time
	Text     string
}
