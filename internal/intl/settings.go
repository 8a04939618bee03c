package intl

import (
	"fmt"
	"strings"
)

// Style is a predefined date or time length, mirroring the ICU styles
type Style string

const (
	StyleNone   Style = "none"
	StyleFull   Style = "full"
	StyleLong   Style = "long"
	StyleMedium Style = "medium"
	StyleShort  Style = "short"
)

// CalendarGregorian is the only calendar system the formatter renders
const CalendarGregorian = "gregorian"

// ParseStyle parses a style name. Empty means full, as in ICU.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StyleFull, nil
	case StyleNone, StyleFull, StyleLong, StyleMedium, StyleShort:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
	}
}

// Settings configures a locale-aware formatter.
// Pattern, when set, takes precedence over DateStyle and TimeStyle.
type Settings struct {
	Locale    string `mapstructure:"locale"`
	DateStyle string `mapstructure:"date_style"`
	TimeStyle string `mapstructure:"time_style"`
	Timezone  string `mapstructure:"timezone"`
	Calendar  string `mapstructure:"calendar"`
	Pattern   string `mapstructure:"pattern"`
}
