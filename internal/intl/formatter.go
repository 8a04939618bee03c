// Package intl renders and parses dates with locale-specific month and weekday
// names. Locale data comes from goodsign/monday; locale identifiers are matched
// with golang.org/x/text/language so "el", "el-GR" and "el_GR" all resolve.
package intl

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"

	"github.com/username/datemanip/pkg/dateutil"
)

var (
	ErrUnknownLocale       = errors.New("unknown locale")
	ErrInvalidStyle        = errors.New("invalid date/time style")
	ErrUnsupportedCalendar = errors.New("unsupported calendar")
	ErrUnsupportedPattern  = errors.New("unsupported pattern")
	ErrEmptyLayout         = errors.New("date and time styles are both none and no pattern is set")
)

// DefaultLocale is used when Settings.Locale is empty
const DefaultLocale = monday.Locale(monday.LocaleEnUS)

// Formatter renders and parses dates for one Settings value
type Formatter struct {
	settings Settings
	locale   monday.Locale
	loc      *time.Location // nil: keep the value's own location
	layout   string
}

// NewFormatter validates settings and prepares the Go layout
func NewFormatter(s Settings) (*Formatter, error) {
	locale, err := ResolveLocale(s.Locale)
	if err != nil {
		return nil, err
	}

	var loc *time.Location
	if s.Timezone != "" {
		loc, err = dateutil.LoadLocation(s.Timezone)
		if err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(strings.TrimSpace(s.Calendar)) {
	case "", CalendarGregorian:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCalendar, s.Calendar)
	}

	var layout string
	if s.Pattern != "" {
		layout, err = TranslatePattern(s.Pattern)
	} else {
		layout, err = styleLayout(locale, s.DateStyle, s.TimeStyle)
	}
	if err != nil {
		return nil, err
	}

	return &Formatter{
		settings: s,
		locale:   locale,
		loc:      loc,
		layout:   layout,
	}, nil
}

// Format renders t in the configured timezone and locale
func (f *Formatter) Format(t time.Time) string {
	if f.loc != nil {
		t = t.In(f.loc)
	}
	return monday.Format(t, f.layout, f.locale)
}

// Parse reads text back into an instant. Values without an explicit offset are
// interpreted in the configured timezone, or UTC when none is set.
func (f *Formatter) Parse(text string) (time.Time, error) {
	return f.ParseInLocation(text, nil)
}

// ParseInLocation is like Parse but falls back to loc when the settings carry
// no timezone, so text is read in the same zone Format would write it.
func (f *Formatter) ParseInLocation(text string, loc *time.Location) (time.Time, error) {
	if f.loc != nil {
		loc = f.loc
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := monday.ParseInLocation(f.layout, text, loc, f.locale)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %q for locale %s: %w", text, f.locale, err)
	}
	return t, nil
}

// Locale returns the resolved locale
func (f *Formatter) Locale() monday.Locale {
	return f.locale
}

// Layout returns the Go reference layout in use
func (f *Formatter) Layout() string {
	return f.layout
}

// Settings returns the settings the formatter was built from
func (f *Formatter) Settings() Settings {
	return f.settings
}

var timeLayouts = map[Style]string{
	StyleFull:   "15:04:05 MST",
	StyleLong:   "15:04:05 MST",
	StyleMedium: "15:04:05",
	StyleShort:  "15:04",
}

func styleLayout(locale monday.Locale, dateStyle, timeStyle string) (string, error) {
	ds, err := ParseStyle(dateStyle)
	if err != nil {
		return "", err
	}
	ts, err := ParseStyle(timeStyle)
	if err != nil {
		return "", err
	}

	var parts []string
	if ds != StyleNone {
		parts = append(parts, dateLayout(locale, ds))
	}
	if ts != StyleNone {
		parts = append(parts, timeLayouts[ts])
	}
	if len(parts) == 0 {
		return "", ErrEmptyLayout
	}
	return strings.Join(parts, " "), nil
}

func dateLayout(locale monday.Locale, style Style) string {
	var formats map[monday.Locale]string
	switch style {
	case StyleFull:
		formats = monday.FullFormatsByLocale
	case StyleLong:
		formats = monday.LongFormatsByLocale
	case StyleMedium:
		formats = monday.MediumFormatsByLocale
	default:
		formats = monday.ShortFormatsByLocale
	}
	if layout, ok := formats[locale]; ok {
		return layout
	}
	return formats[DefaultLocale]
}

var (
	localesOnce sync.Once
	locales     []monday.Locale
	matcher     language.Matcher
)

func loadLocales() {
	var tags []language.Tag
	for _, l := range monday.ListLocales() {
		tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		locales = append(locales, l)
		tags = append(tags, tag)
	}
	matcher = language.NewMatcher(tags)
}

// ResolveLocale maps a locale identifier to the closest supported locale.
// An exact identifier wins; otherwise a language match of high confidence is required.
func ResolveLocale(name string) (monday.Locale, error) {
	localesOnce.Do(loadLocales)

	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLocale, nil
	}

	normalized := strings.ReplaceAll(name, "-", "_")
	for _, l := range locales {
		if strings.EqualFold(string(l), normalized) {
			return l, nil
		}
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High || idx < 0 || idx >= len(locales) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	return locales[idx], nil
}

// SupportedLocales returns the sorted locale identifiers the formatter accepts
func SupportedLocales() []string {
	localesOnce.Do(loadLocales)

	names := make([]string, 0, len(locales))
	for _, l := range locales {
		names = append(names, string(l))
	}
	sort.Strings(names)
	return names
}
