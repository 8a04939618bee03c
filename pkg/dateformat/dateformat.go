// Package dateformat formats and strictly parses dates using PHP date()
// format characters ("j/n/Y H:i", "Y-m-d\TH:i:sP", ...).
//
// Formatting supports the full character table. Parsing is delegated to
// time.ParseInLocation, so only characters that have a Go reference layout
// equivalent can be parsed. Go rejects out-of-range components, which makes
// "30/2/2017" an error instead of a silently corrected March 2nd.
package dateformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnsupportedParse is returned when a pattern contains a character that cannot be parsed
	ErrUnsupportedParse = errors.New("format character not supported for parsing")
	// ErrAmbiguousLiteral is returned when literal text would be read as a Go layout element
	ErrAmbiguousLiteral = errors.New("literal text is ambiguous for parsing")
)

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenLayout
	tokenFunc
	tokenReset
)

type token struct {
	kind  tokenKind
	char  byte
	value string // literal text or Go layout fragment
	fn    func(time.Time) string
	parse string // layout used when parsing a tokenFunc, empty if unsupported
}

// layouts maps format characters that have a direct Go layout equivalent
var layouts = map[byte]string{
	'd': "02",
	'D': "Mon",
	'j': "2",
	'l': "Monday",
	'F': "January",
	'm': "01",
	'M': "Jan",
	'n': "1",
	'Y': "2006",
	'y': "06",
	'a': "pm",
	'A': "PM",
	'g': "3",
	'h': "03",
	'H': "15",
	'i': "04",
	's': "05",
	'O': "-0700",
	'P': "-07:00",
	'p': "Z07:00",
	'T': "MST",
	'c': "2006-01-02T15:04:05-07:00",
	'r': "Mon, 02 Jan 2006 15:04:05 -0700",
}

var funcs = map[byte]struct {
	fn    func(time.Time) string
	parse string
}{
	'N': {isoWeekday, ""},
	'S': {ordinalSuffix, ""},
	'w': {func(t time.Time) string { return strconv.Itoa(int(t.Weekday())) }, ""},
	'z': {func(t time.Time) string { return strconv.Itoa(t.YearDay() - 1) }, ""},
	'W': {isoWeek, ""},
	't': {func(t time.Time) string { return strconv.Itoa(DaysInMonth(t)) }, ""},
	'L': {func(t time.Time) string { return boolDigit(IsLeapYear(t.Year())) }, ""},
	'o': {func(t time.Time) string { y, _ := t.ISOWeek(); return strconv.Itoa(y) }, ""},
	'B': {swatch, ""},
	'G': {func(t time.Time) string { return strconv.Itoa(t.Hour()) }, "15"},
	'u': {func(t time.Time) string { return fmt.Sprintf("%06d", t.Nanosecond()/1000) }, "000000"},
	'v': {func(t time.Time) string { return fmt.Sprintf("%03d", t.Nanosecond()/1000000) }, "000"},
	'e': {func(t time.Time) string { return t.Location().String() }, ""},
	'I': {func(t time.Time) string { return boolDigit(t.IsDST()) }, ""},
	'Z': {func(t time.Time) string { _, off := t.Zone(); return strconv.Itoa(off) }, ""},
	'U': {func(t time.Time) string { return strconv.FormatInt(t.Unix(), 10) }, ""},
}

func compile(pattern string) []token {
	tokens := make([]token, 0, len(pattern))
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokenLiteral, value: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' {
			if i+1 < len(pattern) {
				i++
				lit.WriteByte(pattern[i])
			}
			continue
		}
		if layout, ok := layouts[c]; ok {
			flush()
			tokens = append(tokens, token{kind: tokenLayout, char: c, value: layout})
			continue
		}
		if f, ok := funcs[c]; ok {
			flush()
			tokens = append(tokens, token{kind: tokenFunc, char: c, fn: f.fn, parse: f.parse})
			continue
		}
		if c == '!' || c == '|' {
			flush()
			tokens = append(tokens, token{kind: tokenReset, char: c})
			continue
		}
		lit.WriteByte(c)
	}
	flush()
	return tokens
}

// Format renders t using PHP date() format characters.
// Characters without a meaning are copied through; a backslash escapes the next character.
func Format(t time.Time, pattern string) string {
	var b strings.Builder
	for _, tok := range compile(pattern) {
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(tok.value)
		case tokenLayout:
			b.WriteString(t.Format(tok.value))
		case tokenFunc:
			b.WriteString(tok.fn(t))
		case tokenReset:
			b.WriteByte(tok.char)
		}
	}
	return b.String()
}

// Layout converts a pattern to a Go reference layout suitable for time.Parse
func Layout(pattern string) (string, error) {
	var b strings.Builder
	for _, tok := range compile(pattern) {
		switch tok.kind {
		case tokenLiteral:
			if ContainsLayoutToken(tok.value) {
				return "", fmt.Errorf("%w: %q", ErrAmbiguousLiteral, tok.value)
			}
			b.WriteString(tok.value)
		case tokenLayout:
			b.WriteString(tok.value)
		case tokenFunc:
			if tok.parse == "" {
				return "", fmt.Errorf("%w: %q", ErrUnsupportedParse, string(tok.char))
			}
			if tok.char == 'u' || tok.char == 'v' {
				s := b.String()
				if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, ",") {
					return "", fmt.Errorf("%w: %q must follow a '.' or ','", ErrUnsupportedParse, string(tok.char))
				}
			}
			b.WriteString(tok.parse)
		case tokenReset:
			// fields missing from the pattern are always zero in Go, which is what '!' and '|' request
		}
	}
	return b.String(), nil
}

// Parse parses value without a location; the result is in UTC unless the pattern carries an offset
func Parse(pattern, value string) (time.Time, error) {
	return ParseInLocation(pattern, value, time.UTC)
}

// ParseInLocation parses value with pattern, interpreting zone-less values in loc
func ParseInLocation(pattern, value string, loc *time.Location) (time.Time, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %q with pattern %q: %w", value, pattern, err)
	}
	return t, nil
}

// ContainsLayoutToken reports whether literal text would be interpreted as a
// Go reference layout element (digits, month or weekday names, zone markers).
func ContainsLayoutToken(lit string) bool {
	if strings.ContainsAny(lit, "0123456789_") {
		return true
	}
	for _, std := range []string{"Jan", "Mon", "MST", "PM", "pm", "Z07"} {
		if strings.Contains(lit, std) {
			return true
		}
	}
	return false
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in t's month
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isoWeekday(t time.Time) string {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return strconv.Itoa(wd)
}

func isoWeek(t time.Time) string {
	_, w := t.ISOWeek()
	return fmt.Sprintf("%02d", w)
}

func ordinalSuffix(t time.Time) string {
	d := t.Day()
	if d >= 11 && d <= 13 {
		return "th"
	}
	switch d % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// swatch renders Swatch Internet Time (beats, UTC+1 based)
func swatch(t time.Time) string {
	u := t.UTC()
	secs := (u.Hour()*3600 + u.Minute()*60 + u.Second() + 3600) % 86400
	return fmt.Sprintf("%03d", secs*1000/86400)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
