package intl

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goodsign/monday"
)

func TestTranslatePattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"d/M/yyyy HH:mm", "2/1/2006 15:04"},
		{"dd.MM.yy", "02.01.06"},
		{"EEEE, d MMMM y", "Monday, 2 January 2006"},
		{"EEE d MMM", "Mon 2 Jan"},
		{"h:mm a", "3:04 PM"},
		{"HH:mm:ss.SSS", "15:04:05.000"},
		{"d 'de' MMMM", "2 de January"},
		{"HH'h'mm", "15h04"},
		{"yyyy-MM-dd'T'HH:mm:ssXXX", "2006-01-02T15:04:05Z07:00"},
		{"HH:mm z", "15:04 MST"},
		{"HH:mm Z", "15:04 -0700"},
		{"'o''clock' h", "o'clock 3"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := TranslatePattern(tt.pattern)
			if err != nil {
				t.Fatalf("TranslatePattern(%q) error = %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("TranslatePattern(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTranslatePatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"era", "G yyyy"},
		{"day of year", "D"},
		{"week of year", "w"},
		{"fraction without dot", "ssSSS"},
		{"unterminated quote", "d 'de MMMM"},
		{"digit literal", "yyyy 1 MM"},
		{"three letter day", "ddd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TranslatePattern(tt.pattern)
			if !errors.Is(err, ErrUnsupportedPattern) {
				t.Errorf("TranslatePattern(%q) error = %v, want %v", tt.pattern, err, ErrUnsupportedPattern)
			}
		})
	}
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name    string
		want    monday.Locale
		wantErr bool
	}{
		{"", DefaultLocale, false},
		{"en_US", monday.Locale(monday.LocaleEnUS), false},
		{"el_GR", monday.Locale(monday.LocaleElGR), false},
		{"el-GR", monday.Locale(monday.LocaleElGR), false},
		{"EL_gr", monday.Locale(monday.LocaleElGR), false},
		{"el", monday.Locale(monday.LocaleElGR), false},
		{"fr-FR", monday.Locale(monday.LocaleFrFR), false},
		{"xx-invalid-tag-!!", "", true},
		{"tlh", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLocale(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveLocale(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownLocale) {
				t.Errorf("ResolveLocale(%q) error = %v, want %v", tt.name, err, ErrUnknownLocale)
			}
			if got != tt.want {
				t.Errorf("ResolveLocale(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewFormatterErrors(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{"unknown locale", Settings{Locale: "tlh", Pattern: "d"}, ErrUnknownLocale},
		{"islamic calendar", Settings{Locale: "en_US", Calendar: "islamic", Pattern: "d"}, ErrUnsupportedCalendar},
		{"bad style", Settings{Locale: "en_US", DateStyle: "tiny"}, ErrInvalidStyle},
		{"no layout", Settings{Locale: "en_US", DateStyle: "none", TimeStyle: "none"}, ErrEmptyLayout},
		{"bad pattern", Settings{Locale: "en_US", Pattern: "G"}, ErrUnsupportedPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormatter(tt.settings)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFormatter() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := NewFormatter(Settings{Locale: "en_US", Timezone: "Not/AZone", Pattern: "d"}); err == nil {
		t.Error("NewFormatter() expected error for invalid timezone, got nil")
	}
}

func TestFormatterFormat(t *testing.T) {
	date := time.Date(2017, 1, 1, 22, 30, 0, 0, time.UTC)

	f, err := NewFormatter(Settings{
		Locale:   "fr_FR",
		Timezone: "Europe/Athens",
		Calendar: "gregorian",
		Pattern:  "d MMMM yyyy HH:mm",
	})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	// 22:30 UTC is already January 2nd in Athens
	got := f.Format(date)
	want := "2 janvier 2017 00:30"
	if got != want {
		t.Errorf("Format(%v) = %q, want %q", date, got, want)
	}
}

func TestFormatterGreekMonthNames(t *testing.T) {
	f, err := NewFormatter(Settings{Locale: "el_GR", Timezone: "Europe/Athens", Pattern: "d MMMM yyyy"})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	got := f.Format(time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC))
	if strings.Contains(got, "March") || !strings.HasPrefix(got, "1 ") || !strings.HasSuffix(got, " 2017") {
		t.Errorf("Format() = %q, want Greek month name", got)
	}
}

func TestFormatterRoundTrip(t *testing.T) {
	athens, _ := time.LoadLocation("Europe/Athens")
	date := time.Date(2017, 4, 1, 15, 45, 0, 0, athens)

	f, err := NewFormatter(Settings{Locale: "fr_FR", Timezone: "Europe/Athens", Pattern: "d MMMM yyyy HH:mm"})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	text := f.Format(date)
	got, err := f.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	if !got.Equal(date) {
		t.Errorf("Parse(%q) = %v, want %v", text, got, date)
	}
}

func TestFormatterParseInLocation(t *testing.T) {
	athens, _ := time.LoadLocation("Europe/Athens")
	tokyo, _ := time.LoadLocation("Asia/Tokyo")

	zoneless, err := NewFormatter(Settings{Locale: "en_US", Pattern: "d/M/yyyy HH:mm"})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}
	got, err := zoneless.ParseInLocation("1/1/2017 00:00", athens)
	if err != nil {
		t.Fatalf("ParseInLocation() error = %v", err)
	}
	if want := time.Date(2017, 1, 1, 0, 0, 0, 0, athens); !got.Equal(want) {
		t.Errorf("ParseInLocation() = %v, want %v", got, want)
	}
	if text := zoneless.Format(got); text != "1/1/2017 00:00" {
		t.Errorf("Format(ParseInLocation()) = %q, want %q", text, "1/1/2017 00:00")
	}

	zoned, err := NewFormatter(Settings{Locale: "en_US", Timezone: "Asia/Tokyo", Pattern: "d/M/yyyy HH:mm"})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}
	got, err = zoned.ParseInLocation("1/1/2017 00:00", athens)
	if err != nil {
		t.Fatalf("ParseInLocation() error = %v", err)
	}
	if want := time.Date(2017, 1, 1, 0, 0, 0, 0, tokyo); !got.Equal(want) {
		t.Errorf("ParseInLocation() with settings timezone = %v, want %v", got, want)
	}
}

func TestFormatterParseRejectsInvalidDate(t *testing.T) {
	f, err := NewFormatter(Settings{Locale: "en_US", Pattern: "d/M/yyyy"})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	for _, text := range []string{"30/2/2017", "garbage", ""} {
		if got, err := f.Parse(text); err == nil {
			t.Errorf("Parse(%q) = %v, want error", text, got)
		}
	}
}

func TestFormatterStyles(t *testing.T) {
	f, err := NewFormatter(Settings{Locale: "en_US", DateStyle: "none", TimeStyle: "short", Timezone: "UTC"})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}
	if f.Layout() != "15:04" {
		t.Errorf("Layout() = %q, want %q", f.Layout(), "15:04")
	}
	if got := f.Format(time.Date(2017, 1, 1, 9, 7, 0, 0, time.UTC)); got != "09:07" {
		t.Errorf("Format() = %q, want %q", got, "09:07")
	}

	full, err := NewFormatter(Settings{Locale: "en_US", DateStyle: "full", TimeStyle: "none"})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}
	if full.Layout() != monday.FullFormatsByLocale[DefaultLocale] {
		t.Errorf("Layout() = %q, want %q", full.Layout(), monday.FullFormatsByLocale[DefaultLocale])
	}
}

func TestSupportedLocales(t *testing.T) {
	names := SupportedLocales()
	if len(names) == 0 {
		t.Fatal("SupportedLocales() returned nothing")
	}
	found := false
	for i, n := range names {
		if i > 0 && names[i-1] > n {
			t.Errorf("SupportedLocales() not sorted at %d: %q > %q", i, names[i-1], n)
		}
		if n == "el_GR" {
			found = true
		}
	}
	if !found {
		t.Error("SupportedLocales() does not contain el_GR")
	}
}
