package dateformat

import (
	"errors"
	"testing"
	"time"
)

func athens(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Athens")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	return loc
}

func TestFormat(t *testing.T) {
	loc := athens(t)
	// Wednesday, 1 March 2017 09:05:07.123456 EET (+02:00)
	date := time.Date(2017, 3, 1, 9, 5, 7, 123456000, loc)

	tests := []struct {
		pattern string
		want    string
	}{
		{"j/n/Y H:i", "1/3/2017 09:05"},
		{"d.m.y", "01.03.17"},
		{"D, d M Y", "Wed, 01 Mar 2017"},
		{"l jS F", "Wednesday 1st March"},
		{"N w z t L", "3 3 59 31 0"},
		{"g:i a / h:i A / G", "9:05 am / 09:05 AM / 9"},
		{"s.u v", "07.123456 123"},
		{"e T P O Z I", "Europe/Athens EET +02:00 +0200 7200 0"},
		{"c", "2017-03-01T09:05:07+02:00"},
		{"r", "Wed, 01 Mar 2017 09:05:07 +0200"},
		{"o-\\WW", "2017-W09"},
		{"U", "1488351907"},
		{"\\Y\\e\\s: Y", "Yes: 2017"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Format(date, tt.pattern)
			if got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", date, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatOrdinalSuffix(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"}, {31, "31st"},
	}

	for _, tt := range tests {
		date := time.Date(2017, 1, tt.day, 0, 0, 0, 0, time.UTC)
		if got := Format(date, "jS"); got != tt.want {
			t.Errorf("Format(day %d, jS) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestParseInLocation(t *testing.T) {
	loc := athens(t)

	tests := []struct {
		name    string
		pattern string
		value   string
		want    time.Time
	}{
		{"day month year", "j/n/Y H:i", "1/1/2017 00:00", time.Date(2017, 1, 1, 0, 0, 0, 0, loc)},
		{"unpadded 24h hour", "j/n/Y G:i", "1/1/2017 7:30", time.Date(2017, 1, 1, 7, 30, 0, 0, loc)},
		{"iso date", "Y-m-d", "2017-02-28", time.Date(2017, 2, 28, 0, 0, 0, 0, loc)},
		{"month name", "d F Y", "05 March 2017", time.Date(2017, 3, 5, 0, 0, 0, 0, loc)},
		{"reset marker", "!Y-m-d", "2017-02-28", time.Date(2017, 2, 28, 0, 0, 0, 0, loc)},
		{"microseconds", "H:i:s.u", "10:11:12.500000", time.Date(0, 1, 1, 10, 11, 12, 500000000, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInLocation(tt.pattern, tt.value, loc)
			if err != nil {
				t.Fatalf("ParseInLocation(%q, %q) error = %v", tt.pattern, tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInLocation(%q, %q) = %v, want %v", tt.pattern, tt.value, got, tt.want)
			}
			if got.Location() != loc {
				t.Errorf("ParseInLocation() location = %v, want %v", got.Location(), loc)
			}
		})
	}
}

func TestParseOffsetWins(t *testing.T) {
	loc := athens(t)
	got, err := ParseInLocation("Y-m-d\\TH:i:sP", "2017-01-01T10:00:00+05:00", loc)
	if err != nil {
		t.Fatalf("ParseInLocation() error = %v", err)
	}
	want := time.Date(2017, 1, 1, 5, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseInLocation() = %v, want %v", got, want)
	}
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
	}{
		{"february 30th", "j/n/Y", "30/2/2017"},
		{"february 29th in non-leap year", "Y-m-d", "2017-02-29"},
		{"month 13", "j/n/Y", "1/13/2017"},
		{"hour 24", "H:i", "24:00"},
		{"trailing text", "Y-m-d", "2017-01-01 extra"},
		{"not a date", "Y-m-d", "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := Parse(tt.pattern, tt.value); err == nil {
				t.Errorf("Parse(%q, %q) = %v, want error", tt.pattern, tt.value, got)
			}
		})
	}
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"ordinal suffix", "jS F", ErrUnsupportedParse},
		{"unix timestamp", "U", ErrUnsupportedParse},
		{"timezone identifier", "Y-m-d e", ErrUnsupportedParse},
		{"microseconds without dot", "su", ErrUnsupportedParse},
		{"digit literal", "Y\\1m", ErrAmbiguousLiteral},
		{"month name literal", "Y \\J\\a\\n", ErrAmbiguousLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Layout(tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Layout(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	loc := athens(t)
	date := time.Date(2017, 10, 29, 12, 30, 0, 0, loc)

	for _, pattern := range []string{"j/n/Y H:i", "Y-m-d H:i:s", "D, d M Y H:i:s O", "c"} {
		t.Run(pattern, func(t *testing.T) {
			text := Format(date, pattern)
			got, err := ParseInLocation(pattern, text, loc)
			if err != nil {
				t.Fatalf("ParseInLocation(%q, %q) error = %v", pattern, text, err)
			}
			if !got.Equal(date) {
				t.Errorf("round trip %q: got %v, want %v", pattern, got, date)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2016, true}, {2017, false}, {1900, false}, {2000, true},
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}
