package intl

import (
	"fmt"
	"strings"

	"github.com/username/datemanip/pkg/dateformat"
)

// TranslatePattern converts an ICU date pattern ("d MMMM yyyy, HH:mm") into a
// Go reference layout. Quoted text ('de', '') is kept literally.
func TranslatePattern(pattern string) (string, error) {
	rs := []rune(pattern)
	var out, lit strings.Builder

	flush := func() error {
		if lit.Len() == 0 {
			return nil
		}
		if dateformat.ContainsLayoutToken(lit.String()) {
			return fmt.Errorf("%w: literal %q", ErrUnsupportedPattern, lit.String())
		}
		out.WriteString(lit.String())
		lit.Reset()
		return nil
	}

	for i := 0; i < len(rs); {
		c := rs[i]

		if c == '\'' {
			if i+1 < len(rs) && rs[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			closed := false
			for j < len(rs) {
				if rs[j] == '\'' {
					if j+1 < len(rs) && rs[j+1] == '\'' {
						lit.WriteRune('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				lit.WriteRune(rs[j])
				j++
			}
			if !closed {
				return "", fmt.Errorf("%w: unterminated quote in %q", ErrUnsupportedPattern, pattern)
			}
			i = j + 1
			continue
		}

		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			n := 1
			for i+n < len(rs) && rs[i+n] == c {
				n++
			}
			if err := flush(); err != nil {
				return "", err
			}
			layout, err := field(c, n, out.String())
			if err != nil {
				return "", err
			}
			out.WriteString(layout)
			i += n
			continue
		}

		lit.WriteRune(c)
		i++
	}

	if err := flush(); err != nil {
		return "", err
	}
	return out.String(), nil
}

func field(c rune, n int, prefix string) (string, error) {
	unsupported := func() (string, error) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPattern, strings.Repeat(string(c), n))
	}

	switch c {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M', 'L':
		switch n {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		default:
			return "January", nil
		}
	case 'd':
		switch n {
		case 1:
			return "2", nil
		case 2:
			return "02", nil
		}
	case 'E':
		if n <= 3 {
			return "Mon", nil
		}
		return "Monday", nil
	case 'a':
		return "PM", nil
	case 'h':
		switch n {
		case 1:
			return "3", nil
		case 2:
			return "03", nil
		}
	case 'H':
		if n <= 2 {
			return "15", nil
		}
	case 'm':
		switch n {
		case 1:
			return "4", nil
		case 2:
			return "04", nil
		}
	case 's':
		switch n {
		case 1:
			return "5", nil
		case 2:
			return "05", nil
		}
	case 'S':
		if n <= 9 && (strings.HasSuffix(prefix, ".") || strings.HasSuffix(prefix, ",")) {
			return strings.Repeat("0", n), nil
		}
	case 'z':
		return "MST", nil
	case 'Z':
		switch {
		case n <= 3:
			return "-0700", nil
		case n == 5:
			return "Z07:00", nil
		}
	case 'X':
		switch n {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		case 3:
			return "Z07:00", nil
		}
	case 'x':
		switch n {
		case 1:
			return "-07", nil
		case 2:
			return "-0700", nil
		case 3:
			return "-07:00", nil
		}
	}
	return unsupported()
}
