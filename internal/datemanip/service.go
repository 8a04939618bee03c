// Package datemanip computes calendar-aligned date ranges and shifts date
// strings by calendar units, validating every input before touching a date.
//
// A Service keeps the last result and the last error message. It is not safe
// for concurrent use: give each session its own Service or serialize access.
package datemanip

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/datemanip/internal/intl"
	"github.com/username/datemanip/pkg/dateformat"
	"github.com/username/datemanip/pkg/dateutil"
)

// Service is the date range and modification service
type Service struct {
	messages Messages
	clock    dateutil.Clock
	logger   *zap.Logger

	lastError        string
	lastRange        *DateRange
	lastModification *Modification
}

// Option configures a Service
type Option func(*Service)

// WithMessages replaces the whole message table.
// A table with any empty entry is ignored and the defaults stay in place.
func WithMessages(m Messages) Option {
	return func(s *Service) {
		if m.Validate() != nil {
			return
		}
		s.messages = m
	}
}

// WithClock sets the source of "now" used by CreateDateRange
func WithClock(c dateutil.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithLogger sets the logger; operations are logged at debug level
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New creates a Service with the default messages and the system clock
func New(opts ...Option) *Service {
	s := &Service{
		messages: DefaultMessages(),
		clock:    dateutil.SystemClock{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LastError returns the message of the last failed operation, or "" after a success
func (s *Service) LastError() string {
	return s.lastError
}

// LastRange returns the result of the last successful CreateDateRange
func (s *Service) LastRange() *DateRange {
	return s.lastRange
}

// LastModification returns the result of the last successful ModifyDateString
func (s *Service) LastModification() *Modification {
	return s.lastModification
}

// Messages returns the message table in use
func (s *Service) Messages() Messages {
	return s.messages
}

func (s *Service) fail(kind ErrorKind, cause error) error {
	err := &Error{Kind: kind, Message: s.messages.Text(kind), Err: cause}
	s.lastError = err.Message
	s.logger.Debug("Operation rejected",
		zap.String("kind", string(kind)),
		zap.NamedError("cause", cause))
	return err
}

// CreateDateRange computes the range of the given kind containing "now" in timezone.
// Start is midnight in timezone; End is Start plus one year, month, week or day.
func (s *Service) CreateDateRange(kind, timezone string, format Format) (*DateRange, error) {
	rangeKind, ok := ParseRangeKind(kind)
	if !ok {
		return nil, s.fail(InvalidDateRange, fmt.Errorf("unknown range kind %q", kind))
	}

	loc, err := dateutil.LoadLocation(timezone)
	if err != nil {
		return nil, s.fail(InvalidTimezone, err)
	}

	rule := rangeRules[rangeKind]
	now := dateutil.NowIn(s.clock, loc)
	start := dateutil.StartOfDay(rule.align(now))

	end, err := dateutil.AddUnits(start, 1, rule.step)
	if err != nil {
		return nil, s.fail(InvalidDateRange, err)
	}

	startText, err := FormatDateTime(start, format)
	if err != nil {
		return nil, s.fail(InvalidFormatSettings, err)
	}
	endText, err := FormatDateTime(end, format)
	if err != nil {
		return nil, s.fail(InvalidFormatSettings, err)
	}

	result := &DateRange{
		Kind:      rangeKind,
		Start:     start,
		End:       end,
		StartText: startText,
		EndText:   endText,
	}
	s.lastRange = result
	s.lastError = ""

	s.logger.Debug("Date range created",
		zap.String("kind", string(rangeKind)),
		zap.String("timezone", timezone),
		zap.Time("start", start),
		zap.Time("end", end))

	return result, nil
}

// ModifyDateString parses dateText in timezone and shifts it by quantity units.
// Checks run in order (direction, quantity, unit, timezone, date text) and the
// first failure is returned.
func (s *Service) ModifyDateString(direction string, quantity any, unit, dateText, timezone string, format Format) (*Modification, error) {
	dir, ok := ParseDirection(direction)
	if !ok {
		return nil, s.fail(InvalidDateModification, fmt.Errorf("unknown direction %q", direction))
	}

	n, ok := positiveInteger(quantity)
	if !ok {
		return nil, s.fail(InvalidDateModificationQuantity, fmt.Errorf("quantity %v is not a positive integer", quantity))
	}

	u, err := dateutil.ParseUnit(unit)
	if err != nil {
		return nil, s.fail(InvalidDateModificationUnit, err)
	}

	loc, err := dateutil.LoadLocation(timezone)
	if err != nil {
		return nil, s.fail(InvalidTimezone, err)
	}

	parsed, err := parseDateTime(dateText, format.Native, loc, format.Intl)
	if err != nil {
		return nil, s.fail(InvalidDateToModify, err)
	}
	// intl settings with their own timezone yield an instant in that zone
	parsed = parsed.In(loc)

	modified, err := dateutil.AddUnits(parsed, dir.Sign()*n, u)
	if err != nil {
		return nil, s.fail(InvalidDateModificationUnit, err)
	}

	text, err := FormatDateTime(modified, format)
	if err != nil {
		return nil, s.fail(InvalidFormatSettings, err)
	}

	result := &Modification{
		Original: parsed,
		Value:    modified,
		Text:     text,
	}
	s.lastModification = result
	s.lastError = ""

	s.logger.Debug("Date modified",
		zap.String("direction", string(dir)),
		zap.Int("quantity", n),
		zap.String("unit", string(u)),
		zap.Time("from", parsed),
		zap.Time("to", modified))

	return result, nil
}

// FormatDateTime renders t with the intl settings when present, else with the native pattern
func FormatDateTime(t time.Time, format Format) (string, error) {
	if format.Intl != nil {
		f, err := intl.NewFormatter(*format.Intl)
		if err != nil {
			return "", err
		}
		return f.Format(t), nil
	}
	return dateformat.Format(t, format.Native), nil
}

// IsValidDateTimeString reports whether text parses with the given format.
// Text is parsed in timezone (UTC when empty); intl settings with their own
// timezone use it instead. Any parse failure, including out-of-range components
// such as February 30th, makes the text invalid.
func IsValidDateTimeString(text, native, timezone string, settings *intl.Settings) (time.Time, bool) {
	var loc *time.Location
	if timezone != "" {
		l, err := dateutil.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, false
		}
		loc = l
	}
	t, err := parseDateTime(text, native, loc, settings)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseDateTime(text, native string, loc *time.Location, settings *intl.Settings) (time.Time, error) {
	if settings != nil {
		f, err := intl.NewFormatter(*settings)
		if err != nil {
			return time.Time{}, err
		}
		return f.ParseInLocation(text, loc)
	}
	return dateformat.ParseInLocation(native, text, loc)
}
