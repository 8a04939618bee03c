package datemanip

import "errors"

// ErrorKind identifies why an operation was rejected.
// It implements error so callers can match with errors.Is(err, InvalidTimezone).
type ErrorKind string

const (
	InvalidDateRange                ErrorKind = "invalid_date_range"
	InvalidTimezone                 ErrorKind = "invalid_timezone"
	InvalidDateModification         ErrorKind = "invalid_date_modification"
	InvalidDateModificationQuantity ErrorKind = "invalid_date_modification_quantity"
	InvalidDateModificationUnit     ErrorKind = "invalid_date_modification_unit"
	InvalidDateToModify             ErrorKind = "invalid_date_to_modify"
	InvalidFormatSettings           ErrorKind = "invalid_format_settings"
)

func (k ErrorKind) Error() string {
	return string(k)
}

// Error is returned by every failing service operation.
// Message is the user-facing text taken from the configured Messages table.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the error's kind
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// KindOf returns the kind of a service error, or "" for anything else
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
