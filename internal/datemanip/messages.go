package datemanip

import "fmt"

// Messages is the table of user-facing error texts.
// It is replaced as a whole (WithMessages); there is no per-entry override.
type Messages struct {
	InvalidDateRange                string `mapstructure:"invalid_date_range"`
	InvalidTimezone                 string `mapstructure:"invalid_timezone"`
	InvalidDateModification         string `mapstructure:"invalid_date_modification"`
	InvalidDateModificationQuantity string `mapstructure:"invalid_date_modification_quantity"`
	InvalidDateModificationUnit     string `mapstructure:"invalid_date_modification_unit"`
	InvalidDateToModify             string `mapstructure:"invalid_date_to_modify"`
	InvalidFormatSettings           string `mapstructure:"invalid_format_settings"`
}

// DefaultMessages returns the built-in message table
func DefaultMessages() Messages {
	return Messages{
		InvalidDateRange:                "Invalid date range",
		InvalidTimezone:                 "Invalid timezone",
		InvalidDateModification:         "Invalid date modification",
		InvalidDateModificationQuantity: "Invalid date modification quantity",
		InvalidDateModificationUnit:     "Invalid date modification unit",
		InvalidDateToModify:             "Invalid date to modify",
		InvalidFormatSettings:           "Invalid format settings",
	}
}

func (m Messages) entries() map[ErrorKind]string {
	return map[ErrorKind]string{
		InvalidDateRange:                m.InvalidDateRange,
		InvalidTimezone:                 m.InvalidTimezone,
		InvalidDateModification:         m.InvalidDateModification,
		InvalidDateModificationQuantity: m.InvalidDateModificationQuantity,
		InvalidDateModificationUnit:     m.InvalidDateModificationUnit,
		InvalidDateToModify:             m.InvalidDateToModify,
		InvalidFormatSettings:           m.InvalidFormatSettings,
	}
}

// Text returns the message for kind
func (m Messages) Text(kind ErrorKind) string {
	return m.entries()[kind]
}

// IsZero reports whether no message is set
func (m Messages) IsZero() bool {
	return m == Messages{}
}

// Validate checks that every message is set
func (m Messages) Validate() error {
	for kind, text := range m.entries() {
		if text == "" {
			return fmt.Errorf("message for %s is empty", kind)
		}
	}
	return nil
}
