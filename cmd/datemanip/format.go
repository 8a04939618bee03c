package main

import (
	"github.com/spf13/cobra"

	"github.com/username/datemanip/internal/datemanip"
)

// formatFlags are the output flags shared by range, modify and validate.
// Unset flags fall back to the configuration.
type formatFlags struct {
	timezone  string
	native    string
	intl      bool
	locale    string
	dateStyle string
	timeStyle string
	calendar  string
	pattern   string
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.timezone, "timezone", "z", "", "IANA timezone (default from config)")
	cmd.Flags().StringVarP(&f.native, "format", "f", "", "date() format characters, e.g. \"j/n/Y H:i\"")
	cmd.Flags().BoolVar(&f.intl, "intl", false, "Use locale-aware formatting")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale for --intl, e.g. el_GR")
	cmd.Flags().StringVar(&f.dateStyle, "date-style", "", "none, full, long, medium or short")
	cmd.Flags().StringVar(&f.timeStyle, "time-style", "", "none, full, long, medium or short")
	cmd.Flags().StringVar(&f.calendar, "calendar", "", "Calendar for --intl (gregorian)")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "ICU pattern for --intl, e.g. \"d MMMM yyyy\"")
}

// resolve merges the flags over the configuration
func (f *formatFlags) resolve(cmd *cobra.Command) (string, datemanip.Format) {
	timezone := cfg.Timezone
	if f.timezone != "" {
		timezone = f.timezone
	}

	useIntl := cfg.Intl.Enabled
	if cmd.Flags().Changed("intl") {
		useIntl = f.intl
	}
	// any intl-only flag implies --intl unless it was explicitly turned off
	for _, name := range []string{"locale", "date-style", "time-style", "calendar", "pattern"} {
		if cmd.Flags().Changed(name) && !cmd.Flags().Changed("intl") {
			useIntl = true
		}
	}

	if !useIntl {
		native := cfg.NativeFormat
		if f.native != "" {
			native = f.native
		}
		return timezone, datemanip.NativeFormat(native)
	}

	settings := cfg.Intl.Settings
	override(&settings.Locale, f.locale)
	override(&settings.DateStyle, f.dateStyle)
	override(&settings.TimeStyle, f.timeStyle)
	override(&settings.Calendar, f.calendar)
	if f.dateStyle != "" || f.timeStyle != "" {
		// explicit styles win over a configured pattern
		settings.Pattern = f.pattern
	} else {
		override(&settings.Pattern, f.pattern)
	}
	if settings.Timezone == "" || f.timezone != "" {
		settings.Timezone = timezone
	}
	return timezone, datemanip.IntlFormat(settings)
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
