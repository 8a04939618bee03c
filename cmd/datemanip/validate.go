package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/datemanip/internal/datemanip"
	"github.com/username/datemanip/pkg/dateutil"
)

func validateCmd() *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:   "validate <date>",
		Short: "Check that a date string parses with the given format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timezone, format := flags.resolve(cmd)

			t, ok := datemanip.IsValidDateTimeString(args[0], format.Native, timezone, format.Intl)
			logger.Debug("Validated date string",
				zap.String("text", args[0]),
				zap.Bool("valid", ok))
			if !ok {
				return fmt.Errorf("%s %q", color.New(color.FgRed).Sprint("invalid date:"), args[0])
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("valid:"), dateutil.FormatISO8601(t))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
