package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/username/datemanip/internal/datemanip"
)

func rangeCmd() *cobra.Command {
	var flags formatFlags

	kinds := make([]string, len(datemanip.RangeKinds))
	for i, k := range datemanip.RangeKinds {
		kinds[i] = string(k)
	}

	cmd := &cobra.Command{
		Use:       "range <kind>",
		Short:     "Print the start and end of the current year, month, week or day",
		Long:      "Print the start and end of a calendar-aligned range containing now.\n\nKinds: " + strings.Join(kinds, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			timezone, format := flags.resolve(cmd)

			r, err := newService().CreateDateRange(args[0], timezone, format)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			faint := color.New(color.Faint).SprintFunc()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", bold(r.Kind), faint("("+timezone+")"))
			fmt.Fprintf(out, "  start: %s\n", r.StartText)
			fmt.Fprintf(out, "  end:   %s\n", r.EndText)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
