package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/username/datemanip/pkg/dateutil"
)

func modifyCmd() *cobra.Command {
	var flags formatFlags
	var verbose bool

	cmd := &cobra.Command{
		Use:   "modify <increase|decrease> <quantity> <unit> <date>",
		Short: "Shift a date by a number of years, months, weeks, days, hours, minutes or seconds",
		Example: `  datemanip modify increase 3 month "1/1/2017 00:00" -z Europe/Athens -f "j/n/Y H:i"
  datemanip modify decrease 2 weeks "2 janvier 2017" --locale fr_FR --pattern "d MMMM yyyy"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			timezone, format := flags.resolve(cmd)

			// quantity stays a string; the service decides whether it is a positive integer
			m, err := newService().ModifyDateString(args[0], args[1], args[2], args[3], timezone, format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				faint := color.New(color.Faint).SprintFunc()
				fmt.Fprintf(out, "%s %s\n", faint("from:"), dateutil.FormatISO8601(m.Original))
				fmt.Fprintf(out, "%s %s\n", faint("to:  "), dateutil.FormatISO8601(m.Value))
			}
			fmt.Fprintln(out, color.New(color.FgGreen).Sprint(m.Text))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print both instants in ISO 8601")
	return cmd
}
