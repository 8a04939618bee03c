package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/username/datemanip/internal/intl"
)

func localesCmd() *cobra.Command {
	var match string

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the locales available for --intl formatting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if match != "" {
				locale, err := intl.ResolveLocale(match)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, locale)
				return nil
			}

			faint := color.New(color.Faint).SprintFunc()
			for _, name := range intl.SupportedLocales() {
				if name == string(intl.DefaultLocale) {
					fmt.Fprintf(out, "%s %s\n", name, faint("(default)"))
					continue
				}
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "Print the supported locale a tag resolves to, e.g. el or fr-CA")
	return cmd
}
