package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/festivos-api/internal/calendar"
)

type rootOptions struct {
	offset string
	json   bool
	loc    *time.Location
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	c := &cobra.Command{
		Use:           "festivos",
		Short:         "Colombian public holidays",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loc, err := calendar.ParseOffset(opts.offset)
			if err != nil {
				return err
			}
			opts.loc = loc
			return nil
		},
	}

	c.PersistentFlags().StringVar(&opts.offset, "offset", calendar.DefaultOffset, "fixed UTC offset, e.g. -05:00")
	c.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")

	c.AddCommand(
		newYearCmd(opts),
		newDateCmd(opts),
		newEasterCmd(opts),
		newBusinessCmd(opts),
	)
	return c
}

func newYearCmd(opts *rootOptions) *cobra.Command {
	var chronological bool

	c := &cobra.Command{
		Use:   "year [YEAR]",
		Short: "List the 18 holidays of a year (default: current year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := calendar.Today(opts.loc).Year()
			if len(args) == 1 {
				y, err := calendar.ValidateYear(args[0])
				if err != nil {
					return err
				}
				year = y
			}

			resolved, err := calendar.ResolveYear(year)
			if err != nil {
				return err
			}
			if chronological {
				resolved = calendar.Chronological(resolved)
			}
			return printYear(cmd.OutOrStdout(), opts, resolved)
		},
	}

	c.Flags().BoolVar(&chronological, "chronological", false, "sort by date instead of rule kind")
	return c
}

func printYear(w io.Writer, opts *rootOptions, resolved []calendar.Resolved) error {
	if opts.json {
		return writeJSON(w, calendar.ToHolidays(resolved, opts.offset))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range resolved {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", calendar.FormatDate(r.Date), calendar.DayName(r.Date), r.Kind, r.Name)
	}
	return tw.Flush()
}

func newDateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date [YYYY-MM-DD]",
		Short: "Print the holiday name for a date (default: today), or nothing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := calendar.Today(opts.loc)
			if len(args) == 1 {
				d, err := calendar.ParseDateString(args[0])
				if err != nil {
					return err
				}
				date = d
			}

			name, err := calendar.GetHoliday(date, opts.offset)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(w, map[string]any{
					"date":    calendar.ISOString(date, opts.offset),
					"holiday": name != "",
					"name":    name,
				})
			}
			if name != "" {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}
}

func newEasterCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "easter YEAR",
		Short: "Print Easter Sunday and the holidays derived from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := calendar.ValidateYear(args[0])
			if err != nil {
				return err
			}
			easter := calendar.CalculateEaster(year)

			w := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(w, map[string]any{
					"year":   year,
					"easter": calendar.ISOString(easter, opts.offset),
				})
			}

			fmt.Fprintf(w, "Domingo de Pascua: %s\n", calendar.LongDate(easter))
			for _, def := range calendar.Definitions() {
				if rule, ok := def.Rule.(calendar.EasterOffset); ok {
					fmt.Fprintf(w, "  %+4d  %s  %s\n", rule.Days, calendar.FormatDate(rule.Date(year)), def.Name)
				}
			}
			return nil
		},
	}
}

func newBusinessCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "business",
		Short: "Business day (día hábil) helpers",
	}

	c.AddCommand(&cobra.Command{
		Use:   "next DATE",
		Short: "Print the first business day after DATE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := calendar.ParseDateString(args[0])
			if err != nil {
				return err
			}
			next, err := calendar.NextBusinessDay(date)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"next": calendar.FormatDate(next)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.FormatDate(next))
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "check DATE",
		Short: "Report whether DATE is a business day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := calendar.ParseDateString(args[0])
			if err != nil {
				return err
			}
			ok, err := calendar.IsBusinessDay(date)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]bool{"business_day": ok})
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	})

	return c
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
