package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rabitt1ove/jalali"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) toJalaliCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-jalali YEAR MONTH DAY",
		Short: "Convert a Gregorian date to Jalali",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArgs(args)
			if err != nil {
				return err
			}
			jy, jm, jd, err := jalali.ToJalali(n[0], n[1], n[2])
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"gregorian": fmt.Sprintf("%d-%02d-%02d", n[0], n[1], n[2]),
				"jalali":    fmt.Sprintf("%d/%02d/%02d", jy, jm, jd),
			}).Debug("converted")

			d, err := jalali.FromJalali(jy, jm, jd, 0, 0, 0, 0)
			if err != nil {
				return err
			}
			return a.print(cmd, d.WithLocale(a.loc).Format(a.layout("YYYY/MM/DD")))
		},
	}
}

func (a *app) toGregorianCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-gregorian YEAR MONTH DAY",
		Short: "Convert a Jalali date to Gregorian",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArgs(args)
			if err != nil {
				return err
			}
			gy, gm, gd, err := jalali.ToGregorian(n[0], n[1], n[2])
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"jalali":    fmt.Sprintf("%d/%02d/%02d", n[0], n[1], n[2]),
				"gregorian": fmt.Sprintf("%d-%02d-%02d", gy, gm, gd),
			}).Debug("converted")

			d, err := jalali.FromJalali(n[0], n[1], n[2], 0, 0, 0, 0)
			if err != nil {
				return err
			}
			return a.print(cmd, d.WithLocale(a.loc).FormatGregorian(a.layout("YYYY-MM-DD")))
		},
	}
}

func (a *app) parseCommand() *cobra.Command {
	var gregorian bool
	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse free-form date text and print it as a Jalali date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := jalali.Parse
			if gregorian {
				parse = jalali.ParseGregorian
			}
			d, err := parse(args[0])
			if err != nil {
				return err
			}
			a.log.WithField("text", args[0]).WithField("gregorian", gregorian).Debug("parsed")
			return a.print(cmd, d.WithLocale(a.loc).Format(a.layout(jalali.DefaultLayout)))
		},
	}
	cmd.Flags().BoolVar(&gregorian, "gregorian", false, "read TEXT as a Gregorian date")
	return cmd
}

func (a *app) nowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := jalali.Now()
			if err := d.Err(); err != nil {
				return err
			}
			return a.print(cmd, d.WithLocale(a.loc).Format(a.layout(jalali.DefaultLayout)))
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT UNIT N",
		Short: "Move a Jalali date by N units",
		Long: "Move a Jalali date by N units (year, month, week, day, hour, minute, second, millisecond).\n" +
			"Negative amounts must follow --, e.g. jdate add 1403/01/01 day -- -10.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := jalali.Parse(args[0])
			if err != nil {
				return err
			}
			u, err := jalali.ParseUnit(args[1])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("amount %q: %w", args[2], err)
			}

			moved := d.Add(u, n)
			if err := moved.Err(); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"unit":   u.String(),
				"amount": n,
			}).Debug("moved")
			return a.print(cmd, moved.WithLocale(a.loc).Format(a.layout(jalali.DefaultLayout)))
		},
	}
}

func (a *app) yearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "year YEAR",
		Short: "Describe a Jalali year: leap flag, Nowruz and month lengths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArgs(args)
			if err != nil {
				return err
			}
			year := n[0]
			gy, gm, gd, err := jalali.NewYear(year)
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "year:   %d\n", year)
			fmt.Fprintf(&b, "leap:   %t\n", jalali.IsLeapYear(year))
			fmt.Fprintf(&b, "days:   %d\n", jalali.YearLength(year))
			fmt.Fprintf(&b, "nowruz: %d-%02d-%02d\n", gy, gm, gd)
			for m := jalali.Farvardin; m <= jalali.Esfand; m++ {
				fmt.Fprintf(&b, "%-12s %d\n", a.loc.Months[m-1], jalali.MonthLength(year, int(m)))
			}
			return a.print(cmd, a.loc.Localize(strings.TrimSuffix(b.String(), "\n")))
		},
	}
}

func (a *app) weekCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "week TEXT",
		Short: "Print the week number and week span of a Jalali date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := jalali.Parse(args[0])
			if err != nil {
				return err
			}
			d.WithLocale(a.loc)
			first, last := d.StartOf(jalali.Weeks), d.EndOf(jalali.Weeks)
			for _, e := range []error{first.Err(), last.Err()} {
				if e != nil {
					return e
				}
			}

			layout := a.layout("YYYY/MM/DD")
			line := fmt.Sprintf("week %s: %s - %s",
				a.loc.Localize(strconv.Itoa(d.WeekNumber())), first.Format(layout), last.Format(layout))
			return a.print(cmd, line)
		},
	}
}

// intArgs converts every positional argument to an int.
func intArgs(args []string) ([]int, error) {
	n := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not an integer: %w", s, err)
		}
		n[i] = v
	}
	return n, nil
}
