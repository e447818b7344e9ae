package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/czech-holidays/internal/calendar"
	"github.com/username/czech-holidays/internal/export"
	"github.com/username/czech-holidays/pkg/dateutil"
)

func holidaysCmd() *cobra.Command {
	var mode string
	var shoppingRestricted bool

	cmd := &cobra.Command{
		Use:   "holidays [year]",
		Short: "List public holidays of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}
			outputMode, err := calendar.ParseOutputMode(mode)
			if err != nil {
				return err
			}

			res, err := newResolver().Holidays(calendar.Query{
				Year:               year,
				Mode:               outputMode,
				ShoppingRestricted: shoppingRestricted,
			})
			if err != nil {
				return err
			}

			return render(func(w io.Writer, exp *export.Exporter) error {
				return exp.WriteHolidays(w, res)
			})
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "full", "Projection: full, dates, cz or en")
	cmd.Flags().BoolVar(&shoppingRestricted, "shopping-restricted", false, "Only holidays with restricted retail trade (2016+)")

	return cmd
}

func workdaysCmd() *cobra.Command {
	var opts calendar.WorkdayOptions

	cmd := &cobra.Command{
		Use:   "workdays [year]",
		Short: "List working days of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}

			days, err := newResolver().Workdays(year, opts)
			if err != nil {
				return err
			}

			return render(func(w io.Writer, exp *export.Exporter) error {
				return exp.WriteDates(w, year, "workdays", days, nil)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.IncludeSaturday, "saturday", false, "Count Saturdays as working days")
	cmd.Flags().BoolVar(&opts.IncludeSunday, "sunday", false, "Count Sundays as working days")
	cmd.Flags().BoolVar(&opts.IncludeHolidays, "include-holidays", false, "Count holidays as working days")

	return cmd
}

func shoppingDaysCmd() *cobra.Command {
	opts := calendar.DefaultShoppingOptions()

	cmd := &cobra.Command{
		Use:   "shopping-days [year]",
		Short: "List days shops may open",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}

			list, err := newResolver().ShoppingDays(year, opts)
			if err != nil {
				return err
			}

			return render(func(w io.Writer, exp *export.Exporter) error {
				return exp.WriteDates(w, year, "shopping-days", list.Dates, list.Warnings)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.IncludeSaturday, "saturday", opts.IncludeSaturday, "Shops open on Saturdays")
	cmd.Flags().BoolVar(&opts.IncludeSunday, "sunday", opts.IncludeSunday, "Shops open on Sundays")
	cmd.Flags().BoolVar(&opts.ExcludeRestricted, "exclude-restricted", opts.ExcludeRestricted, "Drop holidays with restricted retail trade (2016+)")

	return cmd
}

func weekendHolidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekend-holidays [year]",
		Short: "List holidays falling on a Saturday or Sunday",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}

			dates, err := newResolver().HolidaysDuringWeekend(year)
			if err != nil {
				return err
			}

			return render(func(w io.Writer, exp *export.Exporter) error {
				return exp.WriteDates(w, year, "weekend-holidays", dates, nil)
			})
		},
	}
}

func weekendWorkdaysCmd() *cobra.Command {
	var includeHolidays bool

	cmd := &cobra.Command{
		Use:   "weekend-workdays [year]",
		Short: "List Saturdays and Sundays that are not holidays",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}

			dates, err := newResolver().WorkdaysDuringWeekend(year, includeHolidays)
			if err != nil {
				return err
			}

			return render(func(w io.Writer, exp *export.Exporter) error {
				return exp.WriteDates(w, year, "weekend-workdays", dates, nil)
			})
		},
	}

	cmd.Flags().BoolVar(&includeHolidays, "include-holidays", false, "Keep weekend days that are holidays")

	return cmd
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month [year] [month]",
		Short: "Classify every day of a month",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}
			month := time.Now().Month()
			if len(args) == 2 {
				month, err = calendar.ParseMonth(args[1])
				if err != nil {
					return err
				}
			}

			monthInfo, err := newResolver().GetMonthInfo(year, month)
			if err != nil {
				return err
			}

			return render(func(w io.Writer, exp *export.Exporter) error {
				return exp.WriteMonth(w, monthInfo)
			})
		},
	}
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show whether a date is a working day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateutil.StartOfDay(time.Now())
			if len(args) == 1 {
				var err error
				date, err = dateutil.ParseDate(args[0])
				if err != nil {
					return fmt.Errorf("%w: %v", calendar.ErrTypeMismatch, err)
				}
			}

			info, err := newResolver().GetDayInfo(date)
			if err != nil {
				return err
			}

			logger.Debug("Day classified",
				zap.String("date", dateutil.FormatDate(date)),
				zap.String("type", info.Type.String()))

			status := "non-working day"
			if info.IsWorkday {
				status = fmt.Sprintf("working day (%dh)", info.WorkingHours)
			}
			fmt.Printf("%s %s: %s, %s\n",
				dateutil.FormatDate(info.Date), info.Date.Weekday(), info.Type, status)

			lang, err := language()
			if err != nil {
				return err
			}
			for _, h := range info.Holidays {
				fmt.Printf("  • %s (%s)\n", h.Name(lang), h.Category)
			}
			if info.ShoppingRestricted {
				fmt.Println("  Shops are closed")
			}
			return nil
		},
	}
}

func easterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "easter [year]",
		Short: "Show Easter Sunday and the holidays derived from it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}

			easter := calendar.Easter(year)
			dates := []time.Time{
				easter.AddDate(0, 0, -2),
				easter,
				easter.AddDate(0, 0, 1),
			}

			return render(func(w io.Writer, exp *export.Exporter) error {
				return exp.WriteDates(w, year, "easter", dates, nil)
			})
		},
	}
}
