// Package cmd - calendar commands
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"souq-core/core/calendar"
	"souq-core/core/types"
	"souq-core/internal/config"
	"souq-core/internal/errors"
)

var (
	calSystem string
	calDate   string
	calYear   int
	calMonth  int
	calLocale string
)

// calendarCmd groups the date tooling
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Hijri/Gregorian date conversion and lookup",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// calendarConvertCmd converts a date between calendar systems
var calendarConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a date between Hijri and Gregorian",
	Long: `Convert a YYYY-MM-DD date expressed in the given calendar system,
printing the canonical ISO (Gregorian) form and both triples.

Examples:
  souq calendar convert --system hijri --date 1446-01-01
  souq calendar convert --system gregorian --date 2024-07-08`,
	RunE: runCalendarConvert,
}

// calendarDaysCmd prints the day count of a month
var calendarDaysCmd = &cobra.Command{
	Use:   "days",
	Short: "Show the number of days in a month",
	RunE:  runCalendarDays,
}

// calendarTodayCmd prints today's default picker selection
var calendarTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's date in a calendar system",
	RunE:  runCalendarToday,
}

func init() {
	calendarCmd.AddCommand(calendarConvertCmd)
	calendarCmd.AddCommand(calendarDaysCmd)
	calendarCmd.AddCommand(calendarTodayCmd)

	for _, c := range []*cobra.Command{calendarConvertCmd, calendarDaysCmd, calendarTodayCmd} {
		c.Flags().StringVarP(&calSystem, "system", "s", "gregorian", "calendar system (gregorian, hijri)")
		c.Flags().StringVar(&calLocale, "locale", "", "display language (en, ar)")
	}
	calendarConvertCmd.Flags().StringVarP(&calDate, "date", "d", "", "date as YYYY-MM-DD in the given system")
	_ = calendarConvertCmd.MarkFlagRequired("date")

	calendarDaysCmd.Flags().IntVarP(&calYear, "year", "y", 0, "year")
	calendarDaysCmd.Flags().IntVarP(&calMonth, "month", "m", 0, "month (1-12)")
	_ = calendarDaysCmd.MarkFlagRequired("year")
	_ = calendarDaysCmd.MarkFlagRequired("month")
}

func runCalendarConvert(cmd *cobra.Command, args []string) error {
	system, err := calendar.ParseSystem(calSystem)
	if err != nil {
		return err
	}
	year, month, day, err := parseDateFlag(calDate)
	if err != nil {
		return err
	}

	gy, gm, gd, err := calendar.ToGregorian(system, year, month, day)
	if err != nil {
		return err
	}
	hy, hm, hd, err := calendar.FromGregorian(calendar.Hijri, gy, gm, gd)
	if err != nil {
		return err
	}
	iso, err := calendar.ToISODate(calendar.Gregorian, gy, gm, gd)
	if err != nil {
		return err
	}

	locale := cliLocale()
	hName, _ := calendar.MonthName(calendar.Hijri, hm, locale)
	gName, _ := calendar.MonthName(calendar.Gregorian, gm, locale)

	fmt.Printf("ISO        %s\n", iso)
	fmt.Printf("Gregorian  %04d-%02d-%02d (%s)\n", gy, gm, gd, gName)
	fmt.Printf("Hijri      %04d-%02d-%02d (%s)\n", hy, hm, hd, hName)
	return nil
}

func runCalendarDays(cmd *cobra.Command, args []string) error {
	system, err := calendar.ParseSystem(calSystem)
	if err != nil {
		return err
	}
	days, err := calendar.DaysInMonth(system, calYear, calMonth)
	if err != nil {
		return err
	}
	name, _ := calendar.MonthName(system, calMonth, cliLocale())
	fmt.Printf("%s %d has %d days\n", name, calYear, days)
	return nil
}

func runCalendarToday(cmd *cobra.Command, args []string) error {
	system, err := calendar.ParseSystem(calSystem)
	if err != nil {
		return err
	}
	sel := calendar.DefaultSelection(system)
	iso, err := sel.ISO()
	if err != nil {
		return err
	}
	locale := cliLocale()
	name, _ := calendar.MonthName(system, sel.Month, locale)
	fmt.Printf("%04d-%02d-%02d (%s, %s)  ISO %s\n",
		sel.Year, sel.Month, sel.Day, name, calendar.SystemLabel(system, locale), iso)
	return nil
}

func cliLocale() types.Locale {
	return types.ParseLocale(orDefault(calLocale, config.Get().Output.DefaultLocale))
}

// parseDateFlag splits a YYYY-MM-DD flag into its triple
func parseDateFlag(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, errors.InvalidInputf("date must be YYYY-MM-DD, got %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		nums[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, errors.InvalidInputf("date must be numeric YYYY-MM-DD, got %q", s)
		}
	}
	return nums[0], nums[1], nums[2], nil
}
