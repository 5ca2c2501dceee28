// Package calendar implements the dual Hijri/Gregorian date engine
// used by onboarding forms. All operations are pure functions over a
// (system, year, month, day) selection; both systems dispatch through
// the same conversion table so results never drift between calls.
package calendar

import (
	"fmt"
	"time"

	"souq-core/internal/errors"
)

// System is the calendar system of a selection
type System string

const (
	// Gregorian is the standard civil calendar
	Gregorian System = "gregorian"

	// Hijri is the Islamic lunar calendar in its civil tabular form
	Hijri System = "hijri"
)

// Year bounds accepted by the engine. Picker widgets narrow these via
// configuration; the engine only rejects what the arithmetic cannot
// represent.
const (
	minYear = 1
	maxYear = 9999
)

// ParseSystem normalizes a system string
func ParseSystem(s string) (System, error) {
	switch System(s) {
	case Gregorian:
		return Gregorian, nil
	case Hijri:
		return Hijri, nil
	default:
		return "", errors.InvalidInputf("unknown calendar system: %q", s)
	}
}

// Selection is a date picker value: a calendar system with a
// year/month/day triple. The owning form holds it and calls the
// package functions on each field change; nothing is persisted.
type Selection struct {
	System System `json:"system"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
}

// now is swapped in tests
var now = time.Now

// DaysInMonth returns the day count of a month in the given system
func DaysInMonth(system System, year, month int) (int, error) {
	if err := checkYearMonth(system, year, month); err != nil {
		return 0, err
	}
	if system == Hijri {
		return hijriMonthDays(year, month), nil
	}
	return gregorianMonthDays(year, month), nil
}

// ToISODate renders a selection as a canonical Gregorian ISO-8601
// string (YYYY-MM-DD). Hijri selections are validated against the
// tabular month length and converted through the shared epoch first.
// The result is always a complete date or an error, never a partial
// string.
func ToISODate(system System, year, month, day int) (string, error) {
	gy, gm, gd, err := ToGregorian(system, year, month, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd), nil
}

// ToGregorian converts a selection to its Gregorian triple. Gregorian
// input is validated and passed through unchanged.
func ToGregorian(system System, year, month, day int) (gy, gm, gd int, err error) {
	maxDay, err := DaysInMonth(system, year, month)
	if err != nil {
		return 0, 0, 0, err
	}
	if day < 1 || day > maxDay {
		return 0, 0, 0, errors.InvalidInputf(
			"day %d out of range 1-%d for %s %04d-%02d", day, maxDay, system, year, month)
	}
	if system == Hijri {
		gy, gm, gd = jdnToGregorian(hijriToJDN(year, month, day))
		return gy, gm, gd, nil
	}
	return year, month, day, nil
}

// FromGregorian expresses a Gregorian triple in the given system
func FromGregorian(system System, gy, gm, gd int) (year, month, day int, err error) {
	if _, _, _, err = ToGregorian(Gregorian, gy, gm, gd); err != nil {
		return 0, 0, 0, err
	}
	if system == Hijri {
		year, month, day = jdnToHijri(gregorianToJDN(gy, gm, gd))
		return year, month, day, nil
	}
	return gy, gm, gd, nil
}

// DefaultSelection returns today's date expressed in the requested
// system. Switching a picker between systems resets to this value
// rather than carrying numbers across calendars.
func DefaultSelection(system System) Selection {
	t := now()
	sel := Selection{
		System: system,
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
	}
	if system == Hijri {
		sel.Year, sel.Month, sel.Day = jdnToHijri(gregorianToJDN(sel.Year, sel.Month, sel.Day))
	}
	return sel
}

// ClampDay reduces an overflowing day to the month's maximum after a
// month or year change. This is a deliberate picker convenience;
// selections that were valid stay untouched, so the operation is
// idempotent.
func ClampDay(sel Selection) Selection {
	maxDay, err := DaysInMonth(sel.System, sel.Year, sel.Month)
	if err != nil {
		return sel
	}
	if sel.Day > maxDay {
		sel.Day = maxDay
	}
	if sel.Day < 1 {
		sel.Day = 1
	}
	return sel
}

// ISO renders the selection through ToISODate
func (s Selection) ISO() (string, error) {
	return ToISODate(s.System, s.Year, s.Month, s.Day)
}

func checkYearMonth(system System, year, month int) error {
	if system != Gregorian && system != Hijri {
		return errors.InvalidInputf("unknown calendar system: %q", string(system))
	}
	if year < minYear || year > maxYear {
		return errors.InvalidInputf("year %d out of range %d-%d", year, minYear, maxYear)
	}
	if month < 1 || month > 12 {
		return errors.InvalidInputf("month %d out of range 1-12", month)
	}
	return nil
}
