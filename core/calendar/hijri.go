// Package calendar - Hijri arithmetic
// Implements the civil tabular (30-year cycle) Hijri calendar. One fixed
// epoch and leap rule back every conversion and day-count in this
// package, so Hijri -> Gregorian -> Hijri always round-trips.
package calendar

// hijriEpochJDN is the Julian Day Number of 1 Muharram 1 AH in the
// civil tabular reckoning.
const hijriEpochJDN = 1948440

// hijriLeapYear reports whether a Hijri year has 355 days. The tabular
// cycle marks 11 of every 30 years as leap: those with
// (11y + 14) mod 30 < 11, i.e. years 2, 5, 7, 10, 13, 16, 18, 21, 24,
// 26 and 29 of the cycle.
func hijriLeapYear(year int) bool {
	return (11*year+14)%30 < 11
}

// hijriMonthDays returns the tabular length of a Hijri month: odd
// months have 30 days, even months 29, and Dhu al-Hijjah (month 12)
// gains a day in leap years.
func hijriMonthDays(year, month int) int {
	if month%2 == 1 {
		return 30
	}
	if month == 12 && hijriLeapYear(year) {
		return 30
	}
	return 29
}

// hijriToJDN converts a Hijri date to its Julian Day Number.
// (59(m-1)+1)/2 is the integer form of ceil(29.5 (m-1)), the days in
// the months preceding m.
func hijriToJDN(year, month, day int) int {
	return day +
		(59*(month-1)+1)/2 +
		354*(year-1) +
		(3+11*year)/30 +
		hijriEpochJDN - 1
}

// hijriYearStartJDN is the JDN of 1 Muharram of a Hijri year
func hijriYearStartJDN(year int) int {
	return hijriToJDN(year, 1, 1)
}

// jdnToHijri converts a Julian Day Number to a Hijri date. The year is
// estimated arithmetically and corrected against the exact year-start
// table, then the month is found by walking the fixed month lengths.
func jdnToHijri(jdn int) (year, month, day int) {
	year = (30*(jdn-hijriEpochJDN) + 10646) / 10631
	if year < 1 {
		year = 1
	}
	for jdn < hijriYearStartJDN(year) {
		year--
	}
	for jdn >= hijriYearStartJDN(year+1) {
		year++
	}

	remaining := jdn - hijriYearStartJDN(year)
	month = 1
	for remaining >= hijriMonthDays(year, month) {
		remaining -= hijriMonthDays(year, month)
		month++
	}
	day = remaining + 1
	return year, month, day
}

// gregorianToJDN converts a proleptic Gregorian date to its Julian Day
// Number (Fliegel-Van Flandern).
func gregorianToJDN(year, month, day int) int {
	a := (month - 14) / 12
	return (1461*(year+4800+a))/4 +
		(367*(month-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075
}

// jdnToGregorian converts a Julian Day Number to a proleptic Gregorian
// date (Fliegel-Van Flandern inverse).
func jdnToGregorian(jdn int) (year, month, day int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= (1461*i)/4 - 31
	j := (80 * l) / 2447
	day = l - (2447*j)/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return year, month, day
}

// gregorianMonthDays returns the civil Gregorian month length
func gregorianMonthDays(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if gregorianLeapYear(year) {
			return 29
		}
		return 28
	}
}

// gregorianLeapYear applies the standard proleptic Gregorian rule
func gregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
