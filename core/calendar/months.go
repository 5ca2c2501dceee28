// Package calendar - Localized month names
package calendar

import (
	"souq-core/core/types"
	"souq-core/internal/errors"
)

var hijriMonthsAR = [12]string{
	"محرم",
	"صفر",
	"ربيع الأول",
	"ربيع الثاني",
	"جمادى الأولى",
	"جمادى الآخرة",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذو القعدة",
	"ذو الحجة",
}

var hijriMonthsEN = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-Awwal",
	"Rabi al-Thani",
	"Jumada al-Ula",
	"Jumada al-Akhirah",
	"Rajab",
	"Shaban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qadah",
	"Dhu al-Hijjah",
}

var gregorianMonthsEN = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var gregorianMonthsAR = [12]string{
	"يناير",
	"فبراير",
	"مارس",
	"أبريل",
	"مايو",
	"يونيو",
	"يوليو",
	"أغسطس",
	"سبتمبر",
	"أكتوبر",
	"نوفمبر",
	"ديسمبر",
}

// MonthName returns the display name of a month in the given system
// and locale
func MonthName(system System, month int, locale types.Locale) (string, error) {
	if month < 1 || month > 12 {
		return "", errors.InvalidInputf("month %d out of range 1-12", month)
	}
	switch {
	case system == Hijri && locale == types.LocaleAR:
		return hijriMonthsAR[month-1], nil
	case system == Hijri:
		return hijriMonthsEN[month-1], nil
	case locale == types.LocaleAR:
		return gregorianMonthsAR[month-1], nil
	default:
		return gregorianMonthsEN[month-1], nil
	}
}

// MonthNames returns all twelve month names for a system and locale
func MonthNames(system System, locale types.Locale) []string {
	names := make([]string, 12)
	for m := 1; m <= 12; m++ {
		names[m-1], _ = MonthName(system, m, locale)
	}
	return names
}

// SystemLabel returns the localized label of a calendar system
// ("Hijri"/"هجري", "Gregorian"/"ميلادي")
func SystemLabel(system System, locale types.Locale) string {
	if system == Hijri {
		if locale == types.LocaleAR {
			return "هجري"
		}
		return "Hijri"
	}
	if locale == types.LocaleAR {
		return "ميلادي"
	}
	return "Gregorian"
}
