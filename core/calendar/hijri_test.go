package calendar

import (
	"testing"
)

// TestHijriEpoch pins the civil tabular epoch: 1 Muharram 1 AH is
// JDN 1948440, the proleptic Gregorian 622-07-19.
func TestHijriEpoch(t *testing.T) {
	if got := hijriToJDN(1, 1, 1); got != hijriEpochJDN {
		t.Fatalf("hijriToJDN(1,1,1) = %d, want %d", got, hijriEpochJDN)
	}
	gy, gm, gd := jdnToGregorian(hijriEpochJDN)
	if gy != 622 || gm != 7 || gd != 19 {
		t.Fatalf("jdnToGregorian(epoch) = %04d-%02d-%02d, want 0622-07-19", gy, gm, gd)
	}
}

// TestHijriLeapCycle verifies the 11-in-30 leap year set
func TestHijriLeapCycle(t *testing.T) {
	leapInCycle := map[int]bool{
		2: true, 5: true, 7: true, 10: true, 13: true, 16: true,
		18: true, 21: true, 24: true, 26: true, 29: true,
	}
	for y := 1; y <= 30; y++ {
		want := leapInCycle[y%30]
		if got := hijriLeapYear(y); got != want {
			t.Errorf("hijriLeapYear(%d) = %v, want %v", y, got, want)
		}
		// Same position in a later cycle behaves identically
		if got := hijriLeapYear(y + 30*47); got != want {
			t.Errorf("hijriLeapYear(%d) = %v, want %v", y+30*47, got, want)
		}
	}
}

// TestHijriYearLength checks common years have 354 days and leap years 355
func TestHijriYearLength(t *testing.T) {
	for y := 1; y <= 1500; y++ {
		length := hijriYearStartJDN(y+1) - hijriYearStartJDN(y)
		want := 354
		if hijriLeapYear(y) {
			want = 355
		}
		if length != want {
			t.Fatalf("year %d has %d days, want %d", y, length, want)
		}
	}
}

// TestHijriMonthLengthsSumToYear checks month lengths are consistent
// with the year arithmetic
func TestHijriMonthLengthsSumToYear(t *testing.T) {
	for _, y := range []int{1, 2, 1356, 1445, 1446, 1500} {
		sum := 0
		for m := 1; m <= 12; m++ {
			sum += hijriMonthDays(y, m)
		}
		want := hijriYearStartJDN(y+1) - hijriYearStartJDN(y)
		if sum != want {
			t.Errorf("year %d: month lengths sum to %d, year spans %d days", y, sum, want)
		}
	}
}

// TestGregorianJDNKnownDates pins the Fliegel-Van Flandern conversion
// against published Julian Day Numbers
func TestGregorianJDNKnownDates(t *testing.T) {
	tests := []struct {
		year, month, day int
		jdn              int
	}{
		{1970, 1, 1, 2440588},
		{2000, 1, 1, 2451545},
		{2023, 2, 24, 2460000},
		{1858, 11, 17, 2400001},
	}

	for _, tt := range tests {
		if got := gregorianToJDN(tt.year, tt.month, tt.day); got != tt.jdn {
			t.Errorf("gregorianToJDN(%04d-%02d-%02d) = %d, want %d",
				tt.year, tt.month, tt.day, got, tt.jdn)
		}
		gy, gm, gd := jdnToGregorian(tt.jdn)
		if gy != tt.year || gm != tt.month || gd != tt.day {
			t.Errorf("jdnToGregorian(%d) = %04d-%02d-%02d, want %04d-%02d-%02d",
				tt.jdn, gy, gm, gd, tt.year, tt.month, tt.day)
		}
	}
}

// TestGregorianJDNContiguous checks adjacency across a year boundary
// and a leap day
func TestGregorianJDNContiguous(t *testing.T) {
	dec31 := gregorianToJDN(2023, 12, 31)
	jan1 := gregorianToJDN(2024, 1, 1)
	if jan1 != dec31+1 {
		t.Fatalf("year boundary not contiguous: %d -> %d", dec31, jan1)
	}

	feb28 := gregorianToJDN(2024, 2, 28)
	feb29 := gregorianToJDN(2024, 2, 29)
	mar1 := gregorianToJDN(2024, 3, 1)
	if feb29 != feb28+1 || mar1 != feb29+1 {
		t.Fatalf("leap February not contiguous: %d %d %d", feb28, feb29, mar1)
	}
}

// TestJDNRoundTripHijri exercises the inverse conversion across the
// supported picker range
func TestJDNRoundTripHijri(t *testing.T) {
	for y := 1356; y <= 1500; y++ {
		for m := 1; m <= 12; m++ {
			for _, d := range []int{1, 15, hijriMonthDays(y, m)} {
				jdn := hijriToJDN(y, m, d)
				gy, gm, gd := jdnToHijri(jdn)
				if gy != y || gm != m || gd != d {
					t.Fatalf("round trip %04d-%02d-%02d via JDN %d gave %04d-%02d-%02d",
						y, m, d, jdn, gy, gm, gd)
				}
			}
		}
	}
}
