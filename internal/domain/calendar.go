package domain

import "time"

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month (1-12) of year.
// A month outside [1,12] yields a KindInvalidMonth ValidationError.
func DaysInMonth(month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, &ValidationError{Kind: KindInvalidMonth}
	}
	if month == 2 && IsLeapYear(year) {
		return 29, nil
	}
	return monthLengths[month-1], nil
}

// MonthName returns the English month name, or "" outside [1,12].
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// BirthDate is a validated calendar date.
type BirthDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Time returns midnight UTC of the date. Out-of-range fields are normalized
// the way time.Date does (month 13 becomes January of the next year).
func (d BirthDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d BirthDate) String() string {
	return d.Time().Format(time.DateOnly)
}

// calendarDate drops the clock part of t, keeping the date as seen in t's location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
