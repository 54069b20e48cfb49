package domain

import (
	"strconv"
	"strings"
	"time"
)

// MinYear is the earliest accepted birth year.
const MinYear = 1900

// DateInput holds the three raw field values as the user typed them.
type DateInput struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Reading is a resolved zodiac sign for a validated birth date.
type Reading struct {
	Entry     ZodiacEntry `json:"zodiac"`
	BirthDate BirthDate   `json:"birth_date"`
}

// Validate checks in a fixed order and stops at the first failure:
// presence, integer parse, minimum year, not in the future, month range, day range.
//
// The future check runs before the month/day checks and compares the
// normalized date, so month 13 of the current year counts as next January.
// reference is reduced to its calendar date in its own location. A year past
// the reference year is rejected before any date arithmetic, since time.Date
// wraps for years outside its range.
func Validate(in DateInput, reference time.Time) (BirthDate, error) {
	dayStr := strings.TrimSpace(in.Day)
	monthStr := strings.TrimSpace(in.Month)
	yearStr := strings.TrimSpace(in.Year)

	if dayStr == "" || monthStr == "" || yearStr == "" {
		return BirthDate{}, &ValidationError{Kind: KindMissingFields}
	}

	d, errD := strconv.Atoi(dayStr)
	m, errM := strconv.Atoi(monthStr)
	y, errY := strconv.Atoi(yearStr)
	if errD != nil || errM != nil || errY != nil {
		return BirthDate{}, &ValidationError{Kind: KindNotANumber}
	}

	if y < MinYear {
		return BirthDate{}, &ValidationError{Kind: KindYearTooEarly}
	}

	today := calendarDate(reference)
	if y > today.Year() {
		return BirthDate{}, &ValidationError{Kind: KindFutureDate}
	}

	bd := BirthDate{Day: d, Month: m, Year: y}
	if bd.Time().After(today) {
		return BirthDate{}, &ValidationError{Kind: KindFutureDate}
	}

	maxDays, err := DaysInMonth(m, y)
	if err != nil {
		return BirthDate{}, err
	}

	if d < 1 || d > maxDays {
		ve := &ValidationError{
			Kind:    KindInvalidDay,
			Reason:  DayOutOfRange,
			Year:    y,
			Month:   m,
			MaxDays: maxDays,
		}
		if m == 2 && d == 29 && !IsLeapYear(y) {
			ve.Reason = DayNotLeapYear
		}
		return BirthDate{}, ve
	}

	return bd, nil
}

// ValidateAndResolve validates the raw input against reference ("today")
// and resolves the zodiac sign and birthstone. It is pure: identical
// arguments always yield identical results.
func ValidateAndResolve(in DateInput, reference time.Time) (Reading, error) {
	bd, err := Validate(in, reference)
	if err != nil {
		return Reading{}, err
	}

	entry, _ := ResolveSign(bd.Day, bd.Month)
	return Reading{Entry: entry, BirthDate: bd}, nil
}
