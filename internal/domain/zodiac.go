package domain

import (
	"fmt"
	"strings"
	"time"
)

// Sign identifies one of the twelve zodiac signs.
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Birthstone is the gemstone paired with a sign.
type Birthstone struct {
	Name  string `json:"name"`
	Color string `json:"color"` // hex, e.g. "#E0115F"
}

// ZodiacEntry is the immutable record shown for a sign.
type ZodiacEntry struct {
	Sign            Sign   `json:"id"`
	Name            string `json:"sign"`
	Symbol          string `json:"symbol"`
	DateRange       string `json:"date_range"`
	Birthstone      string `json:"birthstone"`
	BirthstoneColor string `json:"birthstone_color"`
}

// signRange is an inclusive cusp-to-cusp span across two consecutive months.
type signRange struct {
	sign       Sign
	name       string
	symbol     string
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
	stone      Birthstone
}

func (r signRange) contains(day int, month time.Month) bool {
	return (month == r.startMonth && day >= r.startDay) ||
		(month == r.endMonth && day <= r.endDay)
}

func (r signRange) label() string {
	return fmt.Sprintf("%s %d - %s %d",
		r.startMonth.String()[:3], r.startDay,
		r.endMonth.String()[:3], r.endDay,
	)
}

func (r signRange) entry() ZodiacEntry {
	return ZodiacEntry{
		Sign:            r.sign,
		Name:            r.name,
		Symbol:          r.symbol,
		DateRange:       r.label(),
		Birthstone:      r.stone.Name,
		BirthstoneColor: r.stone.Color,
	}
}

// Ordered Aries..Pisces; ResolveSign scans it front to back.
var signRanges = [12]signRange{
	{Aries, "Aries", "♈", time.March, 21, time.April, 19, Birthstone{"Diamond", "#B9F2FF"}},
	{Taurus, "Taurus", "♉", time.April, 20, time.May, 20, Birthstone{"Emerald", "#50C878"}},
	{Gemini, "Gemini", "♊", time.May, 21, time.June, 20, Birthstone{"Pearl", "#F0EAD6"}},
	{Cancer, "Cancer", "♋", time.June, 21, time.July, 22, Birthstone{"Ruby", "#E0115F"}},
	{Leo, "Leo", "♌", time.July, 23, time.August, 22, Birthstone{"Peridot", "#9ACD32"}},
	{Virgo, "Virgo", "♍", time.August, 23, time.September, 22, Birthstone{"Sapphire", "#0F52BA"}},
	{Libra, "Libra", "♎", time.September, 23, time.October, 22, Birthstone{"Opal", "#A8C3BC"}},
	{Scorpio, "Scorpio", "♏", time.October, 23, time.November, 21, Birthstone{"Topaz", "#FFD700"}},
	{Sagittarius, "Sagittarius", "♐", time.November, 22, time.December, 21, Birthstone{"Turquoise", "#40E0D0"}},
	{Capricorn, "Capricorn", "♑", time.December, 22, time.January, 19, Birthstone{"Garnet", "#8B0000"}},
	{Aquarius, "Aquarius", "♒", time.January, 20, time.February, 18, Birthstone{"Amethyst", "#9966CC"}},
	{Pisces, "Pisces", "♓", time.February, 19, time.March, 20, Birthstone{"Aquamarine", "#7FFFD4"}},
}

var entriesBySign = func() map[Sign]ZodiacEntry {
	m := make(map[Sign]ZodiacEntry, len(signRanges))
	for _, r := range signRanges {
		m[r.sign] = r.entry()
	}
	return m
}()

// ResolveSign returns the sign whose range contains (day, month).
// ok is false only when month is outside [1,12]; for every real calendar
// date exactly one range matches.
func ResolveSign(day, month int) (ZodiacEntry, bool) {
	if month < 1 || month > 12 {
		return ZodiacEntry{}, false
	}
	for _, r := range signRanges {
		if r.contains(day, time.Month(month)) {
			return r.entry(), true
		}
	}
	return ZodiacEntry{}, false
}

// LookupBirthstone returns the birthstone paired with sign.
func LookupBirthstone(sign Sign) (Birthstone, bool) {
	e, ok := entriesBySign[sign]
	if !ok {
		return Birthstone{}, false
	}
	return Birthstone{Name: e.Birthstone, Color: e.BirthstoneColor}, true
}

// LookupSign finds an entry by identifier, case-insensitively.
func LookupSign(id string) (ZodiacEntry, bool) {
	e, ok := entriesBySign[Sign(strings.ToLower(strings.TrimSpace(id)))]
	return e, ok
}

// Signs returns all entries in zodiac order, starting with Aries.
func Signs() []ZodiacEntry {
	out := make([]ZodiacEntry, 0, len(signRanges))
	for _, r := range signRanges {
		out = append(out, r.entry())
	}
	return out
}
