package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	bcSuffix = " BC"
)

// Date is a proleptic Gregorian calendar date.
//
// A Date obtained from Mdn.Date, NewDate or ParseDate is always a real calendar day.
// Literal Date values are not validated until they are encoded.
type Date struct {
	Year  GregorianYear
	Month Month
	Day   Day
}

// NewDate returns the Date for the given Gregorian year, month and day numbers.
//
// Unlike the Mdn encoders it rejects days past the end of the month with ErrInvalidGregorianYMD.
func NewDate[Y, M, D Integer](gy Y, m M, d D) (Date, error) {
	year, err := NewGregorianYear(gy)
	if err != nil {
		return Date{}, err
	}

	month, err := NewMonth(m)
	if err != nil {
		return Date{}, err
	}

	day, err := NewDay(d)
	if err != nil {
		return Date{}, err
	}

	date := Date{Year: year, Month: month, Day: day}
	if int(day) > month.DaysIn(year) {
		return Date{}, &DateError{Date: date}
	}

	return date, nil
}

// DateError reports a fully range-checked triple that is still not a calendar day.
type DateError struct {
	Date Date
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %04d-%02d-%02d", ErrInvalidGregorianYMD, int32(e.Date.Year), int(e.Date.Month), int(e.Date.Day))
}

func (e *DateError) Unwrap() error {
	return ErrInvalidGregorianYMD
}

// Valid reports whether d is a real calendar day within the supported range.
func (d Date) Valid() bool {
	return d.Year.Valid() && d.Month.Valid() && d.Day.Valid() && int(d.Day) <= d.Month.DaysIn(d.Year)
}

// Mdn encodes d. Out-of-month days roll over as described on MdnFromYMD.
func (d Date) Mdn() (Mdn, error) {
	return MdnFromYMD(d.Year, d.Month, d.Day)
}

// AstroYear returns the year of d in astronomical numbering.
func (d Date) AstroYear() AstroYear {
	return d.Year.AstroYear()
}

// String formats d as YYYY-MM-DD, appending " BC" for negative Gregorian years.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("%04d-%02d-%02d%s", -int32(d.Year), int(d.Month), int(d.Day), bcSuffix)
	}

	return fmt.Sprintf("%04d-%02d-%02d", int32(d.Year), int(d.Month), int(d.Day))
}

// ParseDate parses YYYY-MM-DD with an optional " BC" suffix, e.g. "0044-03-15 BC".
// The year may have more or fewer than four digits; month and day must have two.
// Input is NFKC-normalised first, so full-width digits and separators are accepted.
func ParseDate(s string) (Date, error) {
	text := strings.TrimSpace(norm.NFKC.String(s))

	bc := false
	if rest, found := strings.CutSuffix(text, bcSuffix); found {
		text = strings.TrimSpace(rest)
		bc = true
	}

	parts := strings.Split(text, "-")
	if len(parts) != 3 || len(parts[1]) != 2 || len(parts[2]) != 2 || parts[0] == "" {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	nums := [3]int64{}
	for i, part := range parts {
		if strings.ContainsAny(part, "+-") {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}

		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %w", ErrInvalidDateFormat, s, err)
		}

		nums[i] = n
	}

	year := nums[0]
	if bc {
		year = -year
	}

	return NewDate(year, nums[1], nums[2])
}
