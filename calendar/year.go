package calendar

// Year is implemented by both year numbering conventions.
type Year interface {
	// AstroYear returns the year in astronomical numbering (year 0 included).
	AstroYear() AstroYear

	// GregorianYear returns the year in conventional numbering (no year 0).
	GregorianYear() GregorianYear

	// IsLeapYear reports whether February has 29 days.
	IsLeapYear() bool

	// DaysInYear returns 365 or 366.
	DaysInYear() int
}

const (
	daysInCommonYear = 365
)

// IsLeapAstroYear is the leap year rule, evaluated on the astronomical year value.
//
// The divisible-by-100 and divisible-by-400 exceptions only line up with plain modulo
// arithmetic when there is no gap at year 0, so Gregorian years are converted first.
func IsLeapAstroYear(ay int32) bool {
	return ay%4 == 0 && (ay%100 != 0 || ay%400 == 0)
}

func daysInYear(leap bool) int {
	if leap {
		return daysInCommonYear + 1
	}

	return daysInCommonYear
}
