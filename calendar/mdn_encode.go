package calendar

// MdnFromYMD returns the day number of the given year, month and day values.
//
// The year may be either an AstroYear or a GregorianYear. The day is not checked against the
// length of the month: February 30 encodes as the day after February 29 or 28.
func MdnFromYMD(y Year, m Month, d Day) (Mdn, error) {
	gy := y.GregorianYear()

	if !gy.Valid() {
		if gy == 0 {
			return 0, valueError(ErrInvalidGregorianYear, 0)
		}

		return 0, valueError(ErrUnsupportedYear, callerYear(y))
	}

	if !m.Valid() {
		return 0, valueError(ErrInvalidMonth, int64(m))
	}

	if !d.Valid() {
		return 0, valueError(ErrInvalidDay, int64(d))
	}

	return NewMdn(encodeGYMD(int32(gy), int32(m), int32(d)))
}

// MdnFromGYMD returns the day number of the given Gregorian year, month and day numbers.
// All three values are fully range checked before encoding.
func MdnFromGYMD[Y, M, D Integer](gy Y, m M, d D) (Mdn, error) {
	year, err := NewGregorianYear(gy)
	if err != nil {
		return 0, err
	}

	month, err := NewMonth(m)
	if err != nil {
		return 0, err
	}

	day, err := NewDay(d)
	if err != nil {
		return 0, err
	}

	return NewMdn(encodeGYMD(int32(year), int32(month), int32(day)))
}

// encodeGYMD adapts the calendar-date to Julian-day-number formulae
//
//	367*Y - 7*(Y + (M+9)/12)/4 - 3*((Y + (M-9)/7)/100 + 1)/4 + 275*M/9 + D - 1721029
//	367*Y - 7*(Y + (M+9)/12)/4 + 275*M/9 + D + 1721014
//
// from Van Flandern, T. C.; Pulkkinen, K. F., Astrophysical Journal Supplement Series,
// vol. 41, Nov. 1979, p. 391-411, rebased onto 2000-03-01.
//
// The constants are calibrated for integer division truncating toward zero, which is what
// Go's / does. Do not replace these divisions with floor division.
func encodeGYMD(gy, m, d int32) int32 {
	// No century correction is needed between 1900 and 2100 exclusive.
	if 1900 < gy && gy < 2100 {
		return 367*gy - 7*(gy+(m+9)/12)/4 + 275*m/9 + d - 730591
	}

	// Move BC years up by whole 400-year cycles into the range where truncation is exact.
	var cycles int32
	if gy < 0 {
		gy++ // no year 0
		cycles = (-gy + 399) / 400
		gy += 400 * cycles
	}

	return encodeGeneral(gy, m, d) - cycles*daysIn400Years
}

// encodeGeneral is the full formula including the century correction term.
// gy must be non-negative and in astronomical numbering.
func encodeGeneral(gy, m, d int32) int32 {
	return 367*gy - 7*(gy+(m+9)/12)/4 - 3*((gy+(m-9)/7)/100+1)/4 + 275*m/9 + d - 730576
}

// callerYear returns y as a number in the caller's own year numbering.
func callerYear(y Year) int64 {
	if ay, ok := y.(AstroYear); ok {
		return int64(ay)
	}

	return int64(y.GregorianYear())
}
