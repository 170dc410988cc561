package calendar

// YMD returns the Gregorian year, month and day that encode to n.
func (n Mdn) YMD() (GregorianYear, Month, Day) {
	ay, m, d := decodeMdn(int32(n))

	return ay.GregorianYear(), m, d
}

// Date returns the decoded calendar date of n.
func (n Mdn) Date() Date {
	gy, m, d := n.YMD()

	return Date{Year: gy, Month: m, Day: d}
}

// decodeMdn locates the 400-, 100-, 4- and 1-year blocks containing day x without searching.
//
// Each block starts on March 1, so the extra day of a long block is always its last day.
// A 400-year cycle is four centuries of which only the last has a leap day on its final
// February; a 4-year block is four years of which only the last is leap.
func decodeMdn(x int32) (AstroYear, Month, Day) {
	d1 := x

	// Floor division: days before the epoch belong to earlier 400-year cycles.
	b400 := floorDiv(d1, daysIn400Years)
	d1 -= b400 * daysIn400Years
	invariant(0 <= d1 && d1 < daysIn400Years, "offset outside 400-year cycle")

	// The last century of the cycle is one day longer; keep its final day in the 4th block.
	b100 := min(d1/daysIn100Years, 3)
	d1 -= b100 * daysIn100Years
	invariant(0 <= d1 && d1 <= daysIn100Years, "offset outside 100-year block")

	// A century is at most 25 full 4-year blocks, so this division cannot overrun.
	b4 := d1 / daysIn4Years
	d1 -= b4 * daysIn4Years
	invariant(0 <= d1 && d1 < daysIn4Years, "offset outside 4-year block")

	// The last year of a 4-year block is the leap year; keep its final day in the 4th year.
	b1 := min(d1/daysIn1Year, 3)
	d1 -= b1 * daysIn1Year

	// Astro year of the nearest March 1 not after x; d1 is the day offset from it:
	//	d1 = 0   -> March 1
	//	d1 = 365 -> February 29 of the following year
	ay := 2000 + 400*b400 + 100*b100 + 4*b4 + b1

	// Month index counted from March: 0 = March ... 11 = February.
	m1 := (d1 + d1/61 - d1/183 + d1/214 - d1/244 + d1/275 - d1/305) / 31
	invariant(0 <= m1 && m1 < 12, "month index out of range")

	// January and February belong to the next year.
	ay += (m1 / 10) & 1

	offset := monthOffsetFromMarch(m1)
	invariant(offset == marchFirstMonthOffsets[m1], "month offset table mismatch")

	m := Month(1 + (m1+2)%12)
	d := Day(d1 - offset + 1)
	invariant(m.Valid() && d.Valid(), "decoded month or day out of range")

	return AstroYear(ay), m, d
}

// marchFirstMonthOffsets holds the day offset of each month start from March 1.
var marchFirstMonthOffsets = [12]int32{0, 31, 61, 92, 122, 153, 184, 214, 245, 275, 306, 337}

// monthOffsetFromMarch is the closed form of marchFirstMonthOffsets.
func monthOffsetFromMarch(m1 int32) int32 {
	return 61*(m1/2) + 31*(m1&1) + ((1+m1)&1)*(m1/6) + m1/11
}
