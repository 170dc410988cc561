// Package calendar provides proleptic Gregorian date arithmetic over a linear day counter.
//
// The day counter is the millennium day number (Mdn): an integer day count with
// 2000-03-01 fixed at 0, 2000-02-29 at -1 and 2000-03-02 at 1. March 1, 2000 starts a
// 400-year leap cycle, which places every leap day at the end of its 4-, 100- and
// 400-year block and keeps the block arithmetic in closed form.
//
// Two year numbering conventions are supported:
//   - AstroYear: astronomical numbering, year 0 exists (1 BC), range -8191..8191
//   - GregorianYear: conventional numbering, no year 0, range -8192..-1 and 1..8191
//
// Key types:
//   - Day, Month: validated 1-based day-of-month and month values
//   - AstroYear, GregorianYear: validated years, both implementing Year
//   - Mdn: validated day number, encoded from and decoded to (year, month, day)
//   - Date: a decoded (GregorianYear, Month, Day) triple with text and JSON forms
//
// Every constructor validates its input and returns a *ValueError that unwraps to one of the
// package's sentinel errors. Once constructed, all derived operations are total.
//
// Common usage pattern:
//
//	mdn, err := calendar.MdnFromGYMD(2024, 2, 29)
//	if err != nil {
//		// handle error
//	}
//
//	y, m, d := mdn.YMD()
//	next, err := mdn.AddDays(1) // 2024-03-01
//
// Encoding does not cross-check the day against the month: April 31 encodes as May 1.
// Use NewDate when calendar-invalid triples must be rejected.
package calendar
