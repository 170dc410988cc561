package tai

import "errors"

var (
	// ErrInvalidClock is returned when a clock reading is outside 00:00:00 to 23:59:59.999999999.
	ErrInvalidClock = errors.New("invalid clock reading")

	// ErrInvalidLeapSecond is returned for a 23:59:60 UTC reading on a day without a leap second.
	ErrInvalidLeapSecond = errors.New("no leap second at this UTC instant")

	// ErrInvalidTimeFormat is returned when text does not match "YYYY-MM-DD[ BC] HH:MM:SS[.fffffffff] [TZ]".
	ErrInvalidTimeFormat = errors.New("invalid date time format")

	// ErrUnknownTimeZone is returned for a time zone other than UTC, Z or TAI.
	ErrUnknownTimeZone = errors.New("unknown time zone, expected UTC or TAI")

	// ErrInvalidLeapSecondTable is returned when leap second data is unsorted or not at a month end.
	ErrInvalidLeapSecondTable = errors.New("invalid leap second table")

	// ErrNilLeapSecondTable is returned when a nil table is handed to a Converter.
	ErrNilLeapSecondTable = errors.New("leap second table must not be nil")
)
