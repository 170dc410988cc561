package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDay is returned when a day-of-month value is not castable or outside 1..31.
	ErrInvalidDay = errors.New("invalid day")

	// ErrInvalidMonth is returned when a month value is not castable or outside 1..12.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidGregorianYear is returned for Gregorian year 0 or a value that is not castable.
	ErrInvalidGregorianYear = errors.New("invalid Gregorian year")

	// ErrUnsupportedYear is returned when a year is outside the supported range for its kind.
	ErrUnsupportedYear = errors.New("out of supported range for year")

	// ErrOutOfMdnRange is returned when a day number falls outside MinMdn..MaxMdn.
	ErrOutOfMdnRange = errors.New("out of supported range for Mdn")

	// ErrInvalidGregorianYMD is returned by the strict Date constructors for triples like April 31.
	ErrInvalidGregorianYMD = errors.New("invalid Gregorian date")

	// ErrInvalidDateFormat is returned when date text does not match YYYY-MM-DD[ BC].
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// ValueError reports which validation failed and for which input value.
//
// It unwraps to one of the sentinel errors of this package, so callers can match with errors.Is
// and extract the offending value with errors.As.
type ValueError struct {
	Err   error
	Value int64

	// Overflow is set when the input could not be represented as an int64 at all.
	Overflow bool
}

func (e *ValueError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("%s: value not representable as int64", e.Err)
	}

	return fmt.Sprintf("%s: %d", e.Err, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func valueError(err error, value int64) error {
	return &ValueError{Err: err, Value: value}
}

func overflowError(err error) error {
	return &ValueError{Err: err, Overflow: true}
}

// invariant panics when an internal relationship the algorithms guarantee does not hold.
// Reaching it means a bug in this package, never a caller error.
func invariant(ok bool, msg string) {
	if !ok {
		panic("calendar: violated invariant: " + msg)
	}
}
