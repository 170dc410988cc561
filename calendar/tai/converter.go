package tai

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

const (
	logMsgApproximateOffset = "TAI-UTC offset before 1972 is approximate"
	logMsgStaleTable        = "leap second table may be out of date"
	logMsgTableReplaced     = "leap second table replaced"
	logMsgParsed            = "parsed date time"
	logMsgReloadFailed      = "leap second table reload failed"
	logAttrError            = "error"
	logAttrPath             = "path"
	logAttrUTCDate          = "utc_date"
	logAttrKnownAsOf        = "known_as_of"
	logAttrOffsetSeconds    = "offset_seconds"
	logAttrLeapSecondCount  = "leap_second_count"
	logAttrInput            = "input"
	logAttrTimeZone         = "time_zone"
)

var errNilNowFunc = errors.New("now function must not be nil")

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Converter translates between UTC and TAI using a LeapSecondTable.
// It is safe for concurrent use; the table can be replaced while the Converter is in use.
type Converter struct {
	state  atomic.Pointer[tableState]
	logger Logger
	now    func() time.Time
}

// tableState pairs a table with its one-shot warning flags, so a new table warns again.
type tableState struct {
	table        *LeapSecondTable
	warnedApprox atomic.Bool
	warnedStale  atomic.Bool
}

// Option defines a functional option for configuring a Converter.
type Option func(*Converter) error

// WithLogger sets the logger for the Converter.
//
// Debug level: parsed input and detected time zone
// Info level: leap second table replacements
// Warn level: approximate offsets before 1972 and a possibly stale table, each once per table.
func WithLogger(logger Logger) Option {
	return func(c *Converter) error {
		c.logger = logger
		return nil
	}
}

// WithLeapSecondTable replaces the built-in leap second table.
func WithLeapSecondTable(table *LeapSecondTable) Option {
	return func(c *Converter) error {
		if table == nil {
			return ErrNilLeapSecondTable
		}

		c.state.Store(&tableState{table: table})

		return nil
	}
}

// WithNow sets the source of the current UTC time used by Now.
func WithNow(now func() time.Time) Option {
	return func(c *Converter) error {
		if now == nil {
			return errNilNowFunc
		}

		c.now = now

		return nil
	}
}

// NewConverter creates a Converter that uses DefaultLeapSecondTable unless configured otherwise.
func NewConverter(options ...Option) (*Converter, error) {
	c := &Converter{now: time.Now}
	c.state.Store(&tableState{table: DefaultLeapSecondTable()})

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LeapSecondTable returns the table currently in use.
func (c *Converter) LeapSecondTable() *LeapSecondTable {
	return c.state.Load().table
}

// SetLeapSecondTable atomically replaces the table used by all later conversions.
func (c *Converter) SetLeapSecondTable(table *LeapSecondTable) error {
	if table == nil {
		return ErrNilLeapSecondTable
	}

	c.state.Store(&tableState{table: table})

	if c.logger != nil {
		c.logger.Info(
			logMsgTableReplaced,
			logAttrLeapSecondCount, table.Len(),
			logAttrKnownAsOf, table.KnownAsOf().String(),
		)
	}

	return nil
}

// OffsetAt returns TAI−UTC in seconds at the start of the given UTC day, see LeapSecondTable.OffsetAt.
func (c *Converter) OffsetAt(day calendar.Mdn) (seconds int, exact bool) {
	return c.LeapSecondTable().OffsetAt(day)
}

// Now returns the current instant in TAI.
func (c *Converter) Now() (Time, error) {
	return c.FromUTC(c.now())
}

// FromUTC converts a time.Time to TAI. Any location is accepted; only the instant matters.
func (c *Converter) FromUTC(t time.Time) (Time, error) {
	utcSec := t.Unix() - epochUnixSeconds

	day, err := calendar.NewMdn(floorDiv(utcSec, secondsPerDay))
	if err != nil {
		return Time{}, err
	}

	state := c.state.Load()
	offset := c.offset(state, day)

	return fromSeconds(utcSec+offset, int64(t.Nanosecond()))
}

// FromUTCComponents converts a UTC calendar date and clock reading to TAI.
// A clock reading of 23:59:60 is accepted on leap second days only.
func (c *Converter) FromUTCComponents(d calendar.Date, clock Clock) (Time, error) {
	if !d.Valid() {
		return Time{}, &calendar.DateError{Date: d}
	}

	if !clock.valid(true) {
		return Time{}, fmt.Errorf("%w: %s", ErrInvalidClock, clock)
	}

	day, err := d.Mdn()
	if err != nil {
		return Time{}, err
	}

	state := c.state.Load()

	if clock.Second == 60 && (!clock.isLeapSecond() || !state.table.IsLeapDay(day)) {
		return Time{}, fmt.Errorf("%w: %s %s UTC", ErrInvalidLeapSecond, d, clock)
	}

	offset := c.offset(state, day)

	return fromSeconds(int64(day)*secondsPerDay+clock.secondOfDay()+offset, int64(clock.Nanosecond))
}

// ToUTC converts t to a time.Time in UTC.
//
// time.Time cannot represent 23:59:60, so a leap second maps onto the first second of the next day.
// Use UTCComponents to observe the leap second itself.
func (c *Converter) ToUTC(t Time) time.Time {
	sec, nsec := t.seconds()
	offset, _ := c.state.Load().table.lookupTAI(sec)

	return time.Unix(sec-offset+epochUnixSeconds, nsec).UTC()
}

// UTCComponents breaks t down into a UTC calendar date and clock reading.
// During a leap second the clock reads 23:59:60.
func (c *Converter) UTCComponents(t Time) (calendar.Date, Clock, error) {
	sec, nsec := t.seconds()
	state := c.state.Load()

	offset, leap := state.table.lookupTAI(sec)
	utcSec := sec - offset

	if leap {
		// utcSec is midnight of the following day; the reading belongs to the day before.
		day := calendar.Mdn(floorDiv(utcSec, secondsPerDay) - 1)
		return day.Date(), Clock{Hour: 23, Minute: 59, Second: 60, Nanosecond: int(nsec)}, nil
	}

	dayNumber := floorDiv(utcSec, secondsPerDay)

	day, err := calendar.NewMdn(dayNumber)
	if err != nil {
		return calendar.Date{}, Clock{}, err
	}

	c.warnInexact(state, day)

	return day.Date(), clockFromSecondOfDay(utcSec-dayNumber*secondsPerDay, nsec), nil
}

// offset looks up TAI−UTC for a UTC day, warning when it is not exact.
func (c *Converter) offset(state *tableState, day calendar.Mdn) int64 {
	seconds, _ := state.table.OffsetAt(day)
	c.warnInexact(state, day)

	return int64(seconds)
}

// warnInexact logs once per table when the offset for day is approximate or past the table's horizon.
func (c *Converter) warnInexact(state *tableState, day calendar.Mdn) {
	if c.logger == nil {
		return
	}

	seconds, exact := state.table.OffsetAt(day)
	if exact {
		return
	}

	switch {
	case day < utcStartDay:
		if state.warnedApprox.CompareAndSwap(false, true) {
			c.logger.Warn(logMsgApproximateOffset, logAttrUTCDate, day.Date().String(), logAttrOffsetSeconds, seconds)
		}
	default:
		if state.warnedStale.CompareAndSwap(false, true) {
			c.logger.Warn(
				logMsgStaleTable,
				logAttrUTCDate, day.Date().String(),
				logAttrKnownAsOf, state.table.KnownAsOf().String(),
				logAttrOffsetSeconds, seconds,
			)
		}
	}
}

var epochUnixSeconds = calendar.Mdn(0).Time().Unix()
