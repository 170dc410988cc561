package pgcalendar

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

// Date is a nullable calendar.Date for PostgreSQL date columns.
//
// It implements sql.Scanner and driver.Valuer for database/sql drivers such as lib/pq,
// and pgtype.DateScanner and pgtype.DateValuer for pgx.
type Date struct {
	Date  calendar.Date
	Valid bool
}

// NewDate returns a valid Date.
func NewDate(d calendar.Date) Date {
	return Date{Date: d, Valid: true}
}

// DateFromMdn returns a valid Date for the day number n.
func DateFromMdn(n calendar.Mdn) Date {
	return NewDate(n.Date())
}

// Mdn returns the day number of d.
func (d Date) Mdn() (calendar.Mdn, error) {
	return d.Date.Mdn()
}

// Scan implements sql.Scanner. It accepts time.Time (lib/pq), date text and nil.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil

	case time.Time:
		return d.setFromTime(v)

	case string:
		return d.setFromText(v)

	case []byte:
		return d.setFromText(string(v))

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanSource, src)
	}
}

// Value implements driver.Value using the PostgreSQL text form, e.g. "0044-03-15 BC".
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}

	if err := d.checkStorable(); err != nil {
		return nil, err
	}

	return d.Date.String(), nil
}

// ScanDate implements pgtype.DateScanner.
func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}

	if v.InfinityModifier != pgtype.Finite {
		return fmt.Errorf("%w: %s", ErrInfiniteDate, v.InfinityModifier)
	}

	return d.setFromTime(v.Time)
}

// DateValue implements pgtype.DateValuer.
func (d Date) DateValue() (pgtype.Date, error) {
	if !d.Valid {
		return pgtype.Date{}, nil
	}

	if err := d.checkStorable(); err != nil {
		return pgtype.Date{}, err
	}

	n, err := d.Date.Mdn()
	if err != nil {
		return pgtype.Date{}, err
	}

	return pgtype.Date{Time: n.Time(), Valid: true}, nil
}

// String returns the PostgreSQL text form of d, or "NULL".
func (d Date) String() string {
	if !d.Valid {
		return "NULL"
	}

	return d.Date.String()
}

func (d *Date) setFromTime(t time.Time) error {
	// Only the calendar fields matter; drivers may attach a location to a date.
	n, err := calendar.MdnFromTime(t)
	if err != nil {
		return err
	}

	*d = DateFromMdn(n)

	return nil
}

func (d *Date) setFromText(s string) error {
	parsed, err := calendar.ParseDate(s)
	if err != nil {
		return err
	}

	*d = NewDate(parsed)

	return nil
}

func (d Date) checkStorable() error {
	n, err := d.Date.Mdn()
	if err != nil {
		return err
	}

	// Mdn rolls April 31 over to May 1; a stored date must be exact.
	if !d.Date.Valid() {
		return &calendar.DateError{Date: d.Date}
	}

	return checkRepresentable(n, n)
}
