package tai

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

// leapSecondFile is the TOML layout of a leap second table:
//
//	known_as_of = 2025-12-31
//	leap_days = [1972-06-30, 1972-12-31, 1973-12-31]
type leapSecondFile struct {
	KnownAsOf toml.LocalDate   `toml:"known_as_of"`
	LeapDays  []toml.LocalDate `toml:"leap_days"`
}

// LoadLeapSecondTable reads a TOML leap second table.
func LoadLeapSecondTable(r io.Reader) (*LeapSecondTable, error) {
	var file leapSecondFile

	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: parsing toml: %w", ErrInvalidLeapSecondTable, err)
	}

	knownAsOf, err := dateFromLocal(file.KnownAsOf)
	if err != nil {
		return nil, fmt.Errorf("%w: known_as_of: %w", ErrInvalidLeapSecondTable, err)
	}

	leapDays := make([]calendar.Date, 0, len(file.LeapDays))
	for i, ld := range file.LeapDays {
		d, err := dateFromLocal(ld)
		if err != nil {
			return nil, fmt.Errorf("%w: leap_days[%d]: %w", ErrInvalidLeapSecondTable, i, err)
		}

		leapDays = append(leapDays, d)
	}

	return NewLeapSecondTable(knownAsOf, leapDays)
}

// LoadLeapSecondFile reads a TOML leap second table from path.
func LoadLeapSecondFile(path string) (*LeapSecondTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening leap second file: %w", err)
	}
	defer f.Close()

	return LoadLeapSecondTable(f)
}

// WriteTOML writes t in the format read by LoadLeapSecondTable.
func (t *LeapSecondTable) WriteTOML(w io.Writer) error {
	file := leapSecondFile{
		KnownAsOf: localFromDate(t.KnownAsOf()),
		LeapDays:  make([]toml.LocalDate, 0, t.Len()),
	}

	for _, d := range t.LeapDays() {
		file.LeapDays = append(file.LeapDays, localFromDate(d))
	}

	return toml.NewEncoder(w).SetArraysMultiline(true).Encode(file)
}

func dateFromLocal(ld toml.LocalDate) (calendar.Date, error) {
	return calendar.NewDate(ld.Year, ld.Month, ld.Day)
}

func localFromDate(d calendar.Date) toml.LocalDate {
	return toml.LocalDate{Year: int(d.Year), Month: d.Month.Int(), Day: d.Day.Int()}
}
