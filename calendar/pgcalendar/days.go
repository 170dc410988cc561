package pgcalendar

import (
	"fmt"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

// postgresEpochOffset is the Mdn of 2000-01-01 negated.
const postgresEpochOffset = 60

// MinPostgresMdn is 4714-11-24 BC, the earliest date PostgreSQL accepts.
const MinPostgresMdn calendar.Mdn = -2451605

// PostgresDays returns the PostgreSQL day count (days since 2000-01-01) of n.
func PostgresDays(n calendar.Mdn) int32 {
	return int32(n) + postgresEpochOffset
}

// MdnFromPostgresDays converts a PostgreSQL day count to an Mdn.
func MdnFromPostgresDays(days int32) (calendar.Mdn, error) {
	return calendar.NewMdn(int64(days) - postgresEpochOffset)
}

// Representable reports whether PostgreSQL can store n.
func Representable(n calendar.Mdn) bool {
	return n >= MinPostgresMdn && n.Valid()
}

func checkRepresentable(from, to calendar.Mdn) error {
	if !Representable(from) || !Representable(to) {
		return fmt.Errorf("%w: mdn %d to %d, earliest is %s", ErrRangeNotRepresentable, from, to, MinPostgresMdn.Date())
	}

	return nil
}
