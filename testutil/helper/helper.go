package helper

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

// GivenMdn returns the day number of the Gregorian date gy-m-d and fails the test if it has none.
func GivenMdn(t testing.TB, gy, m, d int) calendar.Mdn {
	t.Helper()

	n, err := calendar.MdnFromGYMD(gy, m, d)
	require.NoError(t, err, "error in arranging test data")

	return n
}

// GivenDate returns the calendar date gy-m-d and fails the test if it is not a real day.
func GivenDate(t testing.TB, gy, m, d int) calendar.Date {
	t.Helper()

	date, err := calendar.NewDate(gy, m, d)
	require.NoError(t, err, "error in arranging test data")

	return date
}

// GivenUniqueTableName returns a table name that does not collide with parallel test runs.
func GivenUniqueTableName(t testing.TB, prefix string) string {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return prefix + "_" + strings.ReplaceAll(id.String(), "-", "")
}
