package pgcalendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
	. "github.com/sunangle/millennium-calendar-go/testutil/helper" //nolint:revive
)

func Test_PostgresDays(t *testing.T) {
	tests := []struct {
		name     string
		mdn      calendar.Mdn
		expected int32
	}{
		{name: "postgres epoch", mdn: GivenMdn(t, 2000, 1, 1), expected: 0},
		{name: "millennium epoch", mdn: 0, expected: 60},
		{name: "unix epoch", mdn: GivenMdn(t, 1970, 1, 1), expected: -10957},
		{name: "earliest postgres date", mdn: pgcalendar.MinPostgresMdn, expected: -2451545},
		{name: "latest supported day", mdn: calendar.MaxMdn, expected: 2261581},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := pgcalendar.PostgresDays(tt.mdn)
			assert.Equal(t, tt.expected, days)

			back, err := pgcalendar.MdnFromPostgresDays(days)
			require.NoError(t, err)
			assert.Equal(t, tt.mdn, back)
		})
	}
}

func Test_MdnFromPostgresDays_OutOfRange(t *testing.T) {
	_, err := pgcalendar.MdnFromPostgresDays(pgcalendar.PostgresDays(calendar.MaxMdn) + 1)

	assert.ErrorIs(t, err, calendar.ErrOutOfMdnRange)
}

func Test_Representable(t *testing.T) {
	assert.Equal(t, calendar.Date{Year: -4714, Month: 11, Day: 24}, pgcalendar.MinPostgresMdn.Date())

	assert.True(t, pgcalendar.Representable(pgcalendar.MinPostgresMdn))
	assert.True(t, pgcalendar.Representable(calendar.MaxMdn))
	assert.False(t, pgcalendar.Representable(pgcalendar.MinPostgresMdn-1))
	assert.False(t, pgcalendar.Representable(calendar.MinMdn))
	assert.False(t, pgcalendar.Representable(calendar.MaxMdn+1))
}
