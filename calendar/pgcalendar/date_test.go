package pgcalendar_test

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
	. "github.com/sunangle/millennium-calendar-go/testutil/helper" //nolint:revive
)

var (
	_ pgtype.DateScanner = (*pgcalendar.Date)(nil)
	_ pgtype.DateValuer  = pgcalendar.Date{}
	_ driver.Valuer      = pgcalendar.Date{}
)

func Test_Date_Scan(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)

	tests := []struct {
		name     string
		src      any
		expected pgcalendar.Date
	}{
		{name: "nil", src: nil, expected: pgcalendar.Date{}},
		{name: "time", src: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), expected: pgcalendar.NewDate(GivenDate(t, 2024, 2, 29))},
		{name: "time in another location", src: time.Date(2024, 2, 29, 0, 30, 0, 0, berlin), expected: pgcalendar.NewDate(GivenDate(t, 2024, 2, 29))},
		{name: "time before year 1", src: time.Date(-43, 3, 15, 0, 0, 0, 0, time.UTC), expected: pgcalendar.NewDate(GivenDate(t, -44, 3, 15))},
		{name: "text", src: "2000-03-01", expected: pgcalendar.NewDate(GivenDate(t, 2000, 3, 1))},
		{name: "bytes BC", src: []byte("0044-03-15 BC"), expected: pgcalendar.NewDate(GivenDate(t, -44, 3, 15))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := pgcalendar.NewDate(GivenDate(t, 1999, 12, 31))

			err := d.Scan(tt.src)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func Test_Date_Scan_Errors(t *testing.T) {
	tests := []struct {
		name        string
		src         any
		expectedErr error
	}{
		{name: "integer", src: int64(60), expectedErr: pgcalendar.ErrUnsupportedScanSource},
		{name: "malformed text", src: "2000/03/01", expectedErr: calendar.ErrInvalidDateFormat},
		{name: "impossible text", src: "2023-02-29", expectedErr: calendar.ErrInvalidGregorianYMD},
		{name: "time beyond supported years", src: time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC), expectedErr: calendar.ErrUnsupportedYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d pgcalendar.Date

			assert.ErrorIs(t, d.Scan(tt.src), tt.expectedErr)
		})
	}
}

func Test_Date_Value(t *testing.T) {
	tests := []struct {
		name     string
		date     pgcalendar.Date
		expected driver.Value
	}{
		{name: "null", date: pgcalendar.Date{}, expected: nil},
		{name: "AD", date: pgcalendar.NewDate(GivenDate(t, 2024, 2, 29)), expected: "2024-02-29"},
		{name: "BC", date: pgcalendar.NewDate(GivenDate(t, -44, 3, 15)), expected: "0044-03-15 BC"},
		{name: "earliest postgres date", date: pgcalendar.DateFromMdn(pgcalendar.MinPostgresMdn), expected: "4714-11-24 BC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.date.Value()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func Test_Date_Value_Errors(t *testing.T) {
	tests := []struct {
		name        string
		date        pgcalendar.Date
		expectedErr error
	}{
		{
			name:        "not a calendar day",
			date:        pgcalendar.NewDate(calendar.Date{Year: 2023, Month: 4, Day: 31}),
			expectedErr: calendar.ErrInvalidGregorianYMD,
		},
		{
			name:        "before the earliest postgres date",
			date:        pgcalendar.DateFromMdn(pgcalendar.MinPostgresMdn - 1),
			expectedErr: pgcalendar.ErrRangeNotRepresentable,
		},
		{
			name:        "year out of range",
			date:        pgcalendar.NewDate(calendar.Date{Year: 9000, Month: 1, Day: 1}),
			expectedErr: calendar.ErrUnsupportedYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, valueErr := tt.date.Value()
			_, dateValueErr := tt.date.DateValue()

			assert.ErrorIs(t, valueErr, tt.expectedErr)
			assert.ErrorIs(t, dateValueErr, tt.expectedErr)
		})
	}
}

func Test_Date_ScanDate(t *testing.T) {
	// arrange
	var d pgcalendar.Date

	// act
	err := d.ScanDate(pgtype.Date{Time: time.Date(2000, 1, 1+60, 0, 0, 0, 0, time.UTC), Valid: true})

	// assert
	require.NoError(t, err)
	n, err := d.Mdn()
	require.NoError(t, err)
	assert.Equal(t, calendar.Mdn(0), n)

	// act
	err = d.ScanDate(pgtype.Date{})

	// assert
	require.NoError(t, err)
	assert.False(t, d.Valid)

	// act
	err = d.ScanDate(pgtype.Date{InfinityModifier: pgtype.Infinity, Valid: true})

	// assert
	assert.ErrorIs(t, err, pgcalendar.ErrInfiniteDate)
}

func Test_Date_DateValue_InvertsScanDate(t *testing.T) {
	for n := pgcalendar.MinPostgresMdn; n <= calendar.MaxMdn; n += 7919 {
		v, err := pgcalendar.DateFromMdn(n).DateValue()
		require.NoError(t, err)
		require.True(t, v.Valid)

		var d pgcalendar.Date
		require.NoError(t, d.ScanDate(v))

		back, err := d.Mdn()
		require.NoError(t, err)
		require.Equal(t, n, back)
	}
}

func Test_Date_String(t *testing.T) {
	assert.Equal(t, "NULL", pgcalendar.Date{}.String())
	assert.Equal(t, "0001-01-01 BC", pgcalendar.NewDate(GivenDate(t, -1, 1, 1)).String())
}
