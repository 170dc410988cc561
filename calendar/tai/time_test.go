package tai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/tai"
)

func Test_New_ValidatesDayAndClock(t *testing.T) {
	tests := []struct {
		name        string
		day         calendar.Mdn
		clock       tai.Clock
		expectedErr error
	}{
		{name: "epoch midnight", day: 0, clock: tai.Clock{}},
		{name: "last nanosecond of day", day: 0, clock: tai.Clock{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_999_999}},
		{name: "second sixty", day: 0, clock: tai.Clock{Hour: 23, Minute: 59, Second: 60}, expectedErr: tai.ErrInvalidClock},
		{name: "hour 24", day: 0, clock: tai.Clock{Hour: 24}, expectedErr: tai.ErrInvalidClock},
		{name: "negative minute", day: 0, clock: tai.Clock{Minute: -1}, expectedErr: tai.ErrInvalidClock},
		{name: "full second of nanoseconds", day: 0, clock: tai.Clock{Nanosecond: 1_000_000_000}, expectedErr: tai.ErrInvalidClock},
		{name: "day out of range", day: calendar.MaxMdn + 1, clock: tai.Clock{}, expectedErr: calendar.ErrOutOfMdnRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := tai.New(tt.day, tt.clock)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.day, tm.Day())
			assert.Equal(t, tt.clock, tm.Clock())
		})
	}
}

func Test_FromDate_RejectsInvalidDates(t *testing.T) {
	_, err := tai.FromDate(calendar.Date{Year: 2023, Month: 2, Day: 29}, tai.Clock{})

	assert.ErrorIs(t, err, calendar.ErrInvalidGregorianYMD)
}

func Test_Time_String(t *testing.T) {
	tests := []struct {
		name     string
		date     calendar.Date
		clock    tai.Clock
		expected string
	}{
		{
			name:     "whole seconds",
			date:     calendar.Date{Year: 2017, Month: 1, Day: 1},
			clock:    tai.Clock{Second: 37},
			expected: "2017-01-01 00:00:37 TAI",
		},
		{
			name:     "fraction",
			date:     calendar.Date{Year: 2017, Month: 1, Day: 1},
			clock:    tai.Clock{Hour: 12, Minute: 30, Second: 1, Nanosecond: 500_000_000},
			expected: "2017-01-01 12:30:01.500000000 TAI",
		},
		{
			name:     "BC",
			date:     calendar.Date{Year: -44, Month: 3, Day: 15},
			clock:    tai.Clock{Hour: 11},
			expected: "0044-03-15 BC 11:00:00 TAI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := tai.FromDate(tt.date, tt.clock)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, tm.String())
			assert.Equal(t, tt.date, tm.Date())
		})
	}
}

func Test_Time_AddSeconds_CrossesDays(t *testing.T) {
	// arrange
	epoch, err := tai.New(0, tai.Clock{})
	require.NoError(t, err)

	// act
	before, err := epoch.AddSeconds(-1)
	require.NoError(t, err)

	after, err := epoch.AddSeconds(86_400 + 61)
	require.NoError(t, err)

	// assert
	assert.Equal(t, "2000-02-29 23:59:59 TAI", before.String())
	assert.Equal(t, "2000-03-02 00:01:01 TAI", after.String())
}

func Test_Time_AddSeconds_OutOfRange(t *testing.T) {
	last, err := tai.New(calendar.MaxMdn, tai.Clock{Hour: 23, Minute: 59, Second: 59})
	require.NoError(t, err)

	_, err = last.AddSeconds(1)
	assert.ErrorIs(t, err, calendar.ErrOutOfMdnRange)

	first, err := tai.New(calendar.MinMdn, tai.Clock{})
	require.NoError(t, err)

	_, err = first.AddSeconds(-1)
	assert.ErrorIs(t, err, calendar.ErrOutOfMdnRange)
}

func Test_Time_AddDays_SubDays(t *testing.T) {
	tm, err := tai.New(0, tai.Clock{Hour: 6})
	require.NoError(t, err)

	later, err := tm.AddDays(366)
	require.NoError(t, err)
	assert.Equal(t, "2001-03-02 06:00:00 TAI", later.String())

	back, err := later.SubDays(366)
	require.NoError(t, err)
	assert.Equal(t, tm, back)

	_, err = tm.AddDays(int(calendar.MaxMdn) + 1)
	assert.ErrorIs(t, err, calendar.ErrOutOfMdnRange)
}

func Test_Time_Compare(t *testing.T) {
	a, err := tai.New(5, tai.Clock{Hour: 1})
	require.NoError(t, err)

	b, err := tai.New(5, tai.Clock{Hour: 1, Nanosecond: 1})
	require.NoError(t, err)

	c, err := tai.New(6, tai.Clock{})
	require.NoError(t, err)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, b.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func Test_Clock_String(t *testing.T) {
	assert.Equal(t, "23:59:60", tai.Clock{Hour: 23, Minute: 59, Second: 60}.String())
	assert.Equal(t, "00:00:00.000000001", tai.Clock{Nanosecond: 1}.String())
}
