package tai_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/tai"
	. "github.com/sunangle/millennium-calendar-go/testutil/helper" //nolint:revive
)

func newConverter(t testing.TB, options ...tai.Option) *tai.Converter {
	t.Helper()

	conv, err := tai.NewConverter(options...)
	require.NoError(t, err)

	return conv
}

func Test_NewConverter_Options(t *testing.T) {
	_, err := tai.NewConverter(tai.WithLeapSecondTable(nil))
	assert.ErrorIs(t, err, tai.ErrNilLeapSecondTable)

	_, err = tai.NewConverter(tai.WithNow(nil))
	assert.Error(t, err)

	conv := newConverter(t)
	assert.Same(t, tai.DefaultLeapSecondTable(), conv.LeapSecondTable())
}

func Test_Converter_FromUTC(t *testing.T) {
	tests := []struct {
		name     string
		utc      time.Time
		expected string
	}{
		{
			name:     "start of UTC",
			utc:      time.Date(1972, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "1972-01-01 00:00:10 TAI",
		},
		{
			name:     "after first leap second",
			utc:      time.Date(1972, time.July, 1, 0, 0, 0, 0, time.UTC),
			expected: "1972-07-01 00:00:11 TAI",
		},
		{
			name:     "just before last leap second",
			utc:      time.Date(2016, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: "2017-01-01 00:00:35 TAI",
		},
		{
			name:     "after last leap second",
			utc:      time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "2017-01-01 00:00:37 TAI",
		},
		{
			name:     "other location",
			utc:      time.Date(2017, time.January, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600)),
			expected: "2017-01-01 00:00:37 TAI",
		},
		{
			name:     "nanoseconds",
			utc:      time.Date(2020, time.May, 4, 3, 2, 1, 123_456_789, time.UTC),
			expected: "2020-05-04 03:02:38.123456789 TAI",
		},
	}

	conv := newConverter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := conv.FromUTC(tt.utc)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, tm.String())
		})
	}
}

func Test_Converter_FromUTC_OutOfRange(t *testing.T) {
	conv := newConverter(t)

	_, err := conv.FromUTC(time.Date(9000, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, calendar.ErrOutOfMdnRange)

	_, err = conv.FromUTC(time.Date(8191, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.ErrorIs(t, err, calendar.ErrOutOfMdnRange, "the TAI offset pushes the instant past the last day")
}

func Test_Converter_LeapSecond(t *testing.T) {
	// arrange
	conv := newConverter(t)
	leapDay := calendar.Date{Year: 2016, Month: 12, Day: 31}
	leapSecond := tai.Clock{Hour: 23, Minute: 59, Second: 60, Nanosecond: 250_000_000}

	// act
	tm, err := conv.FromUTCComponents(leapDay, leapSecond)
	require.NoError(t, err)

	date, clock, err := conv.UTCComponents(tm)
	require.NoError(t, err)

	// assert
	assert.Equal(t, "2017-01-01 00:00:36.250000000 TAI", tm.String())
	assert.Equal(t, leapDay, date)
	assert.Equal(t, leapSecond, clock)
	assert.Equal(t, time.Date(2017, time.January, 1, 0, 0, 0, 250_000_000, time.UTC), conv.ToUTC(tm))
}

func Test_Converter_FromUTCComponents_RejectsBogusLeapSeconds(t *testing.T) {
	conv := newConverter(t)

	_, err := conv.FromUTCComponents(calendar.Date{Year: 2016, Month: 12, Day: 30}, tai.Clock{Hour: 23, Minute: 59, Second: 60})
	assert.ErrorIs(t, err, tai.ErrInvalidLeapSecond)

	_, err = conv.FromUTCComponents(calendar.Date{Year: 2016, Month: 12, Day: 31}, tai.Clock{Hour: 12, Minute: 0, Second: 60})
	assert.ErrorIs(t, err, tai.ErrInvalidLeapSecond)

	_, err = conv.FromUTCComponents(calendar.Date{Year: 2016, Month: 12, Day: 31}, tai.Clock{Hour: 23, Minute: 59, Second: 61})
	assert.ErrorIs(t, err, tai.ErrInvalidClock)

	_, err = conv.FromUTCComponents(calendar.Date{Year: 2016, Month: 2, Day: 30}, tai.Clock{})
	assert.ErrorIs(t, err, calendar.ErrInvalidGregorianYMD)
}

func Test_Converter_UTCComponents_AroundLeapSecond(t *testing.T) {
	conv := newConverter(t)

	tests := []struct {
		taiClock      tai.Clock
		expectedDate  calendar.Date
		expectedClock tai.Clock
	}{
		{
			taiClock:      tai.Clock{Second: 35},
			expectedDate:  calendar.Date{Year: 2016, Month: 12, Day: 31},
			expectedClock: tai.Clock{Hour: 23, Minute: 59, Second: 59},
		},
		{
			taiClock:      tai.Clock{Second: 36},
			expectedDate:  calendar.Date{Year: 2016, Month: 12, Day: 31},
			expectedClock: tai.Clock{Hour: 23, Minute: 59, Second: 60},
		},
		{
			taiClock:      tai.Clock{Second: 37},
			expectedDate:  calendar.Date{Year: 2017, Month: 1, Day: 1},
			expectedClock: tai.Clock{},
		},
	}

	for _, tt := range tests {
		tm, err := tai.FromDate(calendar.Date{Year: 2017, Month: 1, Day: 1}, tt.taiClock)
		require.NoError(t, err)

		date, clock, err := conv.UTCComponents(tm)

		require.NoError(t, err)
		assert.Equal(t, tt.expectedDate, date, "TAI %s", tm)
		assert.Equal(t, tt.expectedClock, clock, "TAI %s", tm)
	}
}

func Test_Converter_ToUTC_InvertsFromUTC(t *testing.T) {
	conv := newConverter(t)
	start := time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)

	for utc := start; utc.Year() < 2030; utc = utc.Add(97*time.Hour + 13*time.Second) {
		tm, err := conv.FromUTC(utc)
		require.NoError(t, err)

		require.True(t, utc.Equal(conv.ToUTC(tm)), "UTC %s via %s", utc, tm)
	}
}

func Test_Converter_UTCComponents_InvertsFromUTCComponents(t *testing.T) {
	conv := newConverter(t)

	for _, leapDay := range tai.DefaultLeapSecondTable().LeapDays() {
		for _, clock := range []tai.Clock{
			{Hour: 23, Minute: 59, Second: 59},
			{Hour: 23, Minute: 59, Second: 60},
			{Hour: 0, Minute: 0, Second: 0},
		} {
			tm, err := conv.FromUTCComponents(leapDay, clock)
			require.NoError(t, err)

			date, back, err := conv.UTCComponents(tm)
			require.NoError(t, err)

			require.Equal(t, leapDay, date)
			require.Equal(t, clock, back)
		}
	}
}

func Test_Converter_WarnsOncePerTable(t *testing.T) {
	// arrange
	logger, logHandler := NewTestLogger(false)
	conv := newConverter(t, tai.WithLogger(logger))

	// act
	for i := 0; i < 3; i++ {
		_, err := conv.FromUTC(time.Date(1969, time.July, 20, 20, 17, 0, 0, time.UTC))
		require.NoError(t, err)

		_, err = conv.FromUTC(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
	}

	// assert
	assert.True(t, logHandler.HasWarnLogWithMessage("TAI-UTC offset before 1972 is approximate").
		WithAttr("utc_date", "1969-07-20").
		WithAttr("offset_seconds", "10").
		Assert())
	assert.True(t, logHandler.HasWarnLogWithMessage("leap second table may be out of date").
		WithAttr("known_as_of", "2025-12-31").
		Assert())
	assert.Equal(t, 2, logHandler.GetRecordCount())

	// act
	require.NoError(t, conv.SetLeapSecondTable(tai.DefaultLeapSecondTable()))
	_, err := conv.FromUTC(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// assert
	assert.True(t, logHandler.HasInfoLogWithMessage("leap second table replaced").
		WithAttr("leap_second_count", "27").
		Assert())
	assert.Equal(t, 4, logHandler.GetRecordCount())
}

func Test_Converter_UTCComponents_WarnsOncePerTable(t *testing.T) {
	// arrange
	logger, logHandler := NewTestLogger(false)
	conv := newConverter(t, tai.WithLogger(logger))

	moonLanding, err := tai.FromDate(GivenDate(t, 1969, 7, 20), tai.Clock{Hour: 20, Minute: 17, Second: 10})
	require.NoError(t, err)

	// act
	for i := 0; i < 3; i++ {
		date, clock, err := conv.UTCComponents(moonLanding)

		require.NoError(t, err)
		assert.Equal(t, GivenDate(t, 1969, 7, 20), date)
		assert.Equal(t, tai.Clock{Hour: 20, Minute: 17}, clock)
	}

	// assert
	assert.True(t, logHandler.HasWarnLogWithMessage("TAI-UTC offset before 1972 is approximate").
		WithAttr("utc_date", "1969-07-20").
		Assert())
	assert.Equal(t, 1, logHandler.GetRecordCount())
}

func Test_Converter_NoWarningsForExactOffsets(t *testing.T) {
	logger, logHandler := NewTestLogger(false)
	conv := newConverter(t, tai.WithLogger(logger))

	_, err := conv.FromUTC(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0, logHandler.GetRecordCount())
}

func Test_Converter_SetLeapSecondTable(t *testing.T) {
	// arrange
	conv := newConverter(t)
	table, err := tai.NewLeapSecondTable(calendar.Date{Year: 2030, Month: 1, Day: 1}, nil)
	require.NoError(t, err)

	// act
	require.NoError(t, conv.SetLeapSecondTable(table))
	tm, err := conv.FromUTC(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01 00:00:10 TAI", tm.String())
	assert.ErrorIs(t, conv.SetLeapSecondTable(nil), tai.ErrNilLeapSecondTable)
}

func Test_Converter_Now(t *testing.T) {
	fixed := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	conv := newConverter(t, tai.WithNow(func() time.Time { return fixed }))

	tm, err := conv.Now()

	require.NoError(t, err)
	assert.Equal(t, "2024-02-29 12:00:37 TAI", tm.String())
}

func Test_Converter_OffsetAt(t *testing.T) {
	conv := newConverter(t)

	offset, exact := conv.OffsetAt(0)

	assert.Equal(t, 32, offset)
	assert.True(t, exact)
}
