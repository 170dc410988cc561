package calendar

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewDay_Boundaries(t *testing.T) {
	tests := []struct {
		name        string
		input       int
		expected    Day
		expectedErr error
	}{
		{name: "zero", input: 0, expectedErr: ErrInvalidDay},
		{name: "first", input: 1, expected: 1},
		{name: "fifteenth", input: 15, expected: 15},
		{name: "last", input: 31, expected: 31},
		{name: "past last", input: 32, expectedErr: ErrInvalidDay},
		{name: "negative", input: -1, expectedErr: ErrInvalidDay},
		{name: "does not fit a byte", input: 257, expectedErr: ErrInvalidDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := NewDay(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				var valueErr *ValueError
				require.True(t, errors.As(err, &valueErr))
				assert.Equal(t, int64(tt.input), valueErr.Value)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func Test_NewDay_AcceptsAnyIntegerWidth(t *testing.T) {
	d8, err := NewDay(uint8(7))
	assert.NoError(t, err)
	assert.Equal(t, Day(7), d8)

	d64, err := NewDay(int64(31))
	assert.NoError(t, err)
	assert.Equal(t, Day(31), d64)

	_, err = NewDay(uint64(math.MaxUint64))
	assert.ErrorIs(t, err, ErrInvalidDay)

	var valueErr *ValueError
	require.True(t, errors.As(err, &valueErr))
	assert.True(t, valueErr.Overflow)
}

func Test_NewMonth_Boundaries(t *testing.T) {
	tests := []struct {
		name        string
		input       int
		expectedErr error
	}{
		{name: "zero", input: 0, expectedErr: ErrInvalidMonth},
		{name: "january", input: 1},
		{name: "december", input: 12},
		{name: "past december", input: 13, expectedErr: ErrInvalidMonth},
		{name: "negative", input: -12, expectedErr: ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, err := NewMonth(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorContains(t, err, "invalid month")
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, Month(tt.input), month)
		})
	}
}

func Test_Month_DaysInMonth(t *testing.T) {
	common := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leap := []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	for m := MinMonth; m <= MaxMonth; m++ {
		assert.Equal(t, common[m-1], m.DaysInMonth(false), "common year, month %d", m)
		assert.Equal(t, leap[m-1], m.DaysInMonth(true), "leap year, month %d", m)
	}
}

func Test_Month_DaysIn_Year(t *testing.T) {
	feb := Month(2)

	assert.Equal(t, 29, feb.DaysIn(AstroYear(2020)))
	assert.Equal(t, 28, feb.DaysIn(AstroYear(2021)))
	assert.Equal(t, 29, feb.DaysIn(GregorianYear(-1)), "1 BC is astro year 0, a leap year")
	assert.Equal(t, 28, feb.DaysIn(GregorianYear(-2)))
	assert.Equal(t, 31, Month(1).DaysIn(AstroYear(2020)))
	assert.Equal(t, 30, Month(4).DaysIn(AstroYear(2020)))
}

func Test_Month_TimeMonthAndString(t *testing.T) {
	assert.Equal(t, time.March, Month(3).TimeMonth())
	assert.Equal(t, "March", Month(3).String())
	assert.Equal(t, "12", Day(12).String())
}
