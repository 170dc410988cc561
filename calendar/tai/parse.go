package tai

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

const (
	timeZoneUTC = "utc"
	timeZoneTAI = "tai"
	bcMarker    = "BC"
)

// Parse reads "YYYY-MM-DD[ BC] HH:MM:SS[.fffffffff] [TZ]".
//
// TZ is matched case-insensitively: empty, "Z" and "UTC" read the date and clock as UTC,
// "TAI" reads them as TAI. A UTC reading of 23:59:60 is accepted on leap second days.
func (c *Converter) Parse(s string) (Time, error) {
	date, clock, zone, err := parseDateTime(s)
	if err != nil {
		return Time{}, err
	}

	if c.logger != nil {
		c.logger.Debug(logMsgParsed, logAttrInput, s, logAttrTimeZone, zone)
	}

	if zone == timeZoneTAI {
		if !clock.valid(false) {
			return Time{}, fmt.Errorf("%w: TAI has no leap seconds: %q", ErrInvalidClock, s)
		}

		return FromDate(date, clock)
	}

	return c.FromUTCComponents(date, clock)
}

// parseDateTime splits the input into its date, clock and normalised time zone.
func parseDateTime(s string) (calendar.Date, Clock, string, error) {
	fields := strings.Fields(norm.NFKC.String(s))
	if len(fields) < 2 {
		return calendar.Date{}, Clock{}, "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	dateText := fields[0]
	fields = fields[1:]

	if strings.EqualFold(fields[0], bcMarker) {
		dateText += " " + bcMarker
		fields = fields[1:]
	}

	if len(fields) == 0 || len(fields) > 2 {
		return calendar.Date{}, Clock{}, "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	date, err := calendar.ParseDate(dateText)
	if err != nil {
		return calendar.Date{}, Clock{}, "", fmt.Errorf("%w: %q: %w", ErrInvalidTimeFormat, s, err)
	}

	clock, err := parseClock(fields[0])
	if err != nil {
		return calendar.Date{}, Clock{}, "", fmt.Errorf("%w: %q: %w", ErrInvalidTimeFormat, s, err)
	}

	zone := timeZoneUTC
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "z", timeZoneUTC:
		case timeZoneTAI:
			zone = timeZoneTAI
		default:
			return calendar.Date{}, Clock{}, "", fmt.Errorf("%w: %q", ErrUnknownTimeZone, fields[1])
		}
	}

	return date, clock, zone, nil
}

// parseClock reads HH:MM:SS with an optional fraction of up to nine digits.
func parseClock(s string) (Clock, error) {
	whole, fraction, hasFraction := strings.Cut(s, ".")

	parts := strings.Split(whole, ":")
	if len(parts) != 3 {
		return Clock{}, ErrInvalidClock
	}

	var nums [3]int
	for i, part := range parts {
		if len(part) != 2 || !isDigits(part) {
			return Clock{}, ErrInvalidClock
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return Clock{}, ErrInvalidClock
		}

		nums[i] = n
	}

	clock := Clock{Hour: nums[0], Minute: nums[1], Second: nums[2]}

	if hasFraction {
		if fraction == "" || len(fraction) > 9 || !isDigits(fraction) {
			return Clock{}, ErrInvalidClock
		}

		n, err := strconv.Atoi(fraction + strings.Repeat("0", 9-len(fraction)))
		if err != nil {
			return Clock{}, ErrInvalidClock
		}

		clock.Nanosecond = n
	}

	if !clock.valid(true) {
		return Clock{}, ErrInvalidClock
	}

	return clock, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
