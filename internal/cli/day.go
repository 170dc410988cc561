package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
)

var encodeCmd = &cobra.Command{
	Use:   "encode YYYY-MM-DD[ BC]",
	Short: "Print the day number of a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return runEncode(cmd.OutOrStdout(), cfg.Output, args[0])
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode MDN",
	Short: "Print the date of a day number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return runDecode(cmd.OutOrStdout(), cfg.Output, args[0])
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

// dayResult describes one day. encode prints its Mdn as text, decode its Date.
type dayResult struct {
	Date         calendar.Date `json:"date"`
	Mdn          calendar.Mdn  `json:"mdn"`
	Weekday      string        `json:"weekday"`
	LeapYear     bool          `json:"leap_year"`
	PostgresDays *int32        `json:"postgres_days,omitempty"`

	textDate bool
}

func newDayResult(n calendar.Mdn, textDate bool) dayResult {
	d := n.Date()
	r := dayResult{
		Date:     d,
		Mdn:      n,
		Weekday:  n.Weekday().String(),
		LeapYear: d.Year.IsLeapYear(),
		textDate: textDate,
	}

	if pgcalendar.Representable(n) {
		days := pgcalendar.PostgresDays(n)
		r.PostgresDays = &days
	}

	return r
}

func (r dayResult) writeText(w io.Writer) error {
	var err error
	if r.textDate {
		_, err = fmt.Fprintln(w, r.Date)
	} else {
		_, err = fmt.Fprintln(w, r.Mdn)
	}

	return err
}

func runEncode(w io.Writer, format string, arg string) error {
	d, err := calendar.ParseDate(arg)
	if err != nil {
		return err
	}

	n, err := d.Mdn()
	if err != nil {
		return err
	}

	return writeResult(w, format, newDayResult(n, false))
}

func runDecode(w io.Writer, format string, arg string) error {
	raw, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: day number %q", ErrInvalidArgument, arg)
	}

	n, err := calendar.NewMdn(raw)
	if err != nil {
		return err
	}

	return writeResult(w, format, newDayResult(n, true))
}
