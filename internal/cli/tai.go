package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/tai"
	"github.com/sunangle/millennium-calendar-go/internal/config"
)

var taiCmd = &cobra.Command{
	Use:   "tai [YYYY-MM-DD[ BC] HH:MM:SS[.fff] [UTC|Z|TAI]]",
	Short: "Convert a UTC or TAI reading, or the current time, to TAI",
	Long: "tai reads a date and clock reading, UTC unless marked TAI, and prints it in TAI and UTC " +
		"together with the TAI-UTC offset in effect. Without arguments it converts the current time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		conv, err := newConverter(cfg, logger)
		if err != nil {
			return err
		}

		return runTAI(cmd.OutOrStdout(), cfg.Output, conv, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(taiCmd)
}

// newConverter builds a converter with the configured leap second table.
func newConverter(cfg config.Config, logger *slog.Logger, options ...tai.Option) (*tai.Converter, error) {
	options = append(options, tai.WithLogger(logger))

	if cfg.LeapSeconds.File != "" {
		table, err := tai.LoadLeapSecondFile(cfg.LeapSeconds.File)
		if err != nil {
			return nil, err
		}

		options = append(options, tai.WithLeapSecondTable(table))
	}

	return tai.NewConverter(options...)
}

type taiResult struct {
	Input         string       `json:"input,omitempty"`
	TAI           string       `json:"tai"`
	UTC           string       `json:"utc"`
	Mdn           calendar.Mdn `json:"mdn"`
	OffsetSeconds int          `json:"offset_seconds"`
	Exact         bool         `json:"exact"`
}

func (r taiResult) writeText(w io.Writer) error {
	note := ""
	if !r.Exact {
		note = " (approximate)"
	}

	_, err := fmt.Fprintf(w, "%s\n%s\nTAI-UTC %ds%s\n", r.TAI, r.UTC, r.OffsetSeconds, note)

	return err
}

func runTAI(w io.Writer, format string, conv *tai.Converter, input string) error {
	var (
		t   tai.Time
		err error
	)

	if strings.TrimSpace(input) == "" {
		t, err = conv.Now()
	} else {
		t, err = conv.Parse(input)
	}

	if err != nil {
		return err
	}

	utcDate, utcClock, err := conv.UTCComponents(t)
	if err != nil {
		return err
	}

	utcDay, err := utcDate.Mdn()
	if err != nil {
		return err
	}

	offset, exact := conv.OffsetAt(utcDay)

	return writeResult(w, format, taiResult{
		Input:         strings.TrimSpace(input),
		TAI:           t.String(),
		UTC:           fmt.Sprintf("%s %s UTC", utcDate, utcClock),
		Mdn:           t.Day(),
		OffsetSeconds: offset,
		Exact:         exact,
	})
}
