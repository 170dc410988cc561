package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/tai"
	"github.com/sunangle/millennium-calendar-go/internal/config"
)

const (
	logMsgWatching     = "watching leap second table"
	logMsgReloadFailed = "leap second table reload failed"
	logAttrPath        = "path"
	logAttrError       = "error"
)

var leapSecondsCmd = &cobra.Command{
	Use:   "leapseconds",
	Short: "Print the active leap second table",
	Long: "leapseconds prints the leap second table in use, in the TOML format accepted by " +
		"--leap-seconds-file. With --watch it prints the table again whenever the file changes.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		conv, err := newConverter(cfg, logger)
		if err != nil {
			return err
		}

		if err := writeLeapSeconds(cmd.OutOrStdout(), cfg.Output, conv.LeapSecondTable()); err != nil {
			return err
		}

		if !cfg.LeapSeconds.Watch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return watchLeapSeconds(ctx, cmd.OutOrStdout(), cfg, logger)
	},
}

func init() {
	leapSecondsCmd.Flags().Bool("watch", false, "print the table again whenever --leap-seconds-file changes")
	_ = viper.BindPFlag("leap_seconds.watch", leapSecondsCmd.Flags().Lookup("watch"))

	rootCmd.AddCommand(leapSecondsCmd)
}

type leapSecondsResult struct {
	KnownAsOf calendar.Date   `json:"known_as_of"`
	LeapDays  []calendar.Date `json:"leap_days"`
	Offset    int             `json:"final_offset_seconds"`

	table *tai.LeapSecondTable
}

func (r leapSecondsResult) writeText(w io.Writer) error {
	return r.table.WriteTOML(w)
}

func writeLeapSeconds(w io.Writer, format string, table *tai.LeapSecondTable) error {
	knownAsOf, err := table.KnownAsOf().Mdn()
	if err != nil {
		return err
	}

	// The offset in effect once every listed leap second has happened.
	after, err := knownAsOf.AddDays(1)
	if err != nil {
		after = knownAsOf
	}

	offset, _ := table.OffsetAt(after)

	return writeResult(w, format, leapSecondsResult{
		KnownAsOf: table.KnownAsOf(),
		LeapDays:  table.LeapDays(),
		Offset:    offset,
		table:     table,
	})
}

// watchLeapSeconds prints every successfully reloaded table until ctx is done.
func watchLeapSeconds(ctx context.Context, w io.Writer, cfg config.Config, logger *slog.Logger) error {
	logger.Info(logMsgWatching, logAttrPath, cfg.LeapSeconds.File)

	return tai.WatchLeapSecondFile(ctx, cfg.LeapSeconds.File, func(table *tai.LeapSecondTable, err error) {
		if err != nil {
			logger.Error(logMsgReloadFailed, logAttrError, err.Error(), logAttrPath, cfg.LeapSeconds.File)
			return
		}

		if err := writeLeapSeconds(w, cfg.Output, table); err != nil {
			logger.Error(logMsgReloadFailed, logAttrError, err.Error(), logAttrPath, cfg.LeapSeconds.File)
		}
	})
}
