package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
	"github.com/sunangle/millennium-calendar-go/internal/adapters"
	"github.com/sunangle/millennium-calendar-go/internal/config"
)

const (
	defaultVerifyFrom      = "1900-01-01"
	defaultVerifyTo        = "2100-12-31"
	defaultVerifyBatchSize = 10_000
	logMsgCloseDBFailed    = "failed to close database connection"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check day numbers against PostgreSQL's date arithmetic",
	Long: "verify asks PostgreSQL for the year, month and day of every day number in a range " +
		"and compares them with this library's calendar. It fails if any day disagrees.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		batchSize, _ := cmd.Flags().GetInt("batch-size")

		return runVerify(cmd.Context(), cmd.OutOrStdout(), cfg, logger, from, to, batchSize)
	},
}

func init() {
	flags := verifyCmd.Flags()
	flags.String("from", defaultVerifyFrom, "first date to check")
	flags.String("to", defaultVerifyTo, "last date to check")
	flags.Int("batch-size", defaultVerifyBatchSize, "days checked per query")
	flags.String("dsn", "", "PostgreSQL connection string")
	flags.String("adapter", "", "database adapter: pgx.pool, sql.db or sqlx.db")

	_ = viper.BindPFlag("postgres.dsn", flags.Lookup("dsn"))
	_ = viper.BindPFlag("postgres.adapter", flags.Lookup("adapter"))

	rootCmd.AddCommand(verifyCmd)
}

// openVerifier connects with the configured adapter. The returned function closes the connection.
func openVerifier(
	ctx context.Context,
	cfg config.PostgresConfig,
	options ...pgcalendar.Option,
) (pgcalendar.Verifier, func() error, error) {

	if cfg.DSN == "" {
		return pgcalendar.Verifier{}, nil, ErrMissingDSN
	}

	switch cfg.Adapter {
	case adapters.NameSQLDB:
		db, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return pgcalendar.Verifier{}, nil, err
		}

		verifier, err := pgcalendar.NewVerifierFromSQLDB(db, options...)
		if err != nil {
			return pgcalendar.Verifier{}, nil, errors.Join(err, db.Close())
		}

		return verifier, db.Close, nil

	case adapters.NameSQLXDB:
		db, err := sqlx.Open("postgres", cfg.DSN)
		if err != nil {
			return pgcalendar.Verifier{}, nil, err
		}

		verifier, err := pgcalendar.NewVerifierFromSQLX(db, options...)
		if err != nil {
			return pgcalendar.Verifier{}, nil, errors.Join(err, db.Close())
		}

		return verifier, db.Close, nil

	default:
		pool, err := pgxpool.New(ctx, cfg.DSN)
		if err != nil {
			return pgcalendar.Verifier{}, nil, err
		}

		verifier, err := pgcalendar.NewVerifierFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return pgcalendar.Verifier{}, nil, err
		}

		closePool := func() error {
			pool.Close()
			return nil
		}

		return verifier, closePool, nil
	}
}

type mismatchResult struct {
	Mdn    calendar.Mdn `json:"mdn"`
	Local  string       `json:"local"`
	Server string       `json:"server"`
}

type verifyResult struct {
	RunID      string           `json:"run_id"`
	Adapter    string           `json:"adapter"`
	From       calendar.Date    `json:"from"`
	To         calendar.Date    `json:"to"`
	Checked    int              `json:"checked"`
	Mismatches []mismatchResult `json:"mismatches"`
	DurationMS int64            `json:"duration_ms"`
	OK         bool             `json:"ok"`
}

func newVerifyResult(report pgcalendar.Report) verifyResult {
	r := verifyResult{
		RunID:      report.RunID.String(),
		Adapter:    report.Adapter,
		From:       report.From,
		To:         report.To,
		Checked:    report.Checked,
		Mismatches: make([]mismatchResult, 0, len(report.Mismatches)),
		DurationMS: report.Duration.Milliseconds(),
		OK:         report.OK(),
	}

	for _, m := range report.Mismatches {
		r.Mismatches = append(r.Mismatches, mismatchResult{
			Mdn:    m.Mdn,
			Local:  m.Local.String(),
			Server: m.Server.String(),
		})
	}

	return r
}

func (r verifyResult) writeText(w io.Writer) error {
	status := "OK"
	if !r.OK {
		status = fmt.Sprintf("%d MISMATCHES", len(r.Mismatches))
	}

	if _, err := fmt.Fprintf(w, "run %s via %s: checked %d days from %s to %s in %s: %s\n",
		r.RunID, r.Adapter, r.Checked, r.From, r.To, time.Duration(r.DurationMS)*time.Millisecond, status); err != nil {
		return err
	}

	for _, m := range r.Mismatches {
		if _, err := fmt.Fprintf(w, "mdn %d: library %s, server %s\n", m.Mdn, m.Local, m.Server); err != nil {
			return err
		}
	}

	return nil
}

func runVerify(
	ctx context.Context,
	w io.Writer,
	cfg config.Config,
	logger *slog.Logger,
	fromArg, toArg string,
	batchSize int,
) error {

	from, err := calendar.ParseDate(fromArg)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}

	to, err := calendar.ParseDate(toArg)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	verifier, closeDB, err := openVerifier(ctx, cfg.Postgres, pgcalendar.WithLogger(logger), pgcalendar.WithBatchSize(batchSize))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeDB(); closeErr != nil {
			logger.Warn(logMsgCloseDBFailed, logAttrError, closeErr.Error())
		}
	}()

	report, err := verifier.Verify(ctx, from, to)
	if err != nil {
		return err
	}

	if err := writeResult(w, cfg.Output, newVerifyResult(report)); err != nil {
		return err
	}

	if !report.OK() {
		return ErrVerificationFailed
	}

	return nil
}
