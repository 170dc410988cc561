package pgcalendar

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/sunangle/millennium-calendar-go/calendar"
	"github.com/sunangle/millennium-calendar-go/internal/adapters"
)

const (
	defaultBatchSize       = 10_000
	logMsgBuildQueryFailed = "failed to build verify query"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgCloseRowsFailed  = "failed to close database rows"
	logMsgScanRowFailed    = "failed to scan database row"
	logMsgMismatch         = "calendar mismatch between server and library"
	logMsgVerifyCompleted  = "verification completed"
	logMsgSQLExecuted      = "executed sql for: verify batch"
	logAttrError           = "error"
	logAttrQuery           = "query"
	logAttrDurationMS      = "duration_ms"
	logAttrRunID           = "run_id"
	logAttrAdapter         = "adapter"
	logAttrMdn             = "mdn"
	logAttrLocal           = "local"
	logAttrServer          = "server"
	logAttrChecked         = "checked"
	logAttrMismatches      = "mismatches"
	logAttrFrom            = "from"
	logAttrTo              = "to"
	logAttrBatchSize       = "batch_size"
)

// Verifier cross-checks the library's day numbering against PostgreSQL's own date arithmetic.
type Verifier struct {
	db               adapters.DBAdapter
	logger           Logger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
	contextualLogger ContextualLogger
	batchSize        int
}

// Mismatch is one day number for which the server and the library disagree.
type Mismatch struct {
	Mdn    calendar.Mdn
	Local  calendar.Date
	Server calendar.Date
}

// Report summarizes one verification run.
type Report struct {
	RunID      uuid.UUID
	Adapter    string
	From       calendar.Date
	To         calendar.Date
	Checked    int
	Mismatches []Mismatch
	Duration   time.Duration
}

// OK reports whether every checked day matched.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

type verifyRow struct {
	mdn   int32
	year  int32
	month int32
	day   int32
}

// NewVerifierFromPGXPool creates a new Verifier using a pgx Pool with optional configuration.
func NewVerifierFromPGXPool(db *pgxpool.Pool, options ...Option) (Verifier, error) {
	if db == nil {
		return Verifier{}, ErrNilDatabaseConnection
	}

	return newVerifier(adapters.NewPGXAdapter(db), options...)
}

// NewVerifierFromSQLDB creates a new Verifier using a sql.DB with optional configuration.
func NewVerifierFromSQLDB(db *sql.DB, options ...Option) (Verifier, error) {
	if db == nil {
		return Verifier{}, ErrNilDatabaseConnection
	}

	return newVerifier(adapters.NewSQLAdapter(db), options...)
}

// NewVerifierFromSQLX creates a new Verifier using a sqlx.DB with optional configuration.
func NewVerifierFromSQLX(db *sqlx.DB, options ...Option) (Verifier, error) {
	if db == nil {
		return Verifier{}, ErrNilDatabaseConnection
	}

	return newVerifier(adapters.NewSQLXAdapter(db), options...)
}

func newVerifier(db adapters.DBAdapter, options ...Option) (Verifier, error) {
	v := Verifier{
		db:        db,
		batchSize: defaultBatchSize,
	}

	for _, option := range options {
		if err := option(&v); err != nil {
			return Verifier{}, err
		}
	}

	return v, nil
}

// Adapter returns the name of the database adapter in use.
func (v Verifier) Adapter() string {
	return v.db.Name()
}

// Ping checks that the database is reachable.
func (v Verifier) Ping(ctx context.Context) error {
	if err := v.db.Ping(ctx); err != nil {
		return errors.Join(ErrQueryingDatabaseFailed, err)
	}

	return nil
}

// Verify asks the server for the year, month and day of every day number from..to
// and compares them with the library's decoding. Mismatches are reported, not returned as errors.
func (v Verifier) Verify(ctx context.Context, from, to calendar.Date) (Report, error) {
	start := time.Now()
	tracing, ctx := v.startVerifyTracing(ctx)
	metrics := v.startVerifyMetrics(ctx)

	report, err := v.verify(ctx, from, to, tracing)
	if err != nil {
		errorType := classifyError(err)
		tracing.finishError(errorType, time.Since(start))
		metrics.recordError(errorType, time.Since(start))

		return Report{}, err
	}

	report.Duration = time.Since(start)
	tracing.finishSuccess(report)
	metrics.recordSuccess(report)

	v.logInfo(
		ctx,
		logMsgVerifyCompleted,
		logAttrRunID, report.RunID.String(),
		logAttrAdapter, report.Adapter,
		logAttrFrom, report.From.String(),
		logAttrTo, report.To.String(),
		logAttrChecked, report.Checked,
		logAttrMismatches, len(report.Mismatches),
		logAttrBatchSize, v.batchSize,
		logAttrDurationMS, durationToMilliseconds(report.Duration),
	)

	return report, nil
}

func (v Verifier) verify(ctx context.Context, from, to calendar.Date, tracing verifyTracingObserver) (Report, error) {
	lo, err := from.Mdn()
	if err != nil {
		return Report{}, err
	}

	hi, err := to.Mdn()
	if err != nil {
		return Report{}, err
	}

	if hi < lo {
		return Report{}, ErrInvalidRange
	}

	if err := checkRepresentable(lo, hi); err != nil {
		return Report{}, err
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:   runID,
		Adapter: v.db.Name(),
		From:    lo.Date(),
		To:      hi.Date(),
	}
	tracing.annotateRun(report, lo.Int32(), hi.Int32())

	for batchStart := int64(lo); batchStart <= int64(hi); batchStart += int64(v.batchSize) {
		batchEnd := min(batchStart+int64(v.batchSize)-1, int64(hi))

		if err := v.verifyBatch(ctx, calendar.Mdn(batchStart), calendar.Mdn(batchEnd), &report); err != nil {
			return Report{}, err
		}
	}

	return report, nil
}

func (v Verifier) verifyBatch(ctx context.Context, lo, hi calendar.Mdn, report *Report) (err error) {
	ctx, span := v.startBatchSpan(ctx, lo.Int32(), hi.Int32())
	defer func() { v.finishBatchSpan(span, err) }()

	sqlQuery, buildErr := buildVerifyQuery(lo, hi)
	if buildErr != nil {
		v.logError(ctx, logMsgBuildQueryFailed, buildErr)
		return errors.Join(ErrBuildingQueryFailed, buildErr)
	}

	rows, queryErr := v.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		return queryErr
	}
	defer v.closeRows(ctx, rows)

	return v.processQueryResults(ctx, rows, report)
}

// executeQuery executes the SQL query and logs it with timing information.
func (v Verifier) executeQuery(ctx context.Context, sqlQuery string) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := v.db.Query(ctx, sqlQuery)
	duration := time.Since(start)

	v.logDebug(ctx, logMsgSQLExecuted, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	v.recordQueryDuration(ctx, duration, queryErr)

	if queryErr != nil {
		v.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return nil, errors.Join(ErrQueryingDatabaseFailed, queryErr)
	}

	return rows, nil
}

// closeRows safely closes database rows and logs any errors.
func (v Verifier) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		v.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func (v Verifier) processQueryResults(ctx context.Context, rows adapters.DBRows, report *Report) error {
	row := verifyRow{}

	for rows.Next() {
		if scanErr := rows.Scan(&row.mdn, &row.year, &row.month, &row.day); scanErr != nil {
			v.logError(ctx, logMsgScanRowFailed, scanErr)
			return errors.Join(ErrScanningDBRowFailed, scanErr)
		}

		report.Checked++

		if mismatch, ok := compareRow(row); !ok {
			report.Mismatches = append(report.Mismatches, mismatch)

			v.logWarn(
				ctx,
				logMsgMismatch,
				logAttrRunID, report.RunID.String(),
				logAttrMdn, mismatch.Mdn.Int32(),
				logAttrLocal, mismatch.Local.String(),
				logAttrServer, mismatch.Server.String(),
			)
		}
	}

	if err := rows.Err(); err != nil {
		v.logError(ctx, logMsgScanRowFailed, err)
		return errors.Join(ErrScanningDBRowFailed, err)
	}

	return nil
}

// compareRow checks the server's decoding of row.mdn in both directions:
// the library must decode the number to the same date and encode the date back to the same number.
func compareRow(row verifyRow) (Mismatch, bool) {
	n := calendar.Mdn(row.mdn)
	server := calendar.Date{
		Year:  calendar.GregorianYear(row.year),
		Month: calendar.Month(row.month),
		Day:   calendar.Day(row.day),
	}
	mismatch := Mismatch{Mdn: n, Server: server}

	if !n.Valid() {
		return mismatch, false
	}

	mismatch.Local = n.Date()
	if mismatch.Local != server {
		return mismatch, false
	}

	encoded, err := calendar.MdnFromGYMD(row.year, row.month, row.day)
	if err != nil || encoded != n {
		return mismatch, false
	}

	return mismatch, true
}
