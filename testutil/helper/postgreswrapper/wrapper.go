package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
	"github.com/sunangle/millennium-calendar-go/internal/adapters"
	"github.com/sunangle/millennium-calendar-go/testutil/postgres/config"
)

// EnvAdapter names the environment variable selecting the adapter; empty means pgx.pool.
const EnvAdapter = "MDNCAL_TEST_ADAPTER"

const (
	createDateTable = "CREATE TABLE %s (id integer PRIMARY KEY, day date)"
	dropDateTable   = "DROP TABLE IF EXISTS %s"
	insertDate      = "INSERT INTO %s (id, day) VALUES ($1, $2)"
	selectDate      = "SELECT day FROM %s WHERE id = $1"
)

// Wrapper abstracts over the database adapters a Verifier can be built from.
type Wrapper interface {
	GetVerifier() pgcalendar.Verifier
	Name() string
	Exec(t testing.TB, query string, args ...any)
	InsertDate(t testing.TB, table string, id int, d pgcalendar.Date)
	SelectDate(t testing.TB, table string, id int) pgcalendar.Date
	Count(t testing.TB, query string) int
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool     *pgxpool.Pool
	verifier pgcalendar.Verifier
}

func (w *PGXPoolWrapper) GetVerifier() pgcalendar.Verifier {
	return w.verifier
}

func (w *PGXPoolWrapper) Name() string {
	return adapters.NamePGXPool
}

func (w *PGXPoolWrapper) Exec(t testing.TB, query string, args ...any) {
	t.Helper()

	_, err := w.pool.Exec(context.Background(), query, args...)
	require.NoError(t, err)
}

func (w *PGXPoolWrapper) InsertDate(t testing.TB, table string, id int, d pgcalendar.Date) {
	t.Helper()

	w.Exec(t, fmt.Sprintf(insertDate, table), id, d)
}

func (w *PGXPoolWrapper) SelectDate(t testing.TB, table string, id int) pgcalendar.Date {
	t.Helper()

	var d pgcalendar.Date
	err := w.pool.QueryRow(context.Background(), fmt.Sprintf(selectDate, table), id).Scan(&d)
	require.NoError(t, err)

	return d
}

func (w *PGXPoolWrapper) Count(t testing.TB, query string) int {
	t.Helper()

	var cnt int
	err := w.pool.QueryRow(context.Background(), query).Scan(&cnt)
	require.NoError(t, err)

	return cnt
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing.
type SQLDBWrapper struct {
	db       *sql.DB
	verifier pgcalendar.Verifier
}

func (w *SQLDBWrapper) GetVerifier() pgcalendar.Verifier {
	return w.verifier
}

func (w *SQLDBWrapper) Name() string {
	return adapters.NameSQLDB
}

func (w *SQLDBWrapper) Exec(t testing.TB, query string, args ...any) {
	t.Helper()

	_, err := w.db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}

func (w *SQLDBWrapper) InsertDate(t testing.TB, table string, id int, d pgcalendar.Date) {
	t.Helper()

	w.Exec(t, fmt.Sprintf(insertDate, table), id, d)
}

func (w *SQLDBWrapper) SelectDate(t testing.TB, table string, id int) pgcalendar.Date {
	t.Helper()

	var d pgcalendar.Date
	err := w.db.QueryRowContext(context.Background(), fmt.Sprintf(selectDate, table), id).Scan(&d)
	require.NoError(t, err)

	return d
}

func (w *SQLDBWrapper) Count(t testing.TB, query string) int {
	t.Helper()

	var cnt int
	err := w.db.QueryRowContext(context.Background(), query).Scan(&cnt)
	require.NoError(t, err)

	return cnt
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing.
type SQLXWrapper struct {
	db       *sqlx.DB
	verifier pgcalendar.Verifier
}

func (w *SQLXWrapper) GetVerifier() pgcalendar.Verifier {
	return w.verifier
}

func (w *SQLXWrapper) Name() string {
	return adapters.NameSQLXDB
}

func (w *SQLXWrapper) Exec(t testing.TB, query string, args ...any) {
	t.Helper()

	_, err := w.db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}

func (w *SQLXWrapper) InsertDate(t testing.TB, table string, id int, d pgcalendar.Date) {
	t.Helper()

	w.Exec(t, fmt.Sprintf(insertDate, table), id, d)
}

func (w *SQLXWrapper) SelectDate(t testing.TB, table string, id int) pgcalendar.Date {
	t.Helper()

	var d pgcalendar.Date
	err := w.db.GetContext(context.Background(), &d, fmt.Sprintf(selectDate, table), id)
	require.NoError(t, err)

	return d
}

func (w *SQLXWrapper) Count(t testing.TB, query string) int {
	t.Helper()

	var cnt int
	err := w.db.GetContext(context.Background(), &cnt, query)
	require.NoError(t, err)

	return cnt
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// AdapterNames lists every adapter a wrapper can be created for.
func AdapterNames() []string {
	return []string{adapters.NamePGXPool, adapters.NameSQLDB, adapters.NameSQLXDB}
}

// CreateWrapperWithTestConfig creates the wrapper selected by the environment variable.
// The test is skipped when no test database is configured.
func CreateWrapperWithTestConfig(t testing.TB, options ...pgcalendar.Option) Wrapper {
	t.Helper()

	return CreateWrapper(t, strings.ToLower(os.Getenv(EnvAdapter)), options...)
}

// CreateWrapper creates the wrapper for the named adapter; empty means pgx.pool.
// The test is skipped when no test database is configured. The connection is closed on test cleanup.
func CreateWrapper(t testing.TB, adapterName string, options ...pgcalendar.Option) Wrapper {
	t.Helper()

	dsn := config.SkipWithoutPostgres(t)

	var wrapper Wrapper

	switch adapterName {
	case adapters.NamePGXPool, "":
		pool := config.PostgresPGXPoolTest(t, dsn)
		verifier, err := pgcalendar.NewVerifierFromPGXPool(pool, options...)
		require.NoError(t, err)

		wrapper = &PGXPoolWrapper{pool: pool, verifier: verifier}

	case adapters.NameSQLDB:
		db := config.PostgresSQLDBTest(t, dsn)
		verifier, err := pgcalendar.NewVerifierFromSQLDB(db, options...)
		require.NoError(t, err)

		wrapper = &SQLDBWrapper{db: db, verifier: verifier}

	case adapters.NameSQLXDB:
		db := config.PostgresSQLXTest(t, dsn)
		verifier, err := pgcalendar.NewVerifierFromSQLX(db, options...)
		require.NoError(t, err)

		wrapper = &SQLXWrapper{db: db, verifier: verifier}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterName))
	}

	t.Cleanup(wrapper.Close)

	return wrapper
}

// CreateDateTable creates a scratch table with an integer id and a date column, dropped on cleanup.
func CreateDateTable(t testing.TB, wrapper Wrapper, table string) {
	t.Helper()

	wrapper.Exec(t, fmt.Sprintf(createDateTable, table))
	t.Cleanup(func() {
		wrapper.Exec(t, fmt.Sprintf(dropDateTable, table))
	})
}
