package config

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/require"
)

// PostgresSQLDBTest opens a configured *sql.DB on the test database using lib/pq.
func PostgresSQLDBTest(t testing.TB, dsn string) *sql.DB {
	t.Helper()

	const defaultMaxOpenConnections = 4
	const defaultMaxIdleConnections = 1
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "failed to open database connection")

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	require.NoError(t, db.PingContext(context.Background()), "failed to ping database")

	return db
}
