package config

import (
	"os"
	"testing"
)

// EnvTestDSN names the environment variable holding the test database DSN.
const EnvTestDSN = "MDNCAL_TEST_POSTGRES_DSN"

// PostgresTestDSN returns the DSN for the test database, or "" if none is configured.
func PostgresTestDSN() string {
	return os.Getenv(EnvTestDSN)
}

// SkipWithoutPostgres skips the test unless a test database is configured and returns its DSN.
func SkipWithoutPostgres(t testing.TB) string {
	t.Helper()

	dsn := PostgresTestDSN()
	if dsn == "" {
		t.Skipf("%s not set", EnvTestDSN)
	}

	return dsn
}
