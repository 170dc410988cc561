// Package config provides PostgreSQL connections for the database-backed tests.
//
// The tests run against the server named by MDNCAL_TEST_POSTGRES_DSN and are skipped
// when the variable is not set. Each of the supported adapters (pgx.Pool, sql.DB, sqlx.DB)
// gets its own factory.
package config
