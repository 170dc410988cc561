// Package adapters lets the PostgreSQL tooling run on pgxpool.Pool, sql.DB or sqlx.DB.
//
// All adapters expose the same small DBAdapter interface, so callers build SQL once and stay
// independent of the connection library the application already uses.
package adapters
