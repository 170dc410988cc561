package adapters

import "context"

// Adapter names, reported by DBAdapter.Name and accepted by configuration.
const (
	NamePGXPool = "pgx.pool"
	NameSQLDB   = "sql.db"
	NameSQLXDB  = "sqlx.db"
)

// DBAdapter defines the database operations needed by the calendar tooling.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Ping(ctx context.Context) error
	Name() string
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}
