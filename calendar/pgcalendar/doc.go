// Package pgcalendar connects calendar values to PostgreSQL.
//
// PostgreSQL stores a date as the number of days since 2000-01-01, which is an Mdn plus 60.
// Date moves calendar dates through database/sql (lib/pq, sqlx) and pgx. It is written in the
// server's own text form ("0044-03-15 BC") so dates before AD 1 keep their day numbers.
//
// The Verifier cross-checks the Mdn encoding against the server's own date arithmetic over a range
// of days. It accepts a pgxpool.Pool, a sql.DB or a sqlx.DB:
//
//	verifier, err := pgcalendar.NewVerifierFromPGXPool(pool, pgcalendar.WithLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//
//	report, err := verifier.Verify(ctx, from, to)
//
// PostgreSQL cannot represent dates before 4714-11-24 BC; ranges reaching that far are rejected with
// ErrRangeNotRepresentable.
package pgcalendar
