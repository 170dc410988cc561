package pgcalendar

import "github.com/sunangle/millennium-calendar-go/internal/adapters"

// NewVerifierFromAdapter exposes the adapter-level constructor to tests.
func NewVerifierFromAdapter(db adapters.DBAdapter, options ...Option) (Verifier, error) {
	return newVerifier(db, options...)
}

// BuildVerifyQuery exposes the verify query builder to tests.
var BuildVerifyQuery = buildVerifyQuery
