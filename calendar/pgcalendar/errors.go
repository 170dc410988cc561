package pgcalendar

import "errors"

var (
	// ErrNilDatabaseConnection is returned when a nil database connection is supplied to a factory.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrInvalidBatchSize is returned when the verification batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrRangeNotRepresentable is returned for dates PostgreSQL cannot store.
	ErrRangeNotRepresentable = errors.New("date range not representable in PostgreSQL")

	// ErrInvalidRange is returned when a range ends before it starts.
	ErrInvalidRange = errors.New("range ends before it starts")

	// ErrInfiniteDate is returned when scanning 'infinity' or '-infinity' into a Date.
	ErrInfiniteDate = errors.New("infinite dates are not supported")

	// ErrUnsupportedScanSource is returned when a database value cannot be read as a date.
	ErrUnsupportedScanSource = errors.New("unsupported scan source for date")

	// ErrBuildingQueryFailed is returned when goqu cannot render a query.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingDatabaseFailed is returned when the database rejects a query.
	ErrQueryingDatabaseFailed = errors.New("querying database failed")

	// ErrScanningDBRowFailed is returned when a result row cannot be read.
	ErrScanningDBRowFailed = errors.New("scanning db row failed")
)
