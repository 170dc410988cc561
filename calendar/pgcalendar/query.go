package pgcalendar

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/sunangle/millennium-calendar-go/calendar"
)

const (
	dialectPostgres = "postgres"
	castDate        = "?::date"
	epochDateSQL    = "DATE '2000-03-01'"
	seriesAlias     = "mdn"
	extractYear     = "EXTRACT(YEAR FROM " + epochDateSQL + " + ?)::int"
	extractMonth    = "EXTRACT(MONTH FROM " + epochDateSQL + " + ?)::int"
	extractDay      = "EXTRACT(DAY FROM " + epochDateSQL + " + ?)::int"
	generateSeries  = "generate_series(?::int, ?::int)"
)

// DateLiteral renders d as a PostgreSQL date literal expression.
func DateLiteral(d calendar.Date) exp.LiteralExpression {
	return goqu.L(castDate, d.String())
}

// MdnExpression returns the day number of a date column, i.e. column - DATE '2000-03-01'.
func MdnExpression(column string) exp.LiteralExpression {
	return goqu.L("? - "+epochDateSQL, goqu.C(column))
}

// DateBetween matches rows whose date column lies in [from, to].
func DateBetween(column string, from, to calendar.Date) exp.RangeExpression {
	return goqu.C(column).Between(exp.NewRangeVal(DateLiteral(from), DateLiteral(to)))
}

// DateOnOrAfter matches rows whose date column is on or after d.
func DateOnOrAfter(column string, d calendar.Date) exp.BooleanExpression {
	return goqu.C(column).Gte(DateLiteral(d))
}

// DateBefore matches rows whose date column is before d.
func DateBefore(column string, d calendar.Date) exp.BooleanExpression {
	return goqu.C(column).Lt(DateLiteral(d))
}

// buildVerifyQuery selects, for every day number in [from, to], the number itself and the
// Gregorian year, month and day PostgreSQL computes for it.
func buildVerifyQuery(from, to calendar.Mdn) (string, error) {
	mdn := goqu.C(seriesAlias)

	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(goqu.L(generateSeries, int32(from), int32(to)).As(seriesAlias)).
		Select(
			mdn,
			goqu.L(extractYear, mdn),
			goqu.L(extractMonth, mdn),
			goqu.L(extractDay, mdn),
		).
		Order(mdn.Asc()).
		ToSQL()

	if err != nil {
		return "", err
	}

	return sqlQuery, nil
}
