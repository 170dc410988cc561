package pgcalendar_test

import (
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunangle/millennium-calendar-go/calendar/pgcalendar"
	. "github.com/sunangle/millennium-calendar-go/testutil/helper" //nolint:revive
)

func Test_DateBetween(t *testing.T) {
	// act
	sqlQuery, _, err := goqu.Dialect("postgres").
		From("holidays").
		Where(pgcalendar.DateBetween("day", GivenDate(t, -44, 3, 15), GivenDate(t, 2000, 3, 31))).
		ToSQL()

	// assert
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "holidays" WHERE ("day" BETWEEN '0044-03-15 BC'::date AND '2000-03-31'::date)`,
		sqlQuery)
}

func Test_DateOnOrAfter_DateBefore(t *testing.T) {
	sqlQuery, _, err := goqu.Dialect("postgres").
		From("holidays").
		Where(
			pgcalendar.DateOnOrAfter("day", GivenDate(t, 2024, 1, 1)),
			pgcalendar.DateBefore("day", GivenDate(t, 2025, 1, 1)),
		).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "holidays" WHERE (("day" >= '2024-01-01'::date) AND ("day" < '2025-01-01'::date))`,
		sqlQuery)
}

func Test_MdnExpression(t *testing.T) {
	sqlQuery, _, err := goqu.Dialect("postgres").
		From("holidays").
		Select(pgcalendar.MdnExpression("day")).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, `SELECT "day" - DATE '2000-03-01' FROM "holidays"`, sqlQuery)
}

func Test_BuildVerifyQuery(t *testing.T) {
	sqlQuery, err := pgcalendar.BuildVerifyQuery(-10, 5)

	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "mdn", `+
			`EXTRACT(YEAR FROM DATE '2000-03-01' + "mdn")::int, `+
			`EXTRACT(MONTH FROM DATE '2000-03-01' + "mdn")::int, `+
			`EXTRACT(DAY FROM DATE '2000-03-01' + "mdn")::int `+
			`FROM generate_series(-10::int, 5::int) AS "mdn" ORDER BY "mdn" ASC`,
		sqlQuery)
}
