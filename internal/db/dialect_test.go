package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	cases := []struct {
		dialect Dialect
		in      string
		want    string
	}{
		{DialectSQLite, `SELECT * FROM cows WHERE id = ?`, `SELECT * FROM cows WHERE id = ?`},
		{DialectPostgres, `SELECT * FROM cows WHERE id = ?`, `SELECT * FROM cows WHERE id = $1`},
		{DialectPostgres, `UPDATE cows SET status = ?, updated_at = ? WHERE id = ?`,
			`UPDATE cows SET status = $1, updated_at = $2 WHERE id = $3`},
		{DialectPostgres, `SELECT '?' AS q, id FROM cows WHERE id = ?`, `SELECT '?' AS q, id FROM cows WHERE id = $1`},
		{DialectPostgres, `SELECT 1`, `SELECT 1`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.dialect.Rebind(tc.in), tc.in)
	}
}

func TestWrap_SQLiteIsPassthrough(t *testing.T) {
	d := openTestDB(t)
	assert.Same(t, d.SQL, DialectSQLite.Wrap(d.SQL))
}
