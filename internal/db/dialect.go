package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Dialect captures the placeholder differences between SQLite and Postgres.
// Repositories always write queries with ? placeholders.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Rebind rewrites ? placeholders into $1, $2, ... for Postgres. Question
// marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Wrap returns a DBTX that rebinds every query for the dialect.
func (d Dialect) Wrap(conn DBTX) DBTX {
	if d != DialectPostgres {
		return conn
	}
	return &reboundDBTX{conn: conn, dialect: d}
}

type reboundDBTX struct {
	conn    DBTX
	dialect Dialect
}

func (r *reboundDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.conn.ExecContext(ctx, r.dialect.Rebind(query), args...)
}

func (r *reboundDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.conn.QueryContext(ctx, r.dialect.Rebind(query), args...)
}

func (r *reboundDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return r.conn.QueryRowContext(ctx, r.dialect.Rebind(query), args...)
}
