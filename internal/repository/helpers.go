package repository

import (
	"database/sql"
	"time"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Timestamps are stored as RFC 3339 text in UTC and calendar days as
// YYYY-MM-DD, so both dialects sort them lexically.
const stampLayout = time.RFC3339

func stamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(stampLayout)
}

func parseStamp(s string) time.Time {
	t, _ := time.Parse(stampLayout, s)
	return t
}

func formatOptional(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// parseOptional yields nil for NULL, empty, or unparseable columns.
func parseOptional(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func orNull[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func ptrOf[T any](v sql.Null[T]) *T {
	if !v.Valid {
		return nil
	}
	return &v.V
}

// positiveOrNull stores an unset capacity ratio as NULL.
func positiveOrNull(v float64) any {
	if v > 0 {
		return v
	}
	return nil
}

func textOrNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
