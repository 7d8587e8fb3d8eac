package domain

import "time"

// DateLayout is the calendar-day format used for due dates everywhere.
const DateLayout = "2006-01-02"

// CivilDay returns midnight UTC of t's calendar date, read in t's own location.
// Two instants on the same local day map to the same CivilDay.
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return CivilDay(a).Equal(CivilDay(b))
}

// AddDays offsets a calendar day by n days.
func AddDays(t time.Time, n int) time.Time {
	return CivilDay(t).AddDate(0, 0, n)
}

// ParseDate parses a YYYY-MM-DD string into a CivilDay.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return CivilDay(t), nil
}
