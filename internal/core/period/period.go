// Package period buckets timestamps into calendar day, ISO week and calendar
// month keys. The hours accumulator compares consecutive events' keys to
// decide when a running total resets to zero.
package period

import (
	"fmt"
	"time"
)

// DayKey returns the containing calendar day as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey returns the containing ISO-8601 week (Monday start, the week that
// holds the year's first Thursday) as "GGGG-Www". The ISO year can differ
// from the calendar year at year boundaries, which is exactly what keeps
// weekly totals from resetting mid-week on January 1st.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey returns the containing calendar month as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
