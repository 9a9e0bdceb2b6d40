package accounting

import "time"

// CalendarDay truncates t to midnight UTC of its calendar date.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OpeningCutoff returns the as-of date whose closing balances are the opening
// balances of a period starting on from, i.e. the previous calendar day.
func OpeningCutoff(from time.Time) time.Time {
	return CalendarDay(from).AddDate(0, 0, -1)
}
