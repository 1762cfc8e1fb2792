package kernel

import "time"

// MonthWindow returns the inclusive bounds of t's calendar month in t's
// location: the first day at 00:00:00 through the last day at 23:59:59.
// Used by the monthly-capacity rules.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	year, month, _ := t.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// DayWindow returns the inclusive bounds of t's calendar day in t's location:
// 00:00:00 through 23:59:59. Used by the daily-total aggregate.
func DayWindow(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Second)
	return start, end
}
