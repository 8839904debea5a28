package utils

import "time"

// Query windows are half-open intervals [start, end), always computed in UTC.
// Conversion to local time happens at the presentation boundary only.

// DayWindow returns the UTC day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// WeekWindow returns the UTC week containing t, starting Monday 00:00.
func WeekWindow(t time.Time) (time.Time, time.Time) {
	start, _ := DayWindow(t)
	weekday := int(start.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the preceding Monday-based week
	}
	start = start.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 7)
}

// MonthWindow returns the UTC window for the given calendar month.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
