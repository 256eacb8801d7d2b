package calendar

import "time"

// DayLayout is the canonical textual form of a calendar day.
const DayLayout = "2006-01-02"

// DayOf truncates t to midnight UTC so that days compare by value.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Day builds a calendar day from its components.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a day in DayLayout form.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayLayout, value)
}

// FormatDay renders a day in DayLayout form.
func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}
