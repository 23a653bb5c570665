// Package dateutil provides the calendar-date arithmetic the planner is
// built on. All dates are local calendar dates normalized to midnight;
// there is no time-of-day component anywhere in the planner.
package dateutil

import "time"

const ymdLayout = "2006-01-02"

// Normalize strips the time-of-day component, keeping the local date.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current local calendar date.
func Today() time.Time {
	return Normalize(time.Now())
}

// FormatYMD renders a date as yyyy-MM-dd.
func FormatYMD(t time.Time) string {
	return t.Format(ymdLayout)
}

// ParseYMD parses a yyyy-MM-dd string into a local calendar date.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ymdLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t.AddDate(0, 0, n))
}

// AddWeeks shifts a date by n weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return AddDays(t, n*7)
}

// DaysBetween returns the number of calendar days from a to b,
// negative when b is before a. The count goes through UTC midnights so
// DST transitions cannot skew it.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// DaysBetweenInclusive counts both endpoints, so a == b yields 1.
func DaysBetweenInclusive(a, b time.Time) int {
	return DaysBetween(a, b) + 1
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return AddDays(StartOfMonth(t).AddDate(0, 1, 0), -1)
}

// WithinInterval reports whether d falls in [start, end], inclusive.
func WithinInterval(d, start, end time.Time) bool {
	d = Normalize(d)
	return !d.Before(Normalize(start)) && !d.After(Normalize(end))
}

// MonthGrid returns one date per visible cell of the month view:
// the Sunday on/before the first of the month through the Saturday
// on/after the last day. The result length is always a multiple of 7
// and the sequence is contiguous. month0 is zero-based, matching
// time.Month-1.
func MonthGrid(year, month0 int) []time.Time {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.Local)
	last := EndOfMonth(first)

	gridStart := AddDays(first, -int(first.Weekday()))
	gridEnd := AddDays(last, 6-int(last.Weekday()))

	total := DaysBetweenInclusive(gridStart, gridEnd)
	days := make([]time.Time, 0, total)
	for i := 0; i < total; i++ {
		days = append(days, AddDays(gridStart, i))
	}
	return days
}
