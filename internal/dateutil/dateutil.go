// Package dateutil provides date parsing and week arithmetic.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeekday    = errors.New("unknown weekday name")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseWeekday parses a weekday name, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return time.Sunday, ErrInvalidWeekday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the most recent occurrence of startDay on or before t,
// truncated to midnight. It anchors the visible week for any configured
// first day.
func WeekStart(t time.Time, startDay time.Weekday) time.Time {
	t = TruncateToDay(t)
	offset := int(t.Weekday()) - int(startDay)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

// DayIndex returns the 0-based column of date within the week anchored at
// weekStart, or -1 if the date falls outside that week.
func DayIndex(date, weekStart time.Time) int {
	date = TruncateToDay(date)
	weekStart = TruncateToDay(weekStart)
	days := int(date.Sub(weekStart).Hours() / 24)
	if days < 0 || days > 6 {
		return -1
	}
	return days
}

// WeekLabel formats the week as "Jan 2 - Jan 8, 2006" for headers and
// clipboard exports.
func WeekLabel(weekStart time.Time) string {
	end := weekStart.AddDate(0, 0, 6)
	if weekStart.Year() != end.Year() {
		return weekStart.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
	}
	return weekStart.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}
