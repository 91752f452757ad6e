// Package timeutil provides utility functions and types for working with
// calendar dates.
package timeutil

import (
	"time"
)

// KeyFormat is the layout for date keys in the history store.
const KeyFormat = time.DateOnly

type Period string

const (
	Period7Days   Period = "7days"
	Period14Days  Period = "14days"
	Period30Days  Period = "30days"
	Period90Days  Period = "90days"
	Period180Days Period = "180days"
	Period365Days Period = "365days"
)

// Range maps a period to the number of trailing days it covers.
var Range = map[Period]int{
	Period7Days:   7,
	Period14Days:  14,
	Period30Days:  30,
	Period90Days:  90,
	Period180Days: 180,
	Period365Days: 365,
}

var PeriodCollection = []Period{
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
// It is always derived from the date, never stored.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ToKey converts a time value to a date key for the history store.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(KeyFormat))
}

// FromKey parses a history store key back into a date.
func FromKey(key []byte) (time.Time, error) {
	return time.Parse(KeyFormat, string(key))
}
