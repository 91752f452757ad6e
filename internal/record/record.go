// Package record defines the canonical representation of one day of
// coding activity.
package record

import (
	"time"

	"github.com/ayoisaiah/pulse/internal/timeutil"
)

// Category distinguishes real languages from the synthetic bucket the
// activity tracker emits when it cannot classify a file.
type Category string

const (
	CategoryKnown        Category = "known"
	CategoryUnclassified Category = "unclassified"
)

// UnclassifiedName is the name the provider uses for its catch-all bucket.
const UnclassifiedName = "Other"

// Language is the time attributed to a single language on a given day.
type Language struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
	Category Category      `json:"category"`
}

// Span is one uninterrupted stretch of coding activity within a day.
type Span struct {
	// StartTime is the first heartbeat of the session
	StartTime time.Time `json:"start_time"`
	// EndTime is the last heartbeat before an idle gap
	EndTime time.Time `json:"end_time"`
}

// Daily is one calendar day of activity. Date is the unique key within
// the history store.
type Daily struct {
	Date      time.Time     `json:"date"`
	Total     time.Duration `json:"total"`
	Languages []Language    `json:"languages"`
	// Sessions is only populated when the provider exposes sub-day
	// granularity. Absence means "unknown", not "none".
	Sessions []Span `json:"sessions,omitempty"`
}

// IsWeekend is derived from the date on every call so the stored value
// can never drift from the calendar.
func (d *Daily) IsWeekend() bool {
	return timeutil.IsWeekend(d.Date)
}

// KnownTotal sums the durations of all classified languages.
func (d *Daily) KnownTotal() time.Duration {
	var total time.Duration

	for _, l := range d.Languages {
		if l.Category == CategoryKnown {
			total += l.Duration
		}
	}

	return total
}

// Reconciled reports whether the day's total covers the sum of its
// classified languages. The remainder, if any, belongs to the
// unclassified bucket or to provider rounding.
func (d *Daily) Reconciled() bool {
	return d.Total >= d.KnownTotal()
}

// Equal reports whether two records are logically identical.
func (d *Daily) Equal(other *Daily) bool {
	if other == nil {
		return false
	}

	if !d.Date.Equal(other.Date) || d.Total != other.Total {
		return false
	}

	if len(d.Languages) != len(other.Languages) ||
		len(d.Sessions) != len(other.Sessions) {
		return false
	}

	for i, l := range d.Languages {
		if l != other.Languages[i] {
			return false
		}
	}

	for i, s := range d.Sessions {
		if !s.StartTime.Equal(other.Sessions[i].StartTime) ||
			!s.EndTime.Equal(other.Sessions[i].EndTime) {
			return false
		}
	}

	return true
}
