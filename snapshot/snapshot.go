// Package snapshot normalizes raw provider payloads into canonical
// daily records.
package snapshot

import (
	"sort"
	"time"

	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/internal/timeutil"
)

// Total is a provider duration total.
type Total struct {
	TotalSeconds float64 `json:"total_seconds"`
}

// Language is one language bucket as reported by the provider. The same
// name may appear in several buckets when the payload is split into
// sub-daily slices.
type Language struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}

// Session is one merged stretch of activity reported by the provider.
type Session struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Raw is one provider response describing activity for a single
// calendar date.
type Raw struct {
	Date       string     `json:"date"`
	GrandTotal Total      `json:"grand_total"`
	Languages  []Language `json:"languages"`
	Sessions   []Session  `json:"sessions,omitempty"`
}

// Normalize converts a raw payload for the requested date into a daily
// record. Zero-duration languages are dropped, sub-daily buckets are
// summed, and the provider's catch-all bucket is tagged as unclassified
// so later stages can filter it without string comparisons.
//
// A negative duration or a payload date that differs from the requested
// date indicates a provider or clock inconsistency and fails with
// ErrMalformed rather than being corrected.
func Normalize(raw *Raw, date time.Time) (*record.Daily, error) {
	payloadDate, err := time.ParseInLocation(
		timeutil.KeyFormat,
		raw.Date,
		date.Location(),
	)
	if err != nil {
		return nil, ErrMalformed.Wrap(err)
	}

	if !timeutil.SameDay(payloadDate, date) {
		return nil, errDateMismatch.Fmt(
			raw.Date,
			date.Format(timeutil.KeyFormat),
		)
	}

	if raw.GrandTotal.TotalSeconds < 0 {
		return nil, errNegativeDuration
	}

	totals := make(map[string]time.Duration)

	for _, lang := range raw.Languages {
		if lang.TotalSeconds < 0 {
			return nil, errNegativeDuration
		}

		if lang.TotalSeconds == 0 {
			continue
		}

		totals[lang.Name] += time.Duration(
			lang.TotalSeconds * float64(time.Second),
		)
	}

	languages := make([]record.Language, 0, len(totals))

	for name, dur := range totals {
		category := record.CategoryKnown
		if name == record.UnclassifiedName {
			category = record.CategoryUnclassified
		}

		languages = append(languages, record.Language{
			Name:     name,
			Duration: dur,
			Category: category,
		})
	}

	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Duration != languages[j].Duration {
			return languages[i].Duration > languages[j].Duration
		}

		return languages[i].Name < languages[j].Name
	})

	sessions := make([]record.Span, 0, len(raw.Sessions))

	for _, sess := range raw.Sessions {
		if sess.EndTime.Before(sess.StartTime) {
			return nil, errNegativeDuration
		}

		sessions = append(sessions, record.Span{
			StartTime: sess.StartTime,
			EndTime:   sess.EndTime,
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	if len(sessions) == 0 {
		sessions = nil
	}

	return &record.Daily{
		Date:      timeutil.RoundToStart(date),
		Total:     time.Duration(raw.GrandTotal.TotalSeconds * float64(time.Second)),
		Languages: languages,
		Sessions:  sessions,
	}, nil
}
