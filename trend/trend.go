// Package trend computes rolling aggregates over the activity history
package trend

import (
	"sort"
	"time"

	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/internal/timeutil"
)

const (
	// DefaultFocusThreshold is the daily total that qualifies a day as a
	// focus session.
	DefaultFocusThreshold = 2 * time.Hour

	// DefaultMorningBoundary is the hour of day before which a focus
	// session counts as a morning session.
	DefaultMorningBoundary = 12

	// DefaultTopLanguages caps ranked language output.
	DefaultTopLanguages = 5
)

// Options control the lookback window and thresholds for a computation.
type Options struct {
	Window          int
	FocusThreshold  time.Duration
	MorningBoundary int
	TopLanguages    int
}

// LanguageTotal is the aggregate duration for one language across the
// lookback window.
type LanguageTotal struct {
	Name  string
	Total time.Duration
}

// Summary holds the derived aggregates for one lookback window. It is
// recomputed on demand and never persisted.
type Summary struct {
	Window      int
	Days        int
	WeekdayDays int
	WeekendDays int
	WeekdayAvg  time.Duration
	WeekendAvg  time.Duration
	// Languages ranks classified languages by total duration. The
	// unclassified bucket is excluded from ranking but reported
	// separately so totals still reconcile.
	Languages         []LanguageTotal
	UnclassifiedTotal time.Duration
	FocusDays         int
	// MorningFocusDays is only meaningful when MorningKnown is true.
	// Records without session spans cannot distinguish "no morning
	// activity" from "no sub-day data".
	MorningFocusDays int
	MorningKnown     bool
}

func (o Options) withDefaults() Options {
	if o.FocusThreshold <= 0 {
		o.FocusThreshold = DefaultFocusThreshold
	}

	if o.MorningBoundary <= 0 {
		o.MorningBoundary = DefaultMorningBoundary
	}

	if o.TopLanguages <= 0 {
		o.TopLanguages = DefaultTopLanguages
	}

	return o
}

// Compute derives a summary from the records whose date falls in the
// trailing window ending on today. It is pure: identical inputs always
// produce identical output, and equal-duration languages rank by name.
func Compute(
	records []record.Daily,
	today time.Time,
	opts Options,
) Summary {
	opts = opts.withDefaults()

	start := timeutil.RoundToStart(today).AddDate(0, 0, -(opts.Window - 1))
	end := timeutil.RoundToEnd(today)

	summary := Summary{
		Window:       opts.Window,
		MorningKnown: true,
	}

	var (
		weekdayTotal time.Duration
		weekendTotal time.Duration
	)

	languageTotals := make(map[string]time.Duration)

	for i := range records {
		rec := records[i]

		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}

		summary.Days++

		if rec.IsWeekend() {
			summary.WeekendDays++
			weekendTotal += rec.Total
		} else {
			summary.WeekdayDays++
			weekdayTotal += rec.Total
		}

		for _, lang := range rec.Languages {
			if lang.Category == record.CategoryUnclassified {
				summary.UnclassifiedTotal += lang.Duration
				continue
			}

			languageTotals[lang.Name] += lang.Duration
		}

		if rec.Total < opts.FocusThreshold {
			continue
		}

		summary.FocusDays++

		if len(rec.Sessions) == 0 {
			// no sub-day granularity for this focus day, so the morning
			// count would be a false zero
			summary.MorningKnown = false
			continue
		}

		if rec.Sessions[0].StartTime.Hour() < opts.MorningBoundary {
			summary.MorningFocusDays++
		}
	}

	if summary.WeekdayDays > 0 {
		summary.WeekdayAvg = weekdayTotal / time.Duration(summary.WeekdayDays)
	}

	if summary.WeekendDays > 0 {
		summary.WeekendAvg = weekendTotal / time.Duration(summary.WeekendDays)
	}

	if !summary.MorningKnown {
		summary.MorningFocusDays = 0
	}

	languages := make([]LanguageTotal, 0, len(languageTotals))

	for name, total := range languageTotals {
		languages = append(languages, LanguageTotal{
			Name:  name,
			Total: total,
		})
	}

	sort.SliceStable(languages, func(i, j int) bool {
		if languages[i].Total != languages[j].Total {
			return languages[i].Total > languages[j].Total
		}

		return languages[i].Name < languages[j].Name
	})

	if len(languages) > opts.TopLanguages {
		languages = languages[:opts.TopLanguages]
	}

	summary.Languages = languages

	return summary
}
