// Package insight builds the summarizer context and retrieves the daily
// productivity summary.
package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/internal/timeutil"
	"github.com/ayoisaiah/pulse/trend"
)

// Mode selects the narrative emphasis for the day.
type Mode string

const (
	ModeWeekday Mode = "weekday"
	ModeWeekend Mode = "weekend"
)

// ModeFor derives the narrative mode from the calendar date alone. A
// weekday with no recorded activity still gets a today-focused
// narrative instead of falling back to trend mode.
func ModeFor(date time.Time) Mode {
	if timeutil.IsWeekend(date) {
		return ModeWeekend
	}

	return ModeWeekday
}

// BuildContext assembles the bounded textual context handed to the
// summarizer. Weekday mode emphasizes today's record with a brief trend
// footnote, weekend mode emphasizes the trailing-window trends. The
// unclassified bucket never appears in language narration.
func BuildContext(
	today *record.Daily,
	summary trend.Summary,
	mode Mode,
	focusThreshold time.Duration,
) string {
	var b strings.Builder

	if mode == ModeWeekend {
		buildWeekendContext(&b, today, summary, focusThreshold)
	} else {
		buildWeekdayContext(&b, today, summary, focusThreshold)
	}

	return b.String()
}

func buildWeekdayContext(
	b *strings.Builder,
	today *record.Daily,
	summary trend.Summary,
	focusThreshold time.Duration,
) {
	if today == nil {
		b.WriteString("Today's activity: none recorded yet.\n")
		fmt.Fprintf(
			b,
			"Focus goal (%s): not met.\n",
			fmtDuration(focusThreshold),
		)
	} else {
		fmt.Fprintf(
			b,
			"Today's activity (%s, %s):\n",
			today.Date.Format(timeutil.KeyFormat),
			today.Date.Weekday(),
		)
		fmt.Fprintf(b, "Total time: %s\n", fmtDuration(today.Total))

		goal := "not met"
		if today.Total >= focusThreshold {
			goal = "met"
		}

		fmt.Fprintf(b, "Focus goal (%s): %s\n", fmtDuration(focusThreshold), goal)

		writeLanguageBreakdown(b, today)
	}

	fmt.Fprintf(
		b,
		"Trend note: weekday average over the last %d days is %s per day.\n",
		summary.Window,
		fmtDuration(summary.WeekdayAvg),
	)
}

func buildWeekendContext(
	b *strings.Builder,
	today *record.Daily,
	summary trend.Summary,
	focusThreshold time.Duration,
) {
	b.WriteString("Weekend check-in.\n")

	if today == nil || today.Total == 0 {
		b.WriteString("No coding logged today, which is fine for a weekend.\n")
	} else {
		fmt.Fprintf(b, "Light activity today: %s.\n", fmtDuration(today.Total))
	}

	fmt.Fprintf(b, "Looking back over the last %d days:\n", summary.Window)
	fmt.Fprintf(b, "  Weekday average: %s per day\n", fmtDuration(summary.WeekdayAvg))
	fmt.Fprintf(b, "  Weekend average: %s per day\n", fmtDuration(summary.WeekendAvg))
	fmt.Fprintf(
		b,
		"  Focus sessions (>= %s): %d of %d days\n",
		fmtDuration(focusThreshold),
		summary.FocusDays,
		summary.Days,
	)

	if summary.MorningKnown {
		fmt.Fprintf(
			b,
			"  Morning focus sessions: %d\n",
			summary.MorningFocusDays,
		)
	} else {
		b.WriteString("  Morning focus sessions: unknown\n")
	}

	if len(summary.Languages) > 0 {
		b.WriteString("  Top languages:\n")

		for _, lang := range summary.Languages {
			fmt.Fprintf(
				b,
				"    - %s: %s\n",
				lang.Name,
				fmtDuration(lang.Total),
			)
		}
	}
}

func writeLanguageBreakdown(b *strings.Builder, today *record.Daily) {
	var known []record.Language

	for _, lang := range today.Languages {
		if lang.Category == record.CategoryKnown {
			known = append(known, lang)
		}
	}

	if len(known) == 0 {
		return
	}

	b.WriteString("Languages:\n")

	for _, lang := range known {
		fmt.Fprintf(b, "  - %s: %s\n", lang.Name, fmtDuration(lang.Duration))
	}
}

// fmtDuration renders a duration as decimal hours, matching the way the
// provider reports daily totals.
func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%.1f hours", d.Hours())
}
