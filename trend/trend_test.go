package trend_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/trend"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// weekRecords reproduces a Monday-to-Wednesday history: Mon=3h of
// Python, Tue=0h, Wed=2.5h split between Python and the unclassified
// bucket.
func weekRecords() []record.Daily {
	return []record.Daily{
		{
			Date:  date(2024, time.November, 4),
			Total: hours(3),
			Languages: []record.Language{
				{
					Name:     "Python",
					Duration: hours(3),
					Category: record.CategoryKnown,
				},
			},
		},
		{
			Date:  date(2024, time.November, 5),
			Total: 0,
		},
		{
			Date:  date(2024, time.November, 6),
			Total: hours(2.5),
			Languages: []record.Language{
				{
					Name:     "Python",
					Duration: hours(1),
					Category: record.CategoryKnown,
				},
				{
					Name:     "Other",
					Duration: hours(1.5),
					Category: record.CategoryUnclassified,
				},
			},
		},
	}
}

func TestComputeWeekdayWindow(t *testing.T) {
	records := weekRecords()
	today := date(2024, time.November, 6)

	summary := trend.Compute(records, today, trend.Options{Window: 3})

	if summary.Days != 3 || summary.WeekdayDays != 3 || summary.WeekendDays != 0 {
		t.Fatalf(
			"unexpected day partition: days=%d weekday=%d weekend=%d",
			summary.Days,
			summary.WeekdayDays,
			summary.WeekendDays,
		)
	}

	if summary.FocusDays != 2 {
		t.Errorf("expected 2 focus days, got: %d", summary.FocusDays)
	}

	expectedAvg := hours(5.5) / 3
	if summary.WeekdayAvg != expectedAvg {
		t.Errorf(
			"expected weekday average %v, got: %v",
			expectedAvg,
			summary.WeekdayAvg,
		)
	}

	if len(summary.Languages) != 1 || summary.Languages[0].Name != "Python" {
		t.Fatalf(
			"expected Python as the only ranked language, got: %+v",
			summary.Languages,
		)
	}

	if summary.Languages[0].Total != hours(4) {
		t.Errorf(
			"expected 4h of Python, got: %v",
			summary.Languages[0].Total,
		)
	}

	if summary.UnclassifiedTotal != hours(1.5) {
		t.Errorf(
			"expected 1.5h unclassified, got: %v",
			summary.UnclassifiedTotal,
		)
	}
}

func TestComputeAfterCorrectedMerge(t *testing.T) {
	records := weekRecords()

	// a corrected Tuesday snapshot replaces the 0h entry
	records[1] = record.Daily{
		Date:  date(2024, time.November, 5),
		Total: hours(1),
	}

	summary := trend.Compute(
		records,
		date(2024, time.November, 6),
		trend.Options{Window: 3},
	)

	expectedAvg := hours(6.5) / 3
	if summary.WeekdayAvg != expectedAvg {
		t.Errorf(
			"expected weekday average %v after correction, got: %v",
			expectedAvg,
			summary.WeekdayAvg,
		)
	}
}

func TestComputeDeterminism(t *testing.T) {
	records := weekRecords()
	today := date(2024, time.November, 6)
	opts := trend.Options{Window: 3}

	first := trend.Compute(records, today, opts)
	second := trend.Compute(records, today, opts)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated computation differs (-first +second):\n%s", diff)
	}
}

func TestComputeLanguageTieBreak(t *testing.T) {
	records := []record.Daily{
		{
			Date:  date(2024, time.November, 6),
			Total: hours(4),
			Languages: []record.Language{
				{
					Name:     "Go",
					Duration: hours(2),
					Category: record.CategoryKnown,
				},
				{
					Name:     "Elixir",
					Duration: hours(2),
					Category: record.CategoryKnown,
				},
			},
		},
	}

	summary := trend.Compute(
		records,
		date(2024, time.November, 6),
		trend.Options{Window: 3},
	)

	if len(summary.Languages) != 2 {
		t.Fatalf("expected two ranked languages, got: %d", len(summary.Languages))
	}

	if summary.Languages[0].Name != "Elixir" || summary.Languages[1].Name != "Go" {
		t.Errorf(
			"equal durations must rank by name: got %s before %s",
			summary.Languages[0].Name,
			summary.Languages[1].Name,
		)
	}
}

func TestComputeWeekendSplit(t *testing.T) {
	records := []record.Daily{
		{Date: date(2024, time.November, 8), Total: hours(4)}, // Friday
		{Date: date(2024, time.November, 9), Total: hours(1)}, // Saturday
		{Date: date(2024, time.November, 10), Total: hours(2)}, // Sunday
	}

	summary := trend.Compute(
		records,
		date(2024, time.November, 10),
		trend.Options{Window: 7},
	)

	if summary.WeekdayDays != 1 || summary.WeekendDays != 2 {
		t.Fatalf(
			"unexpected partition: weekday=%d weekend=%d",
			summary.WeekdayDays,
			summary.WeekendDays,
		)
	}

	if summary.WeekdayAvg != hours(4) {
		t.Errorf("expected 4h weekday average, got: %v", summary.WeekdayAvg)
	}

	if summary.WeekendAvg != hours(1.5) {
		t.Errorf("expected 1.5h weekend average, got: %v", summary.WeekendAvg)
	}
}

func TestComputeMorningSessions(t *testing.T) {
	morning := time.Date(2024, time.November, 4, 9, 0, 0, 0, time.UTC)
	afternoon := time.Date(2024, time.November, 6, 13, 0, 0, 0, time.UTC)

	withSessions := []record.Daily{
		{
			Date:  date(2024, time.November, 4),
			Total: hours(3),
			Sessions: []record.Span{
				{StartTime: morning, EndTime: morning.Add(time.Hour)},
			},
		},
		{
			Date:  date(2024, time.November, 6),
			Total: hours(2.5),
			Sessions: []record.Span{
				{StartTime: afternoon, EndTime: afternoon.Add(time.Hour)},
			},
		},
	}

	summary := trend.Compute(
		withSessions,
		date(2024, time.November, 6),
		trend.Options{Window: 3},
	)

	if !summary.MorningKnown {
		t.Fatal("morning count should be known when all focus days carry sessions")
	}

	if summary.MorningFocusDays != 1 {
		t.Errorf("expected 1 morning focus day, got: %d", summary.MorningFocusDays)
	}

	// strip session data: the morning count must refine to unknown
	// rather than a false zero
	withSessions[0].Sessions = nil
	withSessions[1].Sessions = nil

	summary = trend.Compute(
		withSessions,
		date(2024, time.November, 6),
		trend.Options{Window: 3},
	)

	if summary.MorningKnown {
		t.Error("morning count should be unknown without session spans")
	}
}

func TestComputeIgnoresRecordsOutsideWindow(t *testing.T) {
	records := weekRecords()

	// well before the window
	records = append(records, record.Daily{
		Date:  date(2024, time.October, 1),
		Total: hours(10),
	})

	summary := trend.Compute(
		records,
		date(2024, time.November, 6),
		trend.Options{Window: 3},
	)

	if summary.Days != 3 {
		t.Errorf("expected 3 days in window, got: %d", summary.Days)
	}
}
