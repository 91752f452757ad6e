package record_test

import (
	"testing"
	"time"

	"github.com/ayoisaiah/pulse/internal/record"
)

func sampleDaily() *record.Daily {
	return &record.Daily{
		Date:  time.Date(2024, time.November, 6, 0, 0, 0, 0, time.UTC),
		Total: 4 * time.Hour,
		Languages: []record.Language{
			{
				Name:     "Go",
				Duration: 3 * time.Hour,
				Category: record.CategoryKnown,
			},
			{
				Name:     record.UnclassifiedName,
				Duration: time.Hour,
				Category: record.CategoryUnclassified,
			},
		},
	}
}

func TestKnownTotalExcludesUnclassified(t *testing.T) {
	rec := sampleDaily()

	if got := rec.KnownTotal(); got != 3*time.Hour {
		t.Errorf("expected 3h of classified time, got: %v", got)
	}
}

func TestReconciled(t *testing.T) {
	rec := sampleDaily()

	if !rec.Reconciled() {
		t.Error("a total covering its languages must reconcile")
	}

	rec.Total = time.Hour
	if rec.Reconciled() {
		t.Error("a total below the classified sum must not reconcile")
	}
}

func TestIsWeekendDerivedFromDate(t *testing.T) {
	rec := sampleDaily()

	if rec.IsWeekend() {
		t.Error("2024-11-06 is a Wednesday")
	}

	rec.Date = time.Date(2024, time.November, 9, 0, 0, 0, 0, time.UTC)
	if !rec.IsWeekend() {
		t.Error("2024-11-09 is a Saturday")
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		Name     string
		Mutate   func(*record.Daily)
		Expected bool
	}{
		{
			Name:     "identical records",
			Mutate:   func(*record.Daily) {},
			Expected: true,
		},
		{
			Name: "different total",
			Mutate: func(d *record.Daily) {
				d.Total = 5 * time.Hour
			},
			Expected: false,
		},
		{
			Name: "different date",
			Mutate: func(d *record.Daily) {
				d.Date = d.Date.AddDate(0, 0, 1)
			},
			Expected: false,
		},
		{
			Name: "different language duration",
			Mutate: func(d *record.Daily) {
				d.Languages[0].Duration = time.Minute
			},
			Expected: false,
		},
		{
			Name: "extra session",
			Mutate: func(d *record.Daily) {
				d.Sessions = append(d.Sessions, record.Span{
					StartTime: d.Date.Add(9 * time.Hour),
					EndTime:   d.Date.Add(10 * time.Hour),
				})
			},
			Expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			a, b := sampleDaily(), sampleDaily()
			tc.Mutate(b)

			if got := a.Equal(b); got != tc.Expected {
				t.Errorf("expected %v, got: %v", tc.Expected, got)
			}
		})
	}

	if sampleDaily().Equal(nil) {
		t.Error("a record never equals nil")
	}
}

func TestEqualComparesLocationsByInstant(t *testing.T) {
	a := sampleDaily()
	b := sampleDaily()
	b.Date = b.Date.In(time.FixedZone("UTC+1", 3600))

	if !a.Equal(b) {
		t.Error("the same instant in another zone must compare equal")
	}
}
