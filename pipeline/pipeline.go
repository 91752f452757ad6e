// Package pipeline runs one day's activity through normalization,
// history merge, trend computation, insight generation, and delivery.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/pulse/insight"
	"github.com/ayoisaiah/pulse/internal/config"
	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/internal/timeutil"
	"github.com/ayoisaiah/pulse/notify"
	"github.com/ayoisaiah/pulse/snapshot"
	"github.com/ayoisaiah/pulse/store"
	"github.com/ayoisaiah/pulse/trend"
)

// Provider supplies one raw activity payload per requested date.
type Provider interface {
	Snapshot(ctx context.Context, date time.Time) (*snapshot.Raw, error)
}

// Pipeline wires the stages of a daily run together. The store and all
// collaborators are passed in explicitly so tests can supply isolated
// instances.
type Pipeline struct {
	cfg        *config.Config
	db         store.DB
	provider   Provider
	generator  insight.Generator
	deliverer  notify.Deliverer
	summaryDir string
}

// Result reports what a run produced.
type Result struct {
	Record    *record.Daily
	Summary   trend.Summary
	Insight   string
	Delivered bool
}

// New returns a pipeline. A nil deliverer skips delivery (dry run).
func New(
	cfg *config.Config,
	db store.DB,
	provider Provider,
	generator insight.Generator,
	deliverer notify.Deliverer,
	summaryDir string,
) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		db:         db,
		provider:   provider,
		generator:  generator,
		deliverer:  deliverer,
		summaryDir: summaryDir,
	}
}

// Run executes the pipeline for a single calendar date. Failures before
// the merge leave history untouched; failures after it never corrupt
// what was merged.
func (p *Pipeline) Run(ctx context.Context, date time.Time) (*Result, error) {
	raw, err := p.provider.Snapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	rec, err := snapshot.Normalize(raw, date)
	if err != nil {
		return nil, err
	}

	err = p.db.UpdateDaily(rec)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "merged daily record",
		slog.String("date", rec.Date.Format(timeutil.KeyFormat)),
		slog.Duration("total", rec.Total),
	)

	opts := trend.Options{
		Window:          p.cfg.Tracking.LookbackDays,
		FocusThreshold:  p.cfg.Tracking.FocusThreshold,
		MorningBoundary: p.cfg.Tracking.MorningBoundary,
	}

	start := timeutil.RoundToStart(date).AddDate(0, 0, -(opts.Window - 1))

	records, err := p.db.GetRange(start, timeutil.RoundToEnd(date))
	if err != nil {
		return nil, err
	}

	result := &Result{
		Record:  rec,
		Summary: trend.Compute(records, date, opts),
	}

	mode := insight.ModeFor(date)

	activityContext := insight.BuildContext(
		rec,
		result.Summary,
		mode,
		p.cfg.Tracking.FocusThreshold,
	)

	text, err := p.generator.Generate(ctx, activityContext)
	if err != nil {
		return result, err
	}

	err = insight.Validate(text, p.cfg.Insight.MaxChars)
	if err != nil {
		return result, err
	}

	result.Insight = text

	err = p.archiveSummary(date, text)
	if err != nil {
		return result, err
	}

	if p.deliverer == nil {
		return result, nil
	}

	day := date.Format(timeutil.KeyFormat)
	subject := "Coding Activity Summary - " + day

	err = p.deliverer.Deliver(ctx, subject, mailBody(text))
	if err != nil {
		return result, err
	}

	result.Delivered = true

	slog.InfoContext(ctx, "summary delivered", slog.String("date", day))

	return result, nil
}

// archiveSummary persists the generated text before delivery so a
// delivery failure never loses the summary.
func (p *Pipeline) archiveSummary(date time.Time, text string) error {
	if p.summaryDir == "" {
		return nil
	}

	err := os.MkdirAll(p.summaryDir, 0o755)
	if err != nil {
		return err
	}

	name := fmt.Sprintf(
		"coding_summary_%s.txt",
		date.Format(timeutil.KeyFormat),
	)

	return os.WriteFile(
		filepath.Join(p.summaryDir, name),
		[]byte(text),
		0o644,
	)
}

func mailBody(summary string) string {
	return fmt.Sprintf(
		"Hello!\n\nHere's your daily coding activity summary:\n\n%s\n\nBest regards,\npulse\n",
		summary,
	)
}
