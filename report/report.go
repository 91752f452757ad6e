// Package report renders activity history and trends for the terminal
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/internal/timeutil"
	"github.com/ayoisaiah/pulse/internal/ui"
	"github.com/ayoisaiah/pulse/trend"
)

const barChartChar = "▇"

const noRecordsMsg = "No activity found for the specified time range"

// Trend renders the daily bar chart and the trend summary for a
// lookback window. The records slice must already be zero-filled so
// every day in the window gets a bar.
func Trend(
	w io.Writer,
	records []record.Daily,
	summary trend.Summary,
	focusThreshold time.Duration,
) {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	fmt.Fprint(w, getBarChart(records))
	fmt.Fprint(w, getSummary(summary, focusThreshold))
	fmt.Fprint(w, getLanguages(summary))
}

func getBarChart(records []record.Daily) string {
	header := ui.Blue("\nDaily breakdown (minutes)")

	var bars pterm.Bars

	for i := range records {
		rec := records[i]

		bars = append(bars, pterm.Bar{
			Value: int(math.Round(rec.Total.Minutes())),
			Label: fmt.Sprintf(
				"%s %02d (%.3s)",
				rec.Date.Month().String()[:3],
				rec.Date.Day(),
				rec.Date.Weekday().String(),
			),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func getSummary(
	summary trend.Summary,
	focusThreshold time.Duration,
) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Summary")))

	builder.WriteString(fmt.Sprintf(
		"Weekday average: %s\n",
		ui.Green(fmtHours(summary.WeekdayAvg)),
	))

	builder.WriteString(fmt.Sprintf(
		"Weekend average: %s\n",
		ui.Green(fmtHours(summary.WeekendAvg)),
	))

	builder.WriteString(fmt.Sprintf(
		"Focus sessions (>= %s): %s\n",
		fmtHours(focusThreshold),
		ui.Green(fmt.Sprintf("%d of %d days", summary.FocusDays, summary.Days)),
	))

	morning := "unknown"
	if summary.MorningKnown {
		morning = fmt.Sprintf("%d", summary.MorningFocusDays)
	}

	builder.WriteString(fmt.Sprintf(
		"Morning focus sessions: %s\n",
		ui.Green(morning),
	))

	return builder.String()
}

func getLanguages(summary trend.Summary) string {
	if len(summary.Languages) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Top languages")))

	for _, lang := range summary.Languages {
		builder.WriteString(fmt.Sprintf(
			"%s: %s\n",
			lang.Name,
			ui.Green(fmtHours(lang.Total)),
		))
	}

	if summary.UnclassifiedTotal > 0 {
		builder.WriteString(fmt.Sprintf(
			"Unclassified: %s\n",
			ui.Red(fmtHours(summary.UnclassifiedTotal)),
		))
	}

	return builder.String()
}

// History renders stored records as a table, most recent first.
func History(w io.Writer, records []record.Daily, focusThreshold time.Duration) {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	data := [][]string{
		{"#", "DATE", "WEEKDAY", "TOTAL", "LANGUAGES", "FOCUS"},
	}

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]

		focus := ui.Red("no")
		if rec.Total >= focusThreshold {
			focus = ui.Green("yes")
		}

		data = append(data, []string{
			fmt.Sprintf("%d", len(records)-i),
			rec.Date.Format(timeutil.KeyFormat),
			rec.Date.Weekday().String(),
			fmtHours(rec.Total),
			languageNames(rec),
			focus,
		})
	}

	ui.PrintTable(data, w)
}

// languageNames lists a record's classified languages in natural order.
func languageNames(rec record.Daily) string {
	var names []string

	for _, lang := range rec.Languages {
		if lang.Category == record.CategoryKnown {
			names = append(names, lang.Name)
		}
	}

	sort.Sort(natural.StringSlice(names))

	return strings.Join(names, ", ")
}

func fmtHours(d time.Duration) string {
	return fmt.Sprintf("%.1f hrs", d.Hours())
}
