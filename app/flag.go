package app

import "github.com/urfave/cli/v2"

var (
	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Run the pipeline for a specific date (e.g. 'yesterday', '2024-11-08'). Requires --backfill for any date other than today",
	}

	backfillFlag = &cli.BoolFlag{
		Name:  "backfill",
		Usage: "Allow merging a snapshot for a past date into the history",
	}

	dryRunFlag = &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Generate the summary without delivering it",
	}

	lookbackFlag = &cli.UintFlag{
		Name:    "lookback",
		Aliases: []string{"l"},
		Usage:   "Override the configured lookback window (days)",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period. One of: 7days, 14days, 30days, 90days, 180days, 365days",
		Value:   "14days",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
