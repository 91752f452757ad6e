// Package app defines the command-line interface for pulse
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pulse/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pulse app instance.
func Get() *cli.App {
	pulseApp := &cli.App{
		Name: "pulse",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Pulse collects your daily coding activity from WakaTime, keeps an
		durable history of it, and emails you an AI-written productivity
		summary once a day.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name: "stats",
				Usage: `
				Render the trend report for a reporting period. Defaults to the
				last 14 days`,
				Action: statsAction,
				Flags:  []cli.Flag{periodFlag, noColorFlag},
			},
			{
				Name:   "history",
				Usage:  "List the stored daily records for a reporting period",
				Action: historyAction,
				Flags:  []cli.Flag{periodFlag, noColorFlag},
			},
		},
		Flags: []cli.Flag{
			dateFlag,
			backfillFlag,
			dryRunFlag,
			lookbackFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return pulseApp
}
