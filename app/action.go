package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/pulse/insight"
	"github.com/ayoisaiah/pulse/internal/config"
	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/internal/timeutil"
	"github.com/ayoisaiah/pulse/internal/ui"
	"github.com/ayoisaiah/pulse/notify"
	"github.com/ayoisaiah/pulse/pipeline"
	"github.com/ayoisaiah/pulse/report"
	"github.com/ayoisaiah/pulse/store"
	"github.com/ayoisaiah/pulse/trend"
	"github.com/ayoisaiah/pulse/waka"
)

const (
	envNoColor      = "NO_COLOR"
	envPulseNoColor = "PULSE_NO_COLOR"
)

var (
	errBackfillRequired = errors.New(
		"merging a date other than today requires the --backfill flag",
	)

	errInvalidPeriod = errors.New(
		"please provide a valid reporting period",
	)

	errMissingWakaKey = errors.New(
		"WAKATIME_API_KEY is not set",
	)

	errMissingOpenAIKey = errors.New(
		"OPENAI_API_KEY is not set",
	)
)

// initLogger routes slog output to a size-rotated log file in the data
// directory.
func initLogger() {
	logFile := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5,
		MaxBackups: 3,
	}

	slog.SetDefault(
		slog.New(slog.NewJSONHandler(logFile, nil)),
	)
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogger()

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envPulseNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	conf, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = conf.Display.DarkTheme

	return conf, nil
}

// resolveDate determines which calendar date the pipeline should run
// for. Any date other than today must be requested explicitly with
// --backfill to guard against clock inconsistencies.
func resolveDate(ctx *cli.Context, now time.Time) (time.Time, error) {
	dateStr := ctx.String("date")
	if dateStr == "" {
		return timeutil.RoundToStart(now), nil
	}

	parsed, err := dateparser.Parse(
		&dateparser.Configuration{CurrentTime: now},
		dateStr,
	)
	if err != nil {
		return time.Time{}, err
	}

	date := timeutil.RoundToStart(parsed.Time.In(now.Location()))

	if !timeutil.SameDay(date, now) && !ctx.Bool("backfill") {
		return time.Time{}, errBackfillRequired
	}

	return date, nil
}

// defaultAction runs the full daily pipeline: fetch, merge, trend,
// insight, delivery.
func defaultAction(ctx *cli.Context) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	if ctx.Uint("lookback") > 0 {
		conf.Tracking.LookbackDays = int(ctx.Uint("lookback"))
	}

	now := time.Now().In(conf.Tracking.Location)

	date, err := resolveDate(ctx, now)
	if err != nil {
		return err
	}

	wakaKey := config.WakaAPIKey()
	if wakaKey == "" {
		return errMissingWakaKey
	}

	openaiKey := config.OpenAIAPIKey()
	if openaiKey == "" {
		return errMissingOpenAIKey
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	var deliverer notify.Deliverer

	if conf.Email.Enabled && !ctx.Bool("dry-run") {
		deliverer = &notify.Mailer{
			Host:      conf.Email.Host,
			Port:      conf.Email.Port,
			Sender:    conf.Email.Sender,
			Password:  config.SMTPPassword(),
			Recipient: conf.Email.Recipient,
		}
	}

	p := pipeline.New(
		conf,
		db,
		waka.NewClient(wakaKey),
		insight.NewOpenAIClient(
			openaiKey,
			conf.Insight.Model,
			conf.Insight.MaxChars,
		),
		deliverer,
		config.SummaryDirPath(),
	)

	result, err := p.Run(ctx.Context, date)
	if err != nil {
		slog.ErrorContext(ctx.Context, "pipeline run failed",
			slog.String("date", date.Format(timeutil.KeyFormat)),
			slog.Any("error", err),
		)

		return err
	}

	pterm.Println(result.Insight)

	if result.Delivered {
		pterm.Success.Printfln("summary delivered to %s", conf.Email.Recipient)
	}

	if conf.System.DesktopNotification {
		_ = notify.Desktop("pulse", "Your coding summary is ready")
	}

	if conf.System.SummaryCmd != "" {
		err = notify.RunHook(conf.System.SummaryCmd, result.Insight)
		if err != nil {
			pterm.Error.Printfln("summary hook failed: %v", err)
		}
	}

	return nil
}

// rangeHelper loads the records for the period specified on the
// command line.
func rangeHelper(
	ctx *cli.Context,
	conf *config.Config,
) ([]record.Daily, store.DB, time.Time, int, error) {
	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, nil, time.Time{}, 0, errInvalidPeriod
	}

	days := timeutil.Range[period]

	now := time.Now().In(conf.Tracking.Location)

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, time.Time{}, 0, err
	}

	start := timeutil.RoundToStart(now).AddDate(0, 0, -(days - 1))

	records, err := db.GetRange(start, timeutil.RoundToEnd(now))
	if err != nil {
		db.Close()
		return nil, nil, time.Time{}, 0, err
	}

	return records, db, now, days, nil
}

// statsAction renders the trend report for the requested period.
func statsAction(ctx *cli.Context) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	records, db, now, days, err := rangeHelper(ctx, conf)
	if err != nil {
		return err
	}

	defer db.Close()

	summary := trend.Compute(records, now, trend.Options{
		Window:          days,
		FocusThreshold:  conf.Tracking.FocusThreshold,
		MorningBoundary: conf.Tracking.MorningBoundary,
	})

	start := timeutil.RoundToStart(now).AddDate(0, 0, -(days - 1))

	report.Trend(
		config.Stdout,
		store.ZeroFill(records, start, now),
		summary,
		conf.Tracking.FocusThreshold,
	)

	return nil
}

// historyAction lists the stored records for the requested period.
func historyAction(ctx *cli.Context) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	records, db, _, _, err := rangeHelper(ctx, conf)
	if err != nil {
		return err
	}

	defer db.Close()

	report.History(config.Stdout, records, conf.Tracking.FocusThreshold)

	return nil
}

// editConfigAction opens the config file in the user's editor.
func editConfigAction(_ *cli.Context) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return fmt.Errorf("the EDITOR environment variable is not set")
	}

	cmd := exec.Command(editor, config.ConfigFilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
