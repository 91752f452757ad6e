// Package config is responsible for loading and validating pulse's
// configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings
	Config struct {
		Tracking TrackingConfig
		Insight  InsightConfig
		Email    EmailConfig
		Display  DisplayConfig
		System   SystemConfig
	}

	// TrackingConfig holds activity-tracking settings
	TrackingConfig struct {
		LookbackDays    int
		FocusThreshold  time.Duration
		MorningBoundary int
		Timezone        string
		Location        *time.Location
	}

	// InsightConfig holds summarizer settings
	InsightConfig struct {
		Model    string
		MaxChars int
	}

	// EmailConfig holds delivery settings. The password is never read
	// from the config file.
	EmailConfig struct {
		Enabled   bool
		Host      string
		Port      int
		Sender    string
		Recipient string
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		DesktopNotification bool
		SummaryCmd          string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "pulse"
	configFileName = "config.yml"
	dbFileName     = "pulse.db"
	logFileName    = "pulse.log"
	summaryDirName = "summaries"
	dbFilePath     string
	configFilePath string
	logFilePath    string
	summaryDirPath string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func SummaryDirPath() string {
	return summaryDirPath
}

// WakaAPIKey returns the WakaTime API key from the environment.
func WakaAPIKey() string {
	return strings.TrimSpace(os.Getenv("WAKATIME_API_KEY"))
}

// OpenAIAPIKey returns the OpenAI API key from the environment.
func OpenAIAPIKey() string {
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

// SMTPPassword returns the mail password from the environment.
// GMAIL_PASSWORD is accepted for compatibility with Gmail app
// passwords.
func SMTPPassword() string {
	password := strings.TrimSpace(os.Getenv("PULSE_SMTP_PASSWORD"))
	if password != "" {
		return password
	}

	return strings.TrimSpace(os.Getenv("GMAIL_PASSWORD"))
}

// InitializePaths resolves the XDG paths for the config file, the
// history database, the log file, and the summary archive.
func InitializePaths() {
	pulseEnv := strings.TrimSpace(os.Getenv("PULSE_ENV"))
	if pulseEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", pulseEnv)
		dbFileName = fmt.Sprintf("pulse_%s.db", pulseEnv)
		logFileName = fmt.Sprintf("pulse_%s.log", pulseEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)

	summaryDirPath = filepath.Join(dataDir, summaryDirName)
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
