package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyLookbackDays        = "tracking.lookback_days"
	keyFocusThreshold      = "tracking.focus_threshold"
	keyMorningBoundary     = "tracking.morning_boundary"
	keyTimezone            = "tracking.timezone"
	keyInsightModel        = "insight.model"
	keyInsightMaxChars     = "insight.max_chars"
	keyEmailEnabled        = "email.enabled"
	keyEmailHost           = "email.host"
	keyEmailPort           = "email.port"
	keyEmailSender         = "email.sender"
	keyEmailRecipient      = "email.recipient"
	keyDesktopNotification = "settings.desktop_notification"
	keySummaryCmd          = "settings.cmd"
	keyDarkTheme           = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyLookbackDays, 14)
	v.SetDefault(keyFocusThreshold, "2h")
	v.SetDefault(keyMorningBoundary, 12)
	v.SetDefault(keyTimezone, "")
	v.SetDefault(keyInsightModel, "gpt-4o-mini")
	v.SetDefault(keyInsightMaxChars, 1500)
	v.SetDefault(keyEmailEnabled, false)
	v.SetDefault(keyEmailHost, "smtp.gmail.com")
	v.SetDefault(keyEmailPort, 465)
	v.SetDefault(keyEmailSender, "")
	v.SetDefault(keyEmailRecipient, "")
	v.SetDefault(keyDesktopNotification, true)
	v.SetDefault(keySummaryCmd, "")
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	threshold, err := parseDuration(v.GetString(keyFocusThreshold))
	if err != nil {
		return err
	}

	location := time.Local

	timezone := v.GetString(keyTimezone)
	if timezone != "" {
		location, err = time.LoadLocation(timezone)
		if err != nil {
			return errInvalidTimezone.Fmt(timezone)
		}
	}

	c.Tracking = TrackingConfig{
		LookbackDays:    v.GetInt(keyLookbackDays),
		FocusThreshold:  threshold,
		MorningBoundary: v.GetInt(keyMorningBoundary),
		Timezone:        timezone,
		Location:        location,
	}

	c.Insight = InsightConfig{
		Model:    v.GetString(keyInsightModel),
		MaxChars: v.GetInt(keyInsightMaxChars),
	}

	c.Email = EmailConfig{
		Enabled:   v.GetBool(keyEmailEnabled),
		Host:      v.GetString(keyEmailHost),
		Port:      v.GetInt(keyEmailPort),
		Sender:    v.GetString(keyEmailSender),
		Recipient: v.GetString(keyEmailRecipient),
	}

	c.Display = DisplayConfig{
		DarkTheme: v.GetBool(keyDarkTheme),
	}

	c.System = SystemConfig{
		DesktopNotification: v.GetBool(keyDesktopNotification),
		SummaryCmd:          v.GetString(keySummaryCmd),
	}

	return nil
}

// parseDuration accepts duration strings, falling back to interpreting
// a bare number as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}
