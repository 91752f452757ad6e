package config

import "time"

const (
	minLookbackDays = 1
	maxLookbackDays = 365

	minFocusThreshold = 15 * time.Minute
	maxFocusThreshold = 24 * time.Hour

	minMaxChars = 200
)

// Validate checks the loaded configuration for values that would make a
// pipeline run misbehave.
func (c *Config) Validate() error {
	if c.Tracking.LookbackDays < minLookbackDays ||
		c.Tracking.LookbackDays > maxLookbackDays {
		return errInvalidLookback.Fmt(minLookbackDays, maxLookbackDays)
	}

	if c.Tracking.FocusThreshold < minFocusThreshold ||
		c.Tracking.FocusThreshold > maxFocusThreshold {
		return errInvalidThreshold.Fmt(minFocusThreshold, maxFocusThreshold)
	}

	if c.Tracking.MorningBoundary < 0 || c.Tracking.MorningBoundary > 23 {
		return errInvalidBoundary
	}

	if c.Insight.MaxChars < minMaxChars {
		return errInvalidMaxChars.Fmt(minMaxChars)
	}

	if c.Email.Enabled {
		if c.Email.Sender == "" {
			return errMissingEmailAddress.Fmt("email.sender")
		}

		if c.Email.Recipient == "" {
			return errMissingEmailAddress.Fmt("email.recipient")
		}
	}

	return nil
}
