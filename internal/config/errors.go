package config

import "github.com/ayoisaiah/pulse/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidTimezone = &apperr.Error{
		Message: "unknown timezone: %s",
	}

	errInvalidLookback = &apperr.Error{
		Message: "lookback window must be between %d and %d days",
	}

	errInvalidThreshold = &apperr.Error{
		Message: "focus threshold must be between %v and %v",
	}

	errInvalidBoundary = &apperr.Error{
		Message: "morning boundary must be an hour between 0 and 23",
	}

	errInvalidMaxChars = &apperr.Error{
		Message: "insight max_chars must be at least %d",
	}

	errMissingEmailAddress = &apperr.Error{
		Message: "email delivery is enabled but %s is not set",
	}
)
