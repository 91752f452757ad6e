package snapshot

import "github.com/ayoisaiah/pulse/internal/apperr"

// ErrMalformed signals bad provider data. The day's merge must be
// aborted and prior history left untouched.
var ErrMalformed = &apperr.Error{
	Message: "malformed snapshot",
}

var (
	errDateMismatch = ErrMalformed.WithMessage(
		"snapshot date %s does not match the requested date %s",
	)

	errNegativeDuration = ErrMalformed.WithMessage(
		"snapshot reports a negative duration",
	)
)
