package insight

import "github.com/ayoisaiah/pulse/internal/apperr"

// ErrGeneration indicates the summarizer returned empty or over-length
// output. The run is aborted without touching persisted history.
var ErrGeneration = &apperr.Error{
	Message: "insight generation failed",
}

var (
	errEmptyResponse = ErrGeneration.WithMessage(
		"the summarizer returned an empty response",
	)

	errOverlongResponse = ErrGeneration.WithMessage(
		"the summarizer response is too long: %d characters (limit %d)",
	)
)
