package store

import "github.com/ayoisaiah/pulse/internal/apperr"

var (
	// ErrMergeConflict indicates the store holds a record whose date
	// disagrees with the key it is filed under. The full-replace merge
	// policy makes this unreachable in normal operation, so it is
	// treated as a fatal invariant violation.
	ErrMergeConflict = &apperr.Error{
		Message: "history store is inconsistent: record date %s filed under key %s",
	}

	errPulseRunning = &apperr.Error{
		Message: "is pulse already running? Only one instance can access the history at a time",
	}
)
