package notify

import "github.com/ayoisaiah/pulse/internal/apperr"

// ErrDelivery indicates the summary could not be delivered. History and
// trend computation are unaffected since they completed upstream; the
// failure is reported, never retried.
var ErrDelivery = &apperr.Error{
	Message: "summary delivery failed",
}
