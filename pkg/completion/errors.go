package completion

import "errors"

// Sentinel errors for completion operations.
var (
	// ErrDisabled indicates no model is configured; callers degrade to
	// rule-based or template behavior.
	ErrDisabled = errors.New("completion client disabled")

	// ErrUnavailable wraps transient provider failures that are safe to retry
	// or absorb through fallback chains.
	ErrUnavailable = errors.New("completion provider unavailable")

	// ErrRejected indicates the provider produced no usable text for the
	// prompt; retrying the same prompt will not help.
	ErrRejected = errors.New("completion rejected")
)

// Retryable reports whether err represents a transient failure.
func Retryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
