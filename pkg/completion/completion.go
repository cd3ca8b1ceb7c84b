// Package completion defines the text-completion collaborator contract the
// pipeline consumes, backed by any OpenAI-compatible endpoint via langchaingo.
// A client built without credentials degrades to a disabled client whose calls
// return ErrDisabled, so the pipeline remains usable without a model.
package completion

import "context"

// Options adjusts a single completion request.
// Zero values defer to the provider's defaults.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Client is the contract the pipeline requires from a text-completion collaborator.
type Client interface {
	// Complete sends a prompt and returns the generated text.
	// Failures are distinguishable: ErrUnavailable wraps transient provider
	// errors, ErrRejected marks responses that must not be retried, and
	// ErrDisabled means no model is configured.
	Complete(ctx context.Context, prompt string, opts Options) (string, error)

	// Enabled reports whether a model is configured and reachable in principle.
	Enabled() bool
}
