// Package throttle provides token-bucket pacing for outbound collaborator calls.
// Completion and image-provider clients share Limiter instances so that batch
// processing cannot exceed upstream per-caller rate limits.
package throttle

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces outbound calls using a token bucket.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter from the given configuration.
// A zero or negative per-minute rate yields an unlimited limiter.
func New(cfg *Config) *Limiter {
	if cfg.RequestsPerMinute <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	interval := time.Minute / time.Duration(cfg.RequestsPerMinute)
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(interval), burst),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a call may proceed immediately, consuming a token if so.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
