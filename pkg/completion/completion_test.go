package completion_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/sanchika-app/sanchika/pkg/completion"
	"github.com/sanchika-app/sanchika/pkg/throttle"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDisabledClient(t *testing.T) {
	client := completion.Disabled()

	if client.Enabled() {
		t.Error("disabled client reports enabled")
	}

	_, err := client.Complete(context.Background(), "prompt", completion.Options{})
	if !errors.Is(err, completion.ErrDisabled) {
		t.Errorf("error: got %v, want ErrDisabled", err)
	}
}

func TestNewUnconfigured(t *testing.T) {
	limiter := throttle.New(&throttle.Config{})
	client, err := completion.New(&completion.Config{}, limiter, discardLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.Enabled() {
		t.Error("client should be disabled without token or base URL")
	}
}

func TestNewWithBaseURL(t *testing.T) {
	cfg := &completion.Config{
		BaseURL: "http://localhost:11434/v1",
		Model:   "llama3.1:8b",
	}
	limiter := throttle.New(&throttle.Config{})

	client, err := completion.New(cfg, limiter, discardLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !client.Enabled() {
		t.Error("client should be enabled with a base URL")
	}
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  completion.Config
		want bool
	}{
		{"empty", completion.Config{}, false},
		{"token only", completion.Config{Token: "sk-test"}, true},
		{"base url only", completion.Config{BaseURL: "http://localhost:11434/v1"}, true},
		{"model only", completion.Config{Model: "gpt-4o-mini"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := completion.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model: got %s, want gpt-4o-mini", cfg.Model)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("temperature: got %v, want 0.7", cfg.Temperature)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unavailable", completion.ErrUnavailable, true},
		{"wrapped unavailable", fmt.Errorf("%w: timeout", completion.ErrUnavailable), true},
		{"rejected", completion.ErrRejected, false},
		{"disabled", completion.ErrDisabled, false},
		{"unrelated", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completion.Retryable(tt.err); got != tt.want {
				t.Errorf("Retryable() = %v, want %v", got, tt.want)
			}
		})
	}
}
