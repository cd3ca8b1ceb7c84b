package throttle_test

import (
	"context"
	"testing"

	"github.com/sanchika-app/sanchika/pkg/throttle"
)

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := throttle.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.RequestsPerMinute != 30 {
		t.Errorf("requests per minute: got %d, want 30", cfg.RequestsPerMinute)
	}
	if cfg.Burst != 1 {
		t.Errorf("burst: got %d, want 1", cfg.Burst)
	}
}

func TestConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_THROTTLE_RPM", "120")
	t.Setenv("TEST_THROTTLE_BURST", "10")

	cfg := throttle.Config{}
	env := &throttle.Env{
		RequestsPerMinute: "TEST_THROTTLE_RPM",
		Burst:             "TEST_THROTTLE_BURST",
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.RequestsPerMinute != 120 {
		t.Errorf("requests per minute: got %d, want 120", cfg.RequestsPerMinute)
	}
	if cfg.Burst != 10 {
		t.Errorf("burst: got %d, want 10", cfg.Burst)
	}
}

func TestConfigMerge(t *testing.T) {
	base := throttle.Config{RequestsPerMinute: 30, Burst: 1}
	overlay := throttle.Config{RequestsPerMinute: 60}

	base.Merge(&overlay)

	if base.RequestsPerMinute != 60 {
		t.Errorf("requests per minute: got %d, want 60", base.RequestsPerMinute)
	}
	if base.Burst != 1 {
		t.Errorf("burst: got %d, want 1", base.Burst)
	}
}

func TestLimiterAllowBurst(t *testing.T) {
	limiter := throttle.New(&throttle.Config{RequestsPerMinute: 1, Burst: 2})

	if !limiter.Allow() {
		t.Error("first call should be allowed")
	}
	if !limiter.Allow() {
		t.Error("second call should be allowed within burst")
	}
	if limiter.Allow() {
		t.Error("third call should be throttled")
	}
}

func TestLimiterUnlimited(t *testing.T) {
	limiter := throttle.New(&throttle.Config{RequestsPerMinute: 0})

	for i := 0; i < 100; i++ {
		if !limiter.Allow() {
			t.Fatalf("call %d throttled on unlimited limiter", i)
		}
	}
}

func TestLimiterWaitCancelled(t *testing.T) {
	limiter := throttle.New(&throttle.Config{RequestsPerMinute: 1, Burst: 1})
	limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Error("expected error waiting with cancelled context")
	}
}
