package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestBreaker(cfg BreakerConfig, now *time.Time) *Breaker {
	b := NewBreaker(cfg)
	b.now = func() time.Time { return *now }
	return b
}

func fail(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func TestBreaker_OpensAndRecovers(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 2, 18, 30, 0, 0, time.UTC)
	b := newTestBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, Probes: 1}, &now)
	ctx := context.Background()
	boom := errors.New("dial tcp: connection refused")

	_ = b.Call(ctx, fail(boom))
	if got := b.Snapshot(); got.State != StateClosed || got.Failures != 1 {
		t.Fatalf("unexpected snapshot after one failure: %+v", got)
	}

	_ = b.Call(ctx, fail(boom))
	if got := b.Snapshot().State; got != StateOpen {
		t.Fatalf("expected open after threshold, got %s", got)
	}

	called := false
	err := b.Call(ctx, func(context.Context) error { called = true; return nil })
	if !errors.Is(err, ErrOpen) || called {
		t.Fatalf("expected rejection without running fn, err=%v called=%v", err, called)
	}

	now = now.Add(6 * time.Second)
	if got := b.Snapshot().State; got != StateHalfOpen {
		t.Fatalf("expected half open after timeout, got %s", got)
	}
	if err := b.Call(ctx, fail(nil)); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	if got := b.Snapshot(); got.State != StateClosed || got.Failures != 0 || got.OpenedAt != "" {
		t.Fatalf("expected clean closed breaker, got %+v", got)
	}
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 2, 18, 30, 0, 0, time.UTC)
	b := newTestBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second}, &now)
	ctx := context.Background()
	boom := errors.New("timeout")

	_ = b.Call(ctx, fail(boom))
	now = now.Add(2 * time.Second)
	_ = b.Call(ctx, fail(boom))

	got := b.Snapshot()
	if got.State != StateOpen {
		t.Fatalf("expected reopen after failed probe, got %s", got.State)
	}
	if got.OpenedAt != "2025-08-02T18:30:02Z" {
		t.Fatalf("expected open timer to restart, got %q", got.OpenedAt)
	}
}

func TestBreaker_CountsOnlyClassifiedFailures(t *testing.T) {
	t.Parallel()

	network := errors.New("dial tcp: connection refused")
	payload := errors.New("bad league")
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBreaker(BreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		Counts:           func(err error) bool { return errors.Is(err, network) },
	}, &now)
	ctx := context.Background()

	if err := b.Call(ctx, fail(payload)); !errors.Is(err, payload) {
		t.Fatalf("expected payload error passthrough, got %v", err)
	}
	if got := b.Snapshot().State; got != StateClosed {
		t.Fatalf("payload error must not trip the breaker, got %s", got)
	}

	if err := b.Call(ctx, fail(network)); !errors.Is(err, network) {
		t.Fatalf("expected network error passthrough, got %v", err)
	}
	if got := b.Snapshot().State; got != StateOpen {
		t.Fatalf("expected open after network failure, got %s", got)
	}
}

func TestBreaker_CanceledCallsDoNotCount(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1}, &now)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = b.Call(ctx, func(ctx context.Context) error { return ctx.Err() })

	if got := b.Snapshot().State; got != StateClosed {
		t.Fatalf("canceled call must not trip the breaker, got %s", got)
	}
}

func TestBreaker_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	now := time.Now()
	b := newTestBreaker(BreakerConfig{FailureThreshold: 1}, &now)
	boom := errors.New("boom")

	for range 3 {
		if err := b.Call(context.Background(), fail(boom)); !errors.Is(err, boom) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	}
	if got := b.Snapshot(); got.Enabled || got.State != StateClosed || got.Failures != 0 {
		t.Fatalf("disabled breaker must not track failures: %+v", got)
	}
}

func TestBreakerConfig_NormalizesLimits(t *testing.T) {
	t.Parallel()

	cfg := BreakerConfig{Enabled: true}.normalized()
	if cfg.FailureThreshold != 5 || cfg.OpenTimeout != 15*time.Second || cfg.Probes != 2 {
		t.Fatalf("unexpected limits: %+v", cfg)
	}
}
