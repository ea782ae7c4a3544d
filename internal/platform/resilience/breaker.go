// Package resilience guards calls to flaky dependencies.
package resilience

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

var ErrOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

type BreakerConfig struct {
	Enabled bool
	// Trips after this many consecutive counted failures.
	FailureThreshold int
	OpenTimeout      time.Duration
	// Probes admitted while half open; all of them must succeed to close.
	Probes int
	// Counts reports whether an error is a failure. Nil counts every error.
	Counts func(error) bool
}

func (c BreakerConfig) normalized() BreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = 5
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 15 * time.Second
	}
	if c.Probes < 1 {
		c.Probes = 2
	}
	return c
}

// Snapshot is a point-in-time view of a breaker.
type Snapshot struct {
	Enabled  bool   `json:"enabled"`
	State    State  `json:"state"`
	Failures int    `json:"consecutive_failures"`
	OpenedAt string `json:"opened_at,omitempty"`
}

// Breaker is a consecutive-failure circuit breaker. A disabled breaker runs
// every call and never changes state.
type Breaker struct {
	cfg BreakerConfig
	now func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	openedAt  time.Time
	inFlight  int
	successes int
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	return &Breaker{
		cfg:   cfg.normalized(),
		now:   time.Now,
		state: StateClosed,
	}
}

// Call runs fn unless the breaker is open. Rejected calls return ErrOpen
// without running fn. Context errors never count as failures.
func (b *Breaker) Call(ctx context.Context, fn func(context.Context) error) error {
	if !b.cfg.Enabled {
		return fn(ctx)
	}
	if err := b.admit(); err != nil {
		return err
	}

	err := fn(ctx)
	b.settle(err != nil && ctx.Err() == nil && b.counts(err))
	return err
}

func (b *Breaker) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := Snapshot{Enabled: b.cfg.Enabled, State: b.currentState(), Failures: b.failures}
	if !b.openedAt.IsZero() {
		snap.OpenedAt = b.openedAt.UTC().Format(time.RFC3339)
	}
	return snap
}

func (b *Breaker) counts(err error) bool {
	if b.cfg.Counts == nil {
		return true
	}
	return b.cfg.Counts(err)
}

// currentState reports an expired open state as half open. Caller holds mu.
func (b *Breaker) currentState() State {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) admit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.currentState() {
	case StateOpen:
		return ErrOpen
	case StateHalfOpen:
		if b.state == StateOpen {
			b.state = StateHalfOpen
			b.inFlight, b.successes = 0, 0
		}
		if b.inFlight >= b.cfg.Probes {
			return ErrOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *Breaker) settle(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen && b.inFlight > 0 {
		b.inFlight--
	}

	switch {
	case failed && b.state == StateHalfOpen:
		b.trip()
	case failed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	case b.state == StateHalfOpen:
		b.successes++
		if b.successes >= b.cfg.Probes && b.inFlight == 0 {
			b.state = StateClosed
			b.failures, b.successes = 0, 0
			b.openedAt = time.Time{}
		}
	default:
		b.failures = 0
	}
}

func (b *Breaker) trip() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.inFlight, b.successes = 0, 0
}
