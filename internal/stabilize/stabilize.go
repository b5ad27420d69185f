// Package stabilize waits for an asynchronous remote change to become
// observable. The cluster API acknowledges a modification before applying
// it, so every mutating call is followed by a Wait that probes the live
// state until it converges, times out, or fails fatally.
package stabilize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Outcome is a probe's verdict about the remote state.
type Outcome int

const (
	// Pending means the change has not been observed yet; keep polling.
	Pending Outcome = iota
	// Stable means the remote state matches the desired state.
	Stable
	// Failed means the remote system can no longer converge, for example
	// because the cluster terminated mid-change.
	Failed
)

// Probe inspects the remote state once. A non-nil error with Pending is
// tolerated (reads against an eventually-consistent API may fail
// transiently); it only surfaces through the timeout error. An error with
// Failed aborts the wait.
type Probe func(ctx context.Context) (Outcome, error)

// Config holds poll scheduling parameters.
type Config struct {
	Timeout         time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Option is a functional option for poll configuration.
type Option func(*Config)

// WithTimeout bounds the total time spent waiting for convergence.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithInitialInterval sets the delay before the second probe.
func WithInitialInterval(d time.Duration) Option {
	return func(c *Config) { c.InitialInterval = d }
}

// WithMaxInterval caps the delay between probes.
func WithMaxInterval(d time.Duration) Option {
	return func(c *Config) { c.MaxInterval = d }
}

// TimeoutError reports that the remote state did not converge within the
// budget. LastErr carries the most recent probe error, if any, so the
// caller can see the last observed condition.
type TimeoutError struct {
	Timeout time.Duration
	LastErr error
}

func (e *TimeoutError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("state did not stabilize within %v: %v", e.Timeout, e.LastErr)
	}
	return fmt.Sprintf("state did not stabilize within %v", e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.LastErr }

// ProbeFailedError reports that a probe observed a fatal condition.
type ProbeFailedError struct {
	Err error
}

func (e *ProbeFailedError) Error() string {
	return fmt.Sprintf("stabilization failed: %v", e.Err)
}

func (e *ProbeFailedError) Unwrap() error { return e.Err }

// pendingErr carries the latest probe error across poll iterations so a
// timeout can report the last observed condition.
type pendingErr struct {
	last error
}

func (e *pendingErr) Error() string {
	if e.last != nil {
		return e.last.Error()
	}
	return "change not yet observed"
}

// Wait polls probe until it reports Stable, sleeping between probes per a
// jittered exponential backoff. Returns nil on convergence, a *TimeoutError
// when the budget is exhausted, a *ProbeFailedError when the probe reports
// Failed, or the context error when cancelled mid-wait (no further probes
// are issued after cancellation).
func Wait(ctx context.Context, probe Probe, opts ...Option) error {
	cfg := &Config{
		Timeout:         10 * time.Minute,
		InitialInterval: 2 * time.Second,
		MaxInterval:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	b.MaxInterval = cfg.MaxInterval
	b.MaxElapsedTime = cfg.Timeout

	op := func() error {
		outcome, err := probe(ctx)
		switch outcome {
		case Stable:
			return nil
		case Failed:
			if err == nil {
				err = errors.New("probe reported a fatal condition")
			}
			return backoff.Permanent(&ProbeFailedError{Err: err})
		default:
			return &pendingErr{last: err}
		}
	}

	err := backoff.Retry(op, backoff.WithContext(b, ctx))
	if err == nil {
		return nil
	}

	var failed *ProbeFailedError
	if errors.As(err, &failed) {
		return failed
	}
	var pending *pendingErr
	if errors.As(err, &pending) {
		return &TimeoutError{Timeout: cfg.Timeout, LastErr: pending.last}
	}
	// Context cancellation surfaces directly from the backoff loop.
	return err
}
