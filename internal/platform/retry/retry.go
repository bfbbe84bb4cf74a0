// Package retry applies bounded exponential backoff around a fallible call.
package retry

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

type Config struct {
	// MaxAttempts is the total invocation budget, first call included.
	MaxAttempts int
	// InitialDelay is slept after the first retryable failure.
	InitialDelay time.Duration
	// Multiplier scales the delay after every failed attempt.
	Multiplier float64
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 2 * time.Second,
		Multiplier:   2,
	}
}

func (c Config) normalized() Config {
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 1
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = time.Second
	}
	if c.Multiplier < 1 {
		c.Multiplier = 1
	}
	return c
}

type retryableMarker struct {
	cause error
}

func (e *retryableMarker) Error() string { return e.cause.Error() }
func (e *retryableMarker) Unwrap() error { return e.cause }

// MarkRetryable tags err so Do will re-invoke the call on it.
func MarkRetryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableMarker{cause: err}
}

func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var marker *retryableMarker
	return errors.As(err, &marker)
}

// Do invokes fn up to cfg.MaxAttempts times. A failure not marked
// retryable propagates immediately. On exhaustion the last error is
// returned. The inter-attempt sleep honors ctx cancellation.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	cfg = cfg.normalized()

	delay := cfg.InitialDelay
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "retry aborted")
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Wrap(ctx.Err(), "retry aborted")
		case <-timer.C:
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return errors.Wrapf(lastErr, "exhausted %d attempts", cfg.MaxAttempts)
}
