package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(maxAttempts int) Config {
	return Config{
		MaxAttempts:  maxAttempts,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return MarkRetryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 invocations, got %d", calls)
	}
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	base := errors.New("always failing")
	err := Do(context.Background(), fastConfig(4), func(ctx context.Context) error {
		calls++
		return MarkRetryable(base)
	})
	if err == nil {
		t.Fatalf("expected error after exhaustion")
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected last error to be preserved, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected 4 invocations, got %d", calls)
	}
}

func TestDo_NonRetryableFailsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	fatal := errors.New("bad credentials")
	err := Do(context.Background(), fastConfig(5), func(ctx context.Context) error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single invocation, got %d", calls)
	}
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	cfg := Config{MaxAttempts: 5, InitialDelay: time.Minute, Multiplier: 2}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := Do(ctx, cfg, func(ctx context.Context) error {
		calls++
		return MarkRetryable(errors.New("transient"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one invocation before cancellation, got %d", calls)
	}
}

func TestMarkRetryable_NilPassthrough(t *testing.T) {
	t.Parallel()

	if MarkRetryable(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
	if IsRetryable(nil) {
		t.Fatalf("nil must not be retryable")
	}
}

func TestIsRetryable_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	err := MarkRetryable(errors.New("transient"))
	wrapped := errors.Join(errors.New("context"), err)
	if !IsRetryable(wrapped) {
		t.Fatalf("expected marker to survive wrapping")
	}
}
