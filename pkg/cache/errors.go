package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnavailable means a remote backend did not answer.
	ErrUnavailable = errors.New("cache backend unavailable")

	// ErrInvalidConfig means a backend was selected without the address or
	// URI it needs.
	ErrInvalidConfig = errors.New("invalid cache configuration")
)

// RetryableError marks a failure that is worth another attempt.
type RetryableError struct{ Err error }

// Retryable marks err as retryable. A nil error stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or anything it wraps, was marked with
// [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Backoff describes how connection attempts are repeated.
type Backoff struct {
	Attempts int           // total tries, including the first
	Delay    time.Duration // wait after the first failure
	MaxDelay time.Duration // cap for the doubled delay; zero means no cap
}

// DefaultBackoff is used when a remote backend is opened.
var DefaultBackoff = Backoff{Attempts: 3, Delay: time.Second, MaxDelay: 4 * time.Second}

// Retry calls fn until it succeeds, returns an error not marked [Retryable],
// runs out of attempts or ctx is done. The delay doubles after each failure.
func (b Backoff) Retry(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay

	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; b.MaxDelay > 0 && delay > b.MaxDelay {
			delay = b.MaxDelay
		}
	}
	return err
}

// waitReady pings a freshly opened backend until it answers. Failures are
// reported as [ErrUnavailable] naming the backend and its address.
func waitReady(ctx context.Context, b Backoff, backend, addr string, ping func(context.Context) error) error {
	return b.Retry(ctx, func() error {
		if err := ping(ctx); err != nil {
			return Retryable(fmt.Errorf("%w: %s %s: %v", ErrUnavailable, backend, addr, err))
		}
		return nil
	})
}
