package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrBackend is returned when a remote cache backend cannot be reached.
	ErrBackend = errors.New("cache backend unavailable")

	// ErrUnknownBackend is returned by Open for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown cache backend")
)

// backendErr tags err from a remote backend operation with ErrBackend.
func backendErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrBackend, op, err)
}

// transient is backendErr marked for retry by RetryWithBackoff.
func transient(op string, err error) error {
	return Retryable(backendErr(op, err))
}

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryDelay is the first backoff delay; it doubles per attempt.
var retryDelay = 100 * time.Millisecond

// retryAttempts bounds the calls RetryWithBackoff makes.
const retryAttempts = 3

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// Retryable, or has been called retryAttempts times. Waits between calls
// double from retryDelay and end early when ctx is done.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
}
