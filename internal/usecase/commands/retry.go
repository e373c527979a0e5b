package commands

import (
	"context"
	"time"
)

// RetryPolicy is the bounded retry budget for the code-creation step.
// Delays are explicit data so tests can run the orchestrator against a
// no-op sleeper instead of real time.
type RetryPolicy struct {
	MaxAttempts int
	// BaseDelay doubles each attempt: base, 2*base, 4*base, ...
	BaseDelay time.Duration
	// SettleDelay is waited after each write before the lookup
	// validation pass, giving the platform's eventually consistent
	// read path time to catch up.
	SettleDelay time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		SettleDelay: 500 * time.Millisecond,
	}
}

// Backoff returns the delay before the given 1-based attempt.
// There is no delay before the first attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	return p.BaseDelay << (attempt - 2)
}

// Sleeper suspends for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func RealSleeper(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
