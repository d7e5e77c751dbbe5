package retry

import (
	"context"
	"math/rand/v2"
	"time"
)

// IsRetryableFunc decides whether an attempt error is worth retrying.
type IsRetryableFunc func(error) bool

// Retrier runs an operation until it succeeds, exhausts attempts or the
// context is done.
type Retrier interface {
	Do(ctx context.Context, fn func() error) error
}

type Backoff interface {
	// Delay returns the pause before the given attempt, starting at 1.
	Delay(attempt int) time.Duration
}

type ExponentialBackoff struct {
	Base   time.Duration
	Factor float64
	Max    time.Duration
	Jitter float64
}

func (b ExponentialBackoff) Delay(attempt int) time.Duration {
	d := float64(b.Base)
	for i := 1; i < attempt; i++ {
		d *= b.Factor
	}
	if b.Max > 0 && d > float64(b.Max) {
		d = float64(b.Max)
	}
	if b.Jitter > 0 {
		d += d * b.Jitter * (rand.Float64()*2 - 1)
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

type noBackoff struct{}

func (noBackoff) Delay(int) time.Duration { return 0 }

type retrier struct {
	maxAttempts int
	backoff     Backoff
	isRetryable IsRetryableFunc
}

type RetryOption func(*retrier)

func WithMaxAttempts(n int) RetryOption {
	return func(r *retrier) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

func WithBackoff(b Backoff) RetryOption {
	return func(r *retrier) { r.backoff = b }
}

func WithIsRetryableFunc(f IsRetryableFunc) RetryOption {
	return func(r *retrier) { r.isRetryable = f }
}

func New(opts ...RetryOption) Retrier {
	r := &retrier{
		maxAttempts: 1,
		backoff:     noBackoff{},
		isRetryable: func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *retrier) Do(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !r.isRetryable(err) || attempt == r.maxAttempts {
			return err
		}

		select {
		case <-time.After(r.backoff.Delay(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
