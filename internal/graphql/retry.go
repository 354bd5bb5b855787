package graphql

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// retryPolicy — экспоненциальный backoff с equal-jitter.
type retryPolicy struct {
	attempts int
	initial  time.Duration
	max      time.Duration

	mu         sync.Mutex
	jitterRand *rand.Rand
}

func newRetryPolicy(attempts int, initial, maxDelay time.Duration) *retryPolicy {
	if attempts <= 0 {
		attempts = 1
	}
	if initial <= 0 {
		initial = 200 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 2 * time.Second
	}
	return &retryPolicy{
		attempts:   attempts,
		initial:    initial,
		max:        maxDelay,
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// do — выполняет fn до attempts раз, пока ошибка временная.
func (p *retryPolicy) do(ctx context.Context, fn func() error) error {
	delay := p.initial
	var err error
	for attempt := 1; ; attempt++ {
		err = fn()
		if err == nil || attempt >= p.attempts || !retryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(p.withJitterEqual(delay)):
		}
		delay = p.nextBackoff(delay)
	}
}

// retryable — повторяем сетевые сбои и 5xx/429; ошибки GraphQL, 4xx и битые ответы — нет.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrMalformedResponse) {
		return false
	}
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500 || statusErr.Code == http.StatusTooManyRequests
	}
	return true
}

func (p *retryPolicy) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > p.max {
		return p.max
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (p *retryPolicy) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	p.mu.Lock()
	jitter := time.Duration(p.jitterRand.Int63n(int64(d-half) + 1))
	p.mu.Unlock()
	return half + jitter
}
