// Package ratelimiter throttles repeated failed operations per key.
package ratelimiter

import (
	"sync"
	"time"
)

// AttemptLimiter counts failed attempts per key within a sliding window.
// The login handler keys it by client IP: once a key accumulates the
// limit of failures, Allow rejects it until old failures age out.
type AttemptLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	attempts map[string][]time.Time
}

// NewAttemptLimiter creates a limiter allowing up to limit failures per
// key within the window.
func NewAttemptLimiter(limit int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		limit:    limit,
		window:   window,
		attempts: make(map[string][]time.Time),
	}
}

// Allow reports whether the key is still under its failure limit.
func (l *AttemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.prune(key)) < l.limit
}

// Fail records a failed attempt for the key.
func (l *AttemptLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts[key] = append(l.prune(key), time.Now())
}

// Reset clears the key's failures, e.g. after a successful login.
func (l *AttemptLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, key)
}

// prune drops attempts older than the window. Callers must hold mu.
func (l *AttemptLimiter) prune(key string) []time.Time {
	cutoff := time.Now().Add(-l.window)
	kept := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = kept
	return kept
}
