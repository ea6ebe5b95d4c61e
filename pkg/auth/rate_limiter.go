package auth

import (
	"context"
	"sync"
	"time"
)

// RateLimiter answers whether a keyed request may proceed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// TokenBucketLimiter grants each key a bucket of capacity tokens that
// refills one token per refill interval. New keys start with a full
// bucket, so it bounds bursts rather than sustained rates.
type TokenBucketLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*tokenBucket
	capacity int
	refill   time.Duration
}

type tokenBucket struct {
	remaining  int
	refilledAt time.Time
}

// NewTokenBucketLimiter creates a token bucket limiter. One token is
// restored per refill interval, up to capacity.
func NewTokenBucketLimiter(capacity int, refill time.Duration) *TokenBucketLimiter {
	l := &TokenBucketLimiter{
		buckets:  make(map[string]*tokenBucket),
		capacity: capacity,
		refill:   refill,
	}
	go l.evictStale()
	return l
}

// Allow spends one token from the key's bucket
func (l *TokenBucketLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &tokenBucket{remaining: l.capacity, refilledAt: now}
		l.buckets[key] = b
	}

	if restored := int(now.Sub(b.refilledAt) / l.refill); restored > 0 {
		b.remaining += restored
		if b.remaining > l.capacity {
			b.remaining = l.capacity
		}
		b.refilledAt = now
	}

	if b.remaining == 0 {
		return false, nil
	}
	b.remaining--
	return true, nil
}

// Reset discards the key's bucket; the next request starts full
func (l *TokenBucketLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
	return nil
}

// evictStale drops buckets idle for over an hour so one-off clients do
// not accumulate forever
func (l *TokenBucketLimiter) evictStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		l.mu.Lock()
		for key, b := range l.buckets {
			if b.refilledAt.Before(cutoff) {
				delete(l.buckets, key)
			}
		}
		l.mu.Unlock()
	}
}

// SlidingWindowLimiter allows at most limit requests per key within any
// trailing window, with no burst allowance beyond the limit itself.
type SlidingWindowLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

// NewSlidingWindowLimiter creates a sliding window limiter
func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
}

// Allow records the request unless the trailing window is already full
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.seen[key][:0]
	for _, at := range l.seen[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= l.limit {
		l.seen[key] = kept
		return false, nil
	}

	l.seen[key] = append(kept, now)
	return true, nil
}

// Reset forgets the key's request history
func (l *SlidingWindowLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.seen, key)
	return nil
}

// CompositeRateLimiter chains limiters; a request proceeds only when
// every limiter allows it
type CompositeRateLimiter struct {
	limiters []RateLimiter
}

// NewCompositeRateLimiter combines the given limiters
func NewCompositeRateLimiter(limiters ...RateLimiter) *CompositeRateLimiter {
	return &CompositeRateLimiter{limiters: limiters}
}

// Allow asks every limiter in order, stopping at the first veto or error
func (l *CompositeRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	for _, limiter := range l.limiters {
		allowed, err := limiter.Allow(ctx, key)
		if err != nil || !allowed {
			return false, err
		}
	}
	return true, nil
}

// Reset resets the key on every limiter
func (l *CompositeRateLimiter) Reset(ctx context.Context, key string) error {
	for _, limiter := range l.limiters {
		if err := limiter.Reset(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// IPRateLimiter guards unauthenticated traffic per client IP: a burst
// bucket of a quarter of the per-minute budget in front of the sustained
// per-minute window.
type IPRateLimiter struct {
	limiter RateLimiter
}

// NewIPRateLimiter creates the per-IP limiter for the given sustained
// requests-per-minute budget
func NewIPRateLimiter(requestsPerMinute int) *IPRateLimiter {
	burst := requestsPerMinute / 4
	if burst < 1 {
		burst = 1
	}

	return &IPRateLimiter{
		limiter: NewCompositeRateLimiter(
			NewTokenBucketLimiter(burst, time.Minute/time.Duration(requestsPerMinute)),
			NewSlidingWindowLimiter(requestsPerMinute, time.Minute),
		),
	}
}

// Allow checks the budget for one client address
func (l *IPRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	return l.limiter.Allow(ctx, "ip:"+ip)
}

// UserRateLimiter guards authenticated traffic per user id with a
// sustained per-minute window
type UserRateLimiter struct {
	limiter RateLimiter
}

// NewUserRateLimiter creates the per-user limiter
func NewUserRateLimiter(requestsPerMinute int) *UserRateLimiter {
	return &UserRateLimiter{
		limiter: NewSlidingWindowLimiter(requestsPerMinute, time.Minute),
	}
}

// Allow checks the budget for one user
func (l *UserRateLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	return l.limiter.Allow(ctx, "user:"+userID)
}
