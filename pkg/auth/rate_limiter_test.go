package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketLimiter_Allow_ExhaustsBucket(t *testing.T) {
	limiter := NewTokenBucketLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, allowed, "bucket must be empty")
}

func TestTokenBucketLimiter_Allow_RefillsOverTime(t *testing.T) {
	limiter := NewTokenBucketLimiter(1, 10*time.Millisecond)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.False(t, allowed)

	time.Sleep(25 * time.Millisecond)

	allowed, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, allowed, "elapsed time should refill the bucket")
}

func TestTokenBucketLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewTokenBucketLimiter(1, time.Hour)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, allowed, "key b has its own bucket")
}

func TestTokenBucketLimiter_Reset(t *testing.T) {
	limiter := NewTokenBucketLimiter(1, time.Hour)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "client"))

	allowed, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, allowed, "reset restores a full bucket")
}

func TestSlidingWindowLimiter_Allow_EnforcesLimit(t *testing.T) {
	limiter := NewSlidingWindowLimiter(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestSlidingWindowLimiter_Allow_WindowSlides(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, 20*time.Millisecond)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	require.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, allowed, "old requests must age out of the window")
}

func TestCompositeRateLimiter_AllMustAllow(t *testing.T) {
	ctx := context.Background()
	permissive := NewSlidingWindowLimiter(100, time.Minute)
	strict := NewSlidingWindowLimiter(1, time.Minute)
	composite := NewCompositeRateLimiter(permissive, strict)

	allowed, err := composite.Allow(ctx, "client")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = composite.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, allowed, "strict limiter vetoes the request")
}

type failingLimiter struct{ err error }

func (l failingLimiter) Allow(context.Context, string) (bool, error) { return false, l.err }
func (l failingLimiter) Reset(context.Context, string) error        { return l.err }

func TestCompositeRateLimiter_PropagatesErrors(t *testing.T) {
	cause := errors.New("backend down")
	composite := NewCompositeRateLimiter(failingLimiter{err: cause})

	allowed, err := composite.Allow(context.Background(), "client")

	assert.False(t, allowed)
	assert.ErrorIs(t, err, cause)
}

func TestIPRateLimiter_BurstThenSustained(t *testing.T) {
	// 8/minute gives a burst bucket of 2
	limiter := NewIPRateLimiter(8)
	ctx := context.Background()

	allowedCount := 0
	for i := 0; i < 4; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		if allowed {
			allowedCount++
		}
	}

	assert.Equal(t, 2, allowedCount, "burst bucket caps immediate traffic")
}

func TestUserRateLimiter_Allow(t *testing.T) {
	limiter := NewUserRateLimiter(1)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, allowed, "limits are per user")
}
