package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T, ttl time.Duration) (*RedisGuard, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	g := NewRedisGuard(client, ttl)
	t.Cleanup(func() { _ = g.Close() })
	return g, srv
}

func unreachableGuard(t *testing.T) *RedisGuard {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	g := NewRedisGuard(client, time.Minute)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestRedisGuard_ClaimOnce(t *testing.T) {
	g, srv := newGuard(t, time.Minute)
	ctx := context.Background()

	claim, err := g.Claim(ctx, "resp-1", "first")
	require.NoError(t, err)
	assert.True(t, claim.Owned)
	assert.Equal(t, "first", claim.BookingID)

	stored, err := srv.Get(keyPrefix + "resp-1")
	require.NoError(t, err)
	assert.Equal(t, "pending:first", stored)
	assert.Equal(t, time.Minute, srv.TTL(keyPrefix+"resp-1"))
}

func TestRedisGuard_ReplayWhilePending(t *testing.T) {
	g, _ := newGuard(t, time.Minute)
	ctx := context.Background()

	_, err := g.Claim(ctx, "resp-1", "first")
	require.NoError(t, err)

	claim, err := g.Claim(ctx, "resp-1", "second")
	require.NoError(t, err)
	assert.False(t, claim.Owned)
	assert.False(t, claim.Confirmed)
	assert.Equal(t, "first", claim.BookingID)
}

func TestRedisGuard_ReplayAfterConfirm(t *testing.T) {
	g, srv := newGuard(t, time.Minute)
	ctx := context.Background()

	_, err := g.Claim(ctx, "resp-1", "first")
	require.NoError(t, err)
	require.NoError(t, g.Confirm(ctx, "resp-1", "first"))

	stored, err := srv.Get(keyPrefix + "resp-1")
	require.NoError(t, err)
	assert.Equal(t, "first", stored)

	claim, err := g.Claim(ctx, "resp-1", "second")
	require.NoError(t, err)
	assert.False(t, claim.Owned)
	assert.True(t, claim.Confirmed)
	assert.Equal(t, "first", claim.BookingID)
}

func TestRedisGuard_ReleaseAllowsReclaim(t *testing.T) {
	g, _ := newGuard(t, time.Minute)
	ctx := context.Background()

	_, err := g.Claim(ctx, "resp-1", "first")
	require.NoError(t, err)
	require.NoError(t, g.Release(ctx, "resp-1"))

	claim, err := g.Claim(ctx, "resp-1", "second")
	require.NoError(t, err)
	assert.True(t, claim.Owned)
	assert.Equal(t, "second", claim.BookingID)
}

func TestRedisGuard_ClaimExpires(t *testing.T) {
	g, srv := newGuard(t, time.Minute)
	ctx := context.Background()

	_, err := g.Claim(ctx, "resp-1", "first")
	require.NoError(t, err)

	srv.FastForward(2 * time.Minute)

	claim, err := g.Claim(ctx, "resp-1", "second")
	require.NoError(t, err)
	assert.True(t, claim.Owned)
	assert.Equal(t, "second", claim.BookingID)
}

func TestRedisGuard_KeysAreIndependent(t *testing.T) {
	g, _ := newGuard(t, time.Minute)
	ctx := context.Background()

	a, err := g.Claim(ctx, "resp-a", "id-a")
	require.NoError(t, err)
	b, err := g.Claim(ctx, "resp-b", "id-b")
	require.NoError(t, err)

	assert.True(t, a.Owned)
	assert.True(t, b.Owned)
}

func TestRedisGuard_ClaimSurfacesErrors(t *testing.T) {
	g := unreachableGuard(t)

	claim, err := g.Claim(context.Background(), "resp-1", "abc")

	assert.Error(t, err)
	assert.False(t, claim.Owned)
	assert.Empty(t, claim.BookingID)
}

func TestRedisGuard_ConfirmAndReleaseSurfaceErrors(t *testing.T) {
	g := unreachableGuard(t)

	assert.ErrorContains(t, g.Confirm(context.Background(), "resp-1", "abc"), "confirm delivery")
	assert.ErrorContains(t, g.Release(context.Background(), "resp-1"), "release delivery")
}
