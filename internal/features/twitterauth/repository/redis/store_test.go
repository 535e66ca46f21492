package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *store) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewHandshakeStore(client, ttl).(*store)
}

func TestHandshakeStore_SaveSetsTTL(t *testing.T) {
	mr, s := newTestStore(t, 15*time.Minute)

	require.NoError(t, s.Save(context.Background(), "token", "secret"))

	got, err := mr.Get(keyPrefix + "token")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Equal(t, 15*time.Minute, mr.TTL(keyPrefix+"token"))
}

func TestHandshakeStore_TakeIsSingleUse(t *testing.T) {
	_, s := newTestStore(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "token", "secret"))

	secret, ok, err := s.Take(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "secret", secret)

	_, ok, err = s.Take(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandshakeStore_Expires(t *testing.T) {
	mr, s := newTestStore(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "token", "secret"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := s.Take(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandshakeStore_RedisDown(t *testing.T) {
	mr, s := newTestStore(t, time.Minute)
	mr.Close()

	_, _, err := s.Take(context.Background(), "token")
	assert.Error(t, err)
	assert.Error(t, s.Save(context.Background(), "token", "secret"))
}
