package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandshakeStore_TakeIsSingleUse(t *testing.T) {
	ctx := context.Background()
	s := NewHandshakeStore(time.Minute)

	require.NoError(t, s.Save(ctx, "token", "secret"))

	secret, ok, err := s.Take(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "secret", secret)

	_, ok, err = s.Take(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandshakeStore_UnknownToken(t *testing.T) {
	_, ok, err := NewHandshakeStore(time.Minute).Take(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandshakeStore_Expires(t *testing.T) {
	ctx := context.Background()
	s := NewHandshakeStore(20 * time.Millisecond)

	require.NoError(t, s.Save(ctx, "token", "secret"))
	time.Sleep(50 * time.Millisecond)

	_, ok, err := s.Take(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandshakeStore_ConcurrentTake(t *testing.T) {
	ctx := context.Background()
	s := NewHandshakeStore(time.Minute)
	require.NoError(t, s.Save(ctx, "token", "secret"))

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, _ := s.Take(ctx, "token"); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}
