package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pathfinder-stats/internal/redis"
)

func TestOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	t.Run("single mode pings", func(t *testing.T) {
		client, err := redis.Open(redis.Target{Addrs: []string{mr.Addr()}}, nil)
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		assert.NoError(t, redis.Ping(context.Background(), client, time.Second))
	})

	t.Run("single mode requires an endpoint", func(t *testing.T) {
		_, err := redis.Open(redis.Target{Mode: redis.ModeSingle}, nil)
		assert.Error(t, err)
	})

	t.Run("cluster mode requires endpoints", func(t *testing.T) {
		_, err := redis.Open(redis.Target{Mode: redis.ModeCluster}, nil)
		assert.Error(t, err)
	})

	t.Run("sentinel mode requires a master", func(t *testing.T) {
		_, err := redis.Open(redis.Target{Mode: redis.ModeSentinel, Addrs: []string{mr.Addr()}}, nil)
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := redis.Open(redis.Target{Mode: "ring", Addrs: []string{mr.Addr()}}, nil)
		assert.Error(t, err)
	})
}
