package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hagni1/jurney/internal/redis"
)

func TestNewClient(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.NoError(t, redis.Ping(context.Background(), client))

	mr.Close()
	assert.Error(t, redis.Ping(context.Background(), client))
}
