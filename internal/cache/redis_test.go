package cache

import (
	"context"
	"testing"
	"time"

	"github.com/kdduha/vision-relay/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRedisCache_UnreachableServer(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "127.0.0.1:1", TTL: time.Minute})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	val, found, err := c.Get(ctx, "analyze:key")
	assert.Error(t, err)
	assert.False(t, found)
	assert.Empty(t, val)

	assert.Error(t, c.Set(ctx, "analyze:key", "I see a cat."))
	assert.Error(t, c.Ping(ctx))
}
