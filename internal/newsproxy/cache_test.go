package newsproxy

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	mini := miniredis.RunT(t)

	c, err := NewRedisCache("redis://" + mini.Addr())
	require.NoError(t, err)
	defer c.Close() //nolint:errcheck

	ctx := t.Context()
	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte(`{"a":1}`), 30*time.Second))
	body, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(body))
	assert.Equal(t, 30*time.Second, mini.TTL(keyPrefix+":k"))
}

func TestNewRedisCacheBadURL(t *testing.T) {
	_, err := NewRedisCache("not a url")
	assert.Error(t, err)
}
