package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client), mr
}

func TestAside_LoadsOnceThenHits(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()
	loads := 0
	load := func(dest *profile) func() error {
		return func() error {
			loads++
			*dest = profile{ID: 1, Name: "ada"}
			return nil
		}
	}

	var first profile
	require.NoError(t, c.Aside(ctx, UserKey(1), &first, UserTTL, load(&first)))
	var second profile
	require.NoError(t, c.Aside(ctx, UserKey(1), &second, UserTTL, load(&second)))

	assert.Equal(t, 1, loads)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("user:1"))
	assert.Equal(t, UserTTL, mr.TTL("user:1"))
}

func TestAside_LoaderErrorIsNotCached(t *testing.T) {
	c, mr := setupCache(t)
	boom := errors.New("not found")

	var p profile
	err := c.Aside(context.Background(), UserKey(2), &p, UserTTL, func() error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("user:2"))
}

func TestAside_RedisDownFallsBackToLoader(t *testing.T) {
	c, mr := setupCache(t)
	mr.Close()

	var p profile
	err := c.Aside(context.Background(), UserKey(3), &p, UserTTL, func() error {
		p = profile{ID: 3}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), p.ID)
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	assert.False(t, c.Enabled())
	assert.False(t, New(nil).Enabled())

	var p profile
	require.NoError(t, c.Aside(context.Background(), "k", &p, time.Minute, func() error {
		p.Name = "loaded"
		return nil
	}))
	assert.Equal(t, "loaded", p.Name)
	c.Invalidate(context.Background(), "k")
}

func TestInvalidate(t *testing.T) {
	c, mr := setupCache(t)
	require.NoError(t, c.SetJSON(context.Background(), UserKey(9), profile{ID: 9}, time.Minute))

	c.Invalidate(context.Background(), UserKey(9))
	assert.False(t, mr.Exists("user:9"))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client := Connect(mr.Addr())
	require.NotNil(t, client)
	client.Close()

	client = Connect("redis://" + mr.Addr() + "/0")
	require.NotNil(t, client)
	client.Close()

	assert.Nil(t, Connect("redis://%zz"))
}
