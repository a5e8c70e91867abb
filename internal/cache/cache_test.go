package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestClient_SetGetDelete(t *testing.T) {
	srv := miniredis.RunT(t)
	c := New(srv.Addr(), "", 0)
	ctx := context.Background()

	err := c.Set(ctx, "user:1", []byte(`{"name":"Marie"}`), time.Minute)
	assert.NoError(t, err)

	got, err := c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"Marie"}`), got)

	assert.NoError(t, c.Delete(ctx, "user:1"))

	got, err = c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_FailsSafeWhenRedisDown(t *testing.T) {
	srv := miniredis.RunT(t)
	c := New(srv.Addr(), "", 0)
	srv.Close()
	ctx := context.Background()

	got, err := c.Get(ctx, "anything")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, c.Set(ctx, "anything", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "anything"))
}

func TestClient_NilClientIsMiss(t *testing.T) {
	var c *Client
	got, err := c.Get(context.Background(), "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
