package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_ReserveNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	reserved, doc, err := store.Reserve(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Nil(t, doc)

	val, err := client.Get(ctx, store.prefix+"k1").Result()
	require.NoError(t, err)
	assert.Equal(t, processingMarker, val)
	assert.Equal(t, time.Minute, mr.TTL(store.prefix+"k1"))
}

func TestIdempotencyStore_ReserveInFlight(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "k2", time.Minute)
	require.NoError(t, err)

	reserved, doc, err := store.Reserve(ctx, "k2", time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Nil(t, doc)
}

func TestIdempotencyStore_ReplayCompleted(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "k3", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, "k3", []byte("%PDF-1.3 test"), time.Minute))

	reserved, doc, err := store.Reserve(ctx, "k3", time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, "%PDF-1.3 test", string(doc))
}

func TestIdempotencyStore_Release(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.Reserve(ctx, "k4", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "k4"))

	reserved, _, err := store.Reserve(ctx, "k4", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyStore_ServerDown(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()
	mr.Close()

	_, _, err := NewIdempotencyStore(client).Reserve(context.Background(), "k5", time.Minute)
	assert.Error(t, err)
}
