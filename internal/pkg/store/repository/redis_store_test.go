package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStoreAdapterSetGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	adapter := NewRedisStoreAdapter(client)
	ctx := context.Background()

	mock.ExpectSet("key", []byte("value"), time.Minute).SetVal("OK")
	mock.ExpectGet("key").SetVal("value")

	err := adapter.Set(ctx, "key", []byte("value"), time.Minute)
	assert.NoError(t, err)

	raw, err := adapter.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("value"), raw)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreAdapterExists(t *testing.T) {
	client, mock := redismock.NewClientMock()
	adapter := NewRedisStoreAdapter(client)
	ctx := context.Background()

	mock.ExpectExists("present").SetVal(1)
	mock.ExpectExists("absent").SetVal(0)

	exists, err := adapter.Exists(ctx, "present")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = adapter.Exists(ctx, "absent")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreAdapterExpireAndTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	adapter := NewRedisStoreAdapter(client)
	ctx := context.Background()

	mock.ExpectExpire("key", time.Minute).SetVal(true)
	mock.ExpectTTL("key").SetVal(time.Minute)
	mock.ExpectDel("key").SetVal(1)

	ok, err := adapter.Expire(ctx, "key", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	ttl, err := adapter.TTL(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	assert.NoError(t, adapter.Delete(ctx, "key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
