package redis

import (
	"context"
	"testing"
	"time"

	"bank-account-service/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCustomerCache(client)
	ctx := context.Background()

	result, err := cache.Get(ctx, "cust-1")
	assert.NoError(t, err)
	assert.Nil(t, result)

	customer := &domain.Customer{
		ID:             "cust-1",
		DocumentNumber: "12345678",
		Type:           domain.CustomerTypePersonal,
		Profile:        domain.ProfileVIP,
		Name:           "Ana Torres",
	}
	require.NoError(t, cache.Set(ctx, customer, time.Hour))

	result, err = cache.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, customer, result)
	assert.True(t, s.Exists("customer:cust-1"))
}

func TestCustomerCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCustomerCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &domain.Customer{ID: "cust-2"}, time.Second))

	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "cust-2")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestCustomerCache_CorruptEntry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewCustomerCache(client)

	require.NoError(t, s.Set("customer:cust-3", "{not json"))

	result, err := cache.Get(context.Background(), "cust-3")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCustomerCache_ServerDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr(), MaxRetries: -1})
	cache := NewCustomerCache(client)
	s.Close()

	_, err := cache.Get(context.Background(), "cust-4")
	assert.Error(t, err)
}
