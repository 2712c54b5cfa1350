package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bank-account-service/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// CustomerCache implements ports.CustomerCache. Records are stored as JSON
// under customer:{id}.
type CustomerCache struct {
	client *goredis.Client
	prefix string
}

// NewCustomerCache creates a new Redis-backed customer cache.
func NewCustomerCache(client *goredis.Client) *CustomerCache {
	return &CustomerCache{
		client: client,
		prefix: "customer:",
	}
}

// Get returns nil, nil if the key does not exist.
func (c *CustomerCache) Get(ctx context.Context, customerID string) (*domain.Customer, error) {
	val, err := c.client.Get(ctx, c.prefix+customerID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis customer get: %w", err)
	}

	var customer domain.Customer
	if err := json.Unmarshal(val, &customer); err != nil {
		return nil, fmt.Errorf("decode cached customer %s: %w", customerID, err)
	}
	return &customer, nil
}

// Set stores the customer record with TTL.
func (c *CustomerCache) Set(ctx context.Context, customer *domain.Customer, ttl time.Duration) error {
	val, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("encode customer %s: %w", customer.ID, err)
	}
	if err := c.client.Set(ctx, c.prefix+customer.ID, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis customer set: %w", err)
	}
	return nil
}
