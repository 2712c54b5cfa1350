package directory

import (
	"context"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/metrics"

	"github.com/rs/zerolog"
)

// CachedDirectory reads customer records through a cache. Credit-card
// existence is always asked live.
type CachedDirectory struct {
	next  ports.CustomerDirectory
	cache ports.CustomerCache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedDirectory decorates next with cache.
func NewCachedDirectory(next ports.CustomerDirectory, cache ports.CustomerCache, ttl time.Duration, log zerolog.Logger) *CachedDirectory {
	return &CachedDirectory{next: next, cache: cache, ttl: ttl, log: log}
}

func (d *CachedDirectory) CustomerExists(ctx context.Context, customerID string) bool {
	_, ok := d.GetCustomerDetails(ctx, customerID)
	return ok
}

func (d *CachedDirectory) GetCustomerDetails(ctx context.Context, customerID string) (*domain.Customer, bool) {
	cached, err := d.cache.Get(ctx, customerID)
	if err != nil {
		d.log.Warn().Err(err).Str("customer_id", customerID).Msg("directory: cache read failed")
	} else if cached != nil {
		metrics.DirectoryLookups.WithLabelValues(kindCustomer, "cache").Inc()
		return cached, true
	}

	customer, ok := d.next.GetCustomerDetails(ctx, customerID)
	if !ok {
		return nil, false
	}
	if err := d.cache.Set(ctx, customer, d.ttl); err != nil {
		d.log.Warn().Err(err).Str("customer_id", customerID).Msg("directory: cache write failed")
	}
	return customer, true
}

func (d *CachedDirectory) HasCreditCard(ctx context.Context, customerID string) bool {
	return d.next.HasCreditCard(ctx, customerID)
}
