package ports

import (
	"context"
	"time"

	"bank-account-service/internal/core/domain"
)

// CustomerDirectory answers questions about account owners. Implementations
// never return transport errors: failures read as "absent" or false.
type CustomerDirectory interface {
	CustomerExists(ctx context.Context, customerID string) bool
	GetCustomerDetails(ctx context.Context, customerID string) (*domain.Customer, bool)
	HasCreditCard(ctx context.Context, customerID string) bool
}

// CustomerCache is a read-through cache for directory customer records.
type CustomerCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, customerID string) (*domain.Customer, error)
	Set(ctx context.Context, customer *domain.Customer, ttl time.Duration) error
}

// AccountLocker serializes read-modify-write sequences on one account.
type AccountLocker interface {
	// Lock blocks until the account is held or ctx/the backend's wait limit
	// expires. The returned release func must be called exactly once.
	Lock(ctx context.Context, accountID string) (release func(), err error)
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
