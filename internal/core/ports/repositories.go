package ports

import (
	"context"

	"bank-account-service/internal/core/domain"
)

// AccountRepository is the Account Store. Each call is one round trip and
// atomic for the single record it touches.
type AccountRepository interface {
	// FindByID returns nil, nil when no account has the id.
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// Save inserts or replaces the account, assigning an id when empty.
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
	DeleteByID(ctx context.Context, id string) error
}

// DebitCardRepository defines persistence operations for debit cards.
type DebitCardRepository interface {
	// FindByID returns nil, nil when no card has the id.
	FindByID(ctx context.Context, id string) (*domain.DebitCard, error)
	// FindByCardNumber returns nil, nil when the number is unknown.
	FindByCardNumber(ctx context.Context, cardNumber string) (*domain.DebitCard, error)
	Save(ctx context.Context, card *domain.DebitCard) (*domain.DebitCard, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
