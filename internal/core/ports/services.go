package ports

import (
	"context"
	"time"

	"bank-account-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// AccountService opens accounts under the account rules and serves reads.
type AccountService interface {
	CreateAccount(ctx context.Context, opening domain.Opening) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
	GetBalance(ctx context.Context, id string) (*BalanceView, error)
	DeleteAccount(ctx context.Context, id string) error
}

// BalanceView is the balance summary of one account.
type BalanceView struct {
	AccountID                 string
	AccountNumber             string
	Type                      domain.AccountType
	Balance                   decimal.Decimal
	TransactionsPerformed     *int
	RemainingFreeTransactions *int
}

// LedgerService mutates balances and counters.
type LedgerService interface {
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error)
	Transfer(ctx context.Context, sourceID, destinationID string, amount decimal.Decimal) (*TransferResult, error)
	UpdateAuthorizedSigners(ctx context.Context, accountID string, signers []string) (*domain.Account, error)
	ResetTransactionCounter(ctx context.Context, accountID string) (*domain.Account, error)
}

// TransferResult carries both legs of a completed transfer.
type TransferResult struct {
	Source      *domain.Account
	Destination *domain.Account
}

// DebitCardService manages cards and routes card payments.
type DebitCardService interface {
	CreateDebitCard(ctx context.Context, req CreateDebitCardRequest) (*domain.DebitCard, error)
	GetDebitCard(ctx context.Context, id string) (*domain.DebitCard, error)
	LinkAccount(ctx context.Context, cardID, accountID string, isPrimary bool) (*domain.DebitCard, error)
	UnlinkAccount(ctx context.Context, cardID, accountID string) (*domain.DebitCard, error)
	ProcessPayment(ctx context.Context, cardNumber string, amount decimal.Decimal) (bool, error)
}

// CreateDebitCardRequest holds validated input for card creation.
type CreateDebitCardRequest struct {
	CardNumber          string
	CustomerID          string
	PrimaryAccountID    string
	SecondaryAccountIDs []string
}

// ReportingService computes read-only views over a customer's accounts.
type ReportingService interface {
	AverageDailyBalance(ctx context.Context, customerID string) (map[string]decimal.Decimal, error)
	CommissionsReport(ctx context.Context, customerID string, start, end time.Time) (map[string]decimal.Decimal, error)
}
