package service

import (
	"fmt"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/pkg/apperror"

	"github.com/shopspring/decimal"
)

// AccountRules holds the constants the account factory applies. Values come
// from the ledger config section.
type AccountRules struct {
	VIPMinimumBalance decimal.Decimal
	DefaultCommission decimal.Decimal
}

// DefaultAccountRules mirrors the ledger config defaults.
func DefaultAccountRules() AccountRules {
	return AccountRules{
		VIPMinimumBalance: decimal.NewFromInt(1000),
		DefaultCommission: decimal.RequireFromString("1.00"),
	}
}

// Open validates an opening and builds the account it describes. It does not
// touch any store; id and account number are assigned by the caller.
func (r AccountRules) Open(opening domain.Opening, now time.Time) (*domain.Account, error) {
	if opening.Owner() == "" {
		return nil, apperror.Validation("customer_id is required")
	}

	switch o := opening.(type) {
	case domain.SavingsOpening:
		return r.openSavings(o, now)
	case domain.CheckingOpening:
		return r.openChecking(o, now)
	case domain.FixedTermOpening:
		return r.openFixedTerm(o, now)
	default:
		return nil, apperror.ErrInvalidAccountType(fmt.Sprintf("unsupported account opening %T", opening))
	}
}

func (r AccountRules) openSavings(o domain.SavingsOpening, now time.Time) (*domain.Account, error) {
	if !o.Profile.Valid() {
		return nil, apperror.Validation("customer_profile is required for savings accounts")
	}
	if o.Balance.IsNegative() {
		return nil, apperror.Validation("balance must not be negative")
	}
	if o.MonthlyTransactionLimit < 0 {
		return nil, apperror.Validation("monthly_transaction_limit must not be negative")
	}

	terms := &domain.SavingsTerms{
		MonthlyTransactionLimit: o.MonthlyTransactionLimit,
		TransactionCommission:   r.DefaultCommission,
	}
	if o.Profile == domain.ProfileVIP {
		if !o.HasRequiredCreditCard {
			return nil, apperror.ErrCreditCardRequired()
		}
		if o.Balance.LessThan(r.VIPMinimumBalance) {
			return nil, apperror.ErrMinimumBalance(r.VIPMinimumBalance)
		}
		minimum := r.VIPMinimumBalance
		terms.MinimumDailyBalance = &minimum
		terms.HasRequiredCreditCard = true
	}

	zero := 0
	a := newAccount(domain.AccountTypeSavings, o.CustomerID, o.Profile, o.Balance, now)
	a.TransactionsPerformed = &zero
	a.Savings = terms
	a.RecordSnapshot(now)
	return a, nil
}

func (r AccountRules) openChecking(o domain.CheckingOpening, now time.Time) (*domain.Account, error) {
	if !o.Balance.IsPositive() {
		return nil, apperror.Validation("balance must be greater than zero")
	}
	if !o.MaintenanceFee.IsPositive() {
		return nil, apperror.Validation("maintenance_fee must be greater than zero")
	}

	a := newAccount(domain.AccountTypeChecking, o.CustomerID, o.Profile, o.Balance, now)
	a.Checking = &domain.CheckingTerms{MaintenanceFee: o.MaintenanceFee}
	return a, nil
}

func (r AccountRules) openFixedTerm(o domain.FixedTermOpening, now time.Time) (*domain.Account, error) {
	if !o.Balance.IsPositive() {
		return nil, apperror.Validation("balance must be greater than zero")
	}

	a := newAccount(domain.AccountTypeFixedTerm, o.CustomerID, o.Profile, o.Balance, now)
	a.FixedTerm = &domain.FixedTermTerms{InterestRate: o.InterestRate}
	a.RecordSnapshot(now)
	return a, nil
}

func newAccount(kind domain.AccountType, customerID string, profile domain.CustomerProfile, balance decimal.Decimal, now time.Time) *domain.Account {
	return &domain.Account{
		Type:              kind,
		CustomerID:        customerID,
		Profile:           profile,
		Balance:           balance,
		AuthorizedSigners: []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
