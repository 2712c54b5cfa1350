package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the account kind. It decides which terms record is set.
type AccountType string

const (
	AccountTypeSavings   AccountType = "SAVINGS"
	AccountTypeChecking  AccountType = "CHECKING"
	AccountTypeFixedTerm AccountType = "FIXED_TERM"
)

// Valid reports whether t is one of the known account kinds.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeFixedTerm:
		return true
	}
	return false
}

// CustomerType is the directory classification of an account owner.
type CustomerType string

const (
	CustomerTypePersonal CustomerType = "PERSONAL"
	CustomerTypeBusiness CustomerType = "BUSINESS"
)

// CustomerProfile modifies fee and limit rules.
type CustomerProfile string

const (
	ProfileRegular CustomerProfile = "REGULAR"
	ProfileVIP     CustomerProfile = "VIP"
	ProfilePYME    CustomerProfile = "PYME"
)

// Valid reports whether p is a known profile. The empty profile is not valid.
func (p CustomerProfile) Valid() bool {
	switch p {
	case ProfileRegular, ProfileVIP, ProfilePYME:
		return true
	}
	return false
}

// SavingsTerms holds the fields that only apply to savings accounts.
type SavingsTerms struct {
	MonthlyTransactionLimit int              `json:"monthly_transaction_limit"`
	TransactionCommission   decimal.Decimal  `json:"transaction_commission"`
	MinimumDailyBalance     *decimal.Decimal `json:"minimum_daily_balance,omitempty"` // VIP only
	HasRequiredCreditCard   bool             `json:"has_required_credit_card"`
}

// CheckingTerms holds the fields that only apply to checking accounts.
type CheckingTerms struct {
	MaintenanceFee decimal.Decimal `json:"maintenance_fee"`
}

// FixedTermTerms holds the fields that only apply to fixed-term accounts.
type FixedTermTerms struct {
	InterestRate decimal.Decimal `json:"interest_rate"` // informational, any sign
}

// Account is the balance-bearing record. Exactly one of Savings, Checking,
// FixedTerm is non-nil and it matches Type.
type Account struct {
	ID                    string          `json:"id"`
	AccountNumber         string          `json:"account_number"`
	Type                  AccountType     `json:"account_type"`
	CustomerID            string          `json:"customer_id"`
	CustomerType          CustomerType    `json:"customer_type,omitempty"`
	Profile               CustomerProfile `json:"customer_profile,omitempty"`
	Balance               decimal.Decimal `json:"balance"`
	AuthorizedSigners     []string        `json:"authorized_signers"`
	TransactionsPerformed *int            `json:"transactions_performed,omitempty"`
	Savings               *SavingsTerms   `json:"savings,omitempty"`
	Checking              *CheckingTerms  `json:"checking,omitempty"`
	FixedTerm             *FixedTermTerms `json:"fixed_term,omitempty"`
	DailyBalances         DailyBalances   `json:"daily_balances"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// CommissionDue returns the flat fee owed on the next withdrawal. It is zero
// for non-savings accounts, PYME accounts, and counters below the limit.
func (a *Account) CommissionDue() decimal.Decimal {
	if a.Savings == nil || a.Profile == ProfilePYME {
		return decimal.Zero
	}
	if a.performed() >= a.Savings.MonthlyTransactionLimit {
		return a.Savings.TransactionCommission
	}
	return decimal.Zero
}

// CommissionsOwed is the lifetime commission implied by the counters:
// commission × max(0, performed − limit). PYME and non-savings accounts owe nothing.
func (a *Account) CommissionsOwed() decimal.Decimal {
	if a.Savings == nil || a.Profile == ProfilePYME {
		return decimal.Zero
	}
	excess := a.performed() - a.Savings.MonthlyTransactionLimit
	if excess <= 0 {
		return decimal.Zero
	}
	return a.Savings.TransactionCommission.Mul(decimal.NewFromInt(int64(excess)))
}

// RemainingFreeTransactions returns how many withdrawals are left before the
// commission applies, or nil when the account has no monthly limit.
func (a *Account) RemainingFreeTransactions() *int {
	if a.Savings == nil {
		return nil
	}
	left := a.Savings.MonthlyTransactionLimit - a.performed()
	if left < 0 {
		left = 0
	}
	return &left
}

// IncrementTransactions bumps the counter, starting a nil counter at 1.
func (a *Account) IncrementTransactions() {
	n := a.performed() + 1
	a.TransactionsPerformed = &n
}

// IncrementTransactionsIfTracked bumps the counter only when it already exists.
func (a *Account) IncrementTransactionsIfTracked() {
	if a.TransactionsPerformed == nil {
		return
	}
	n := *a.TransactionsPerformed + 1
	a.TransactionsPerformed = &n
}

// ResetTransactions zeroes a tracked counter. Untracked counters stay nil.
func (a *Account) ResetTransactions() {
	if a.TransactionsPerformed == nil {
		return
	}
	zero := 0
	a.TransactionsPerformed = &zero
}

// RecordSnapshot appends the current balance to the history, initializing
// the history on first write.
func (a *Account) RecordSnapshot(now time.Time) {
	a.DailyBalances = a.DailyBalances.Record(now, a.Balance)
}

func (a *Account) performed() int {
	if a.TransactionsPerformed == nil {
		return 0
	}
	return *a.TransactionsPerformed
}
