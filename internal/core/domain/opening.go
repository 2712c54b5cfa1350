package domain

import "github.com/shopspring/decimal"

// Opening is a request to open an account of one specific kind. The set of
// implementations is closed: SavingsOpening, CheckingOpening, FixedTermOpening.
type Opening interface {
	Kind() AccountType
	Owner() string
	isOpening()
}

// SavingsOpening carries the inputs for a savings account.
type SavingsOpening struct {
	CustomerID              string
	Profile                 CustomerProfile
	Balance                 decimal.Decimal
	MonthlyTransactionLimit int
	HasRequiredCreditCard   bool
}

func (SavingsOpening) Kind() AccountType { return AccountTypeSavings }
func (o SavingsOpening) Owner() string   { return o.CustomerID }
func (SavingsOpening) isOpening()        {}

// CheckingOpening carries the inputs for a checking account.
type CheckingOpening struct {
	CustomerID     string
	Profile        CustomerProfile
	Balance        decimal.Decimal
	MaintenanceFee decimal.Decimal
}

func (CheckingOpening) Kind() AccountType { return AccountTypeChecking }
func (o CheckingOpening) Owner() string   { return o.CustomerID }
func (CheckingOpening) isOpening()        {}

// FixedTermOpening carries the inputs for a fixed-term account.
type FixedTermOpening struct {
	CustomerID   string
	Profile      CustomerProfile
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
}

func (FixedTermOpening) Kind() AccountType { return AccountTypeFixedTerm }
func (o FixedTermOpening) Owner() string   { return o.CustomerID }
func (FixedTermOpening) isOpening()        {}
