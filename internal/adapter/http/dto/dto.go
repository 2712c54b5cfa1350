package dto

import (
	"time"

	"bank-account-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Monetary fields accept JSON numbers or strings and encode as strings.
// Amount positivity is checked by the services.

// CreateSavingsAccountRequest is the request body for opening a savings account.
type CreateSavingsAccountRequest struct {
	CustomerID              string          `json:"customer_id" binding:"required,max=64,safe_id"`
	CustomerProfile         string          `json:"customer_profile" binding:"omitempty,oneof=REGULAR VIP PYME"`
	Balance                 decimal.Decimal `json:"balance"`
	MonthlyTransactionLimit *int            `json:"monthly_transaction_limit" binding:"required,gte=0"`
	HasRequiredCreditCard   bool            `json:"has_required_credit_card"`
}

// ToOpening converts the request into a domain opening.
func (r CreateSavingsAccountRequest) ToOpening() domain.SavingsOpening {
	return domain.SavingsOpening{
		CustomerID:              r.CustomerID,
		Profile:                 domain.CustomerProfile(r.CustomerProfile),
		Balance:                 r.Balance,
		MonthlyTransactionLimit: derefInt(r.MonthlyTransactionLimit),
		HasRequiredCreditCard:   r.HasRequiredCreditCard,
	}
}

// CreateCheckingAccountRequest is the request body for opening a checking account.
type CreateCheckingAccountRequest struct {
	CustomerID      string          `json:"customer_id" binding:"required,max=64,safe_id"`
	CustomerProfile string          `json:"customer_profile" binding:"omitempty,oneof=REGULAR VIP PYME"`
	Balance         decimal.Decimal `json:"balance"`
	MaintenanceFee  decimal.Decimal `json:"maintenance_fee"`
}

func (r CreateCheckingAccountRequest) ToOpening() domain.CheckingOpening {
	return domain.CheckingOpening{
		CustomerID:     r.CustomerID,
		Profile:        domain.CustomerProfile(r.CustomerProfile),
		Balance:        r.Balance,
		MaintenanceFee: r.MaintenanceFee,
	}
}

// CreateFixedTermAccountRequest is the request body for opening a fixed-term account.
type CreateFixedTermAccountRequest struct {
	CustomerID      string           `json:"customer_id" binding:"required,max=64,safe_id"`
	CustomerProfile string           `json:"customer_profile" binding:"omitempty,oneof=REGULAR VIP PYME"`
	Balance         decimal.Decimal  `json:"balance"`
	InterestRate    *decimal.Decimal `json:"interest_rate" binding:"required"`
}

func (r CreateFixedTermAccountRequest) ToOpening() domain.FixedTermOpening {
	return domain.FixedTermOpening{
		CustomerID:   r.CustomerID,
		Profile:      domain.CustomerProfile(r.CustomerProfile),
		Balance:      r.Balance,
		InterestRate: derefDecimal(r.InterestRate),
	}
}

// Required pointers are non-nil after binding; the zero fallback only
// applies to requests built in code.
func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefDecimal(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

// AmountRequest is the request body for deposits and withdrawals.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest is the request body for a transfer between two accounts.
type TransferRequest struct {
	SourceAccountID      string          `json:"source_account_id" binding:"required,max=64,safe_id"`
	DestinationAccountID string          `json:"destination_account_id" binding:"required,max=64,safe_id"`
	Amount               decimal.Decimal `json:"amount"`
}

// UpdateSignersRequest replaces the authorized signer set.
type UpdateSignersRequest struct {
	AuthorizedSigners []string `json:"authorized_signers" binding:"max=50,dive,required,max=64,safe_id"`
}

// CreateDebitCardRequest is the request body for issuing a debit card.
type CreateDebitCardRequest struct {
	CardNumber          string   `json:"card_number" binding:"required,card_number"`
	CustomerID          string   `json:"customer_id" binding:"required,max=64,safe_id"`
	PrimaryAccountID    string   `json:"primary_account_id" binding:"required,max=64,safe_id"`
	SecondaryAccountIDs []string `json:"secondary_account_ids" binding:"max=20,dive,required,max=64,safe_id"`
}

// LinkAccountRequest attaches an account to a card.
type LinkAccountRequest struct {
	AccountID string `json:"account_id" binding:"required,max=64,safe_id"`
	IsPrimary bool   `json:"is_primary"`
}

// PaymentRequest is the request body for a card payment.
type PaymentRequest struct {
	CardNumber string          `json:"card_number" binding:"required,card_number"`
	Amount     decimal.Decimal `json:"amount"`
}

// PaymentResponse is the response body for an approved card payment.
type PaymentResponse struct {
	Approved   bool            `json:"approved"`
	CardNumber string          `json:"card_number"` // masked
	Amount     decimal.Decimal `json:"amount"`
}

// AccountResponse is the flat public shape of an account. Kind-specific
// fields are omitted when they do not apply.
type AccountResponse struct {
	ID                      string               `json:"id"`
	AccountNumber           string               `json:"account_number"`
	AccountType             string               `json:"account_type"`
	CustomerID              string               `json:"customer_id"`
	CustomerType            string               `json:"customer_type,omitempty"`
	CustomerProfile         string               `json:"customer_profile,omitempty"`
	Balance                 decimal.Decimal      `json:"balance"`
	AuthorizedSigners       []string             `json:"authorized_signers"`
	TransactionsPerformed   *int                 `json:"transactions_performed,omitempty"`
	MonthlyTransactionLimit *int                 `json:"monthly_transaction_limit,omitempty"`
	TransactionCommission   *decimal.Decimal     `json:"transaction_commission,omitempty"`
	MinimumDailyBalance     *decimal.Decimal     `json:"minimum_daily_balance,omitempty"`
	HasRequiredCreditCard   *bool                `json:"has_required_credit_card,omitempty"`
	MaintenanceFee          *decimal.Decimal     `json:"maintenance_fee,omitempty"`
	InterestRate            *decimal.Decimal     `json:"interest_rate,omitempty"`
	DailyBalances           domain.DailyBalances `json:"daily_balances,omitempty"`
	CreatedAt               string               `json:"created_at"`
	UpdatedAt               string               `json:"updated_at"`
}

// NewAccountResponse flattens a domain account.
func NewAccountResponse(a *domain.Account) AccountResponse {
	resp := AccountResponse{
		ID:                    a.ID,
		AccountNumber:         a.AccountNumber,
		AccountType:           string(a.Type),
		CustomerID:            a.CustomerID,
		CustomerType:          string(a.CustomerType),
		CustomerProfile:       string(a.Profile),
		Balance:               a.Balance,
		AuthorizedSigners:     a.AuthorizedSigners,
		TransactionsPerformed: a.TransactionsPerformed,
		DailyBalances:         a.DailyBalances,
		CreatedAt:             formatTime(a.CreatedAt),
		UpdatedAt:             formatTime(a.UpdatedAt),
	}
	if resp.AuthorizedSigners == nil {
		resp.AuthorizedSigners = []string{}
	}
	switch {
	case a.Savings != nil:
		s := a.Savings
		limit, commission := s.MonthlyTransactionLimit, s.TransactionCommission
		resp.MonthlyTransactionLimit = &limit
		resp.TransactionCommission = &commission
		// VIP-only fields.
		if s.MinimumDailyBalance != nil {
			card := s.HasRequiredCreditCard
			resp.MinimumDailyBalance = s.MinimumDailyBalance
			resp.HasRequiredCreditCard = &card
		}
	case a.Checking != nil:
		fee := a.Checking.MaintenanceFee
		resp.MaintenanceFee = &fee
	case a.FixedTerm != nil:
		rate := a.FixedTerm.InterestRate
		resp.InterestRate = &rate
	}
	return resp
}

// NewAccountListResponse flattens a list of accounts, never returning null.
func NewAccountListResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}

// BalanceResponse is the response body for a balance query.
type BalanceResponse struct {
	AccountID                 string          `json:"account_id"`
	AccountNumber             string          `json:"account_number"`
	AccountType               string          `json:"account_type"`
	Balance                   decimal.Decimal `json:"balance"`
	TransactionsPerformed     *int            `json:"transactions_performed,omitempty"`
	RemainingFreeTransactions *int            `json:"remaining_free_transactions,omitempty"`
}

// TransferResponse carries both legs of a transfer.
type TransferResponse struct {
	Source      AccountResponse `json:"source"`
	Destination AccountResponse `json:"destination"`
}

// DebitCardResponse is the public shape of a debit card. The number is masked.
type DebitCardResponse struct {
	ID                  string   `json:"id"`
	CardNumber          string   `json:"card_number"`
	CustomerID          string   `json:"customer_id"`
	PrimaryAccountID    string   `json:"primary_account_id"`
	SecondaryAccountIDs []string `json:"secondary_account_ids"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// NewDebitCardResponse converts a domain card.
func NewDebitCardResponse(c *domain.DebitCard) DebitCardResponse {
	secondaries := c.SecondaryAccountIDs
	if secondaries == nil {
		secondaries = []string{}
	}
	return DebitCardResponse{
		ID:                  c.ID,
		CardNumber:          MaskCardNumber(c.CardNumber),
		CustomerID:          c.CustomerID,
		PrimaryAccountID:    c.PrimaryAccountID,
		SecondaryAccountIDs: secondaries,
		CreatedAt:           formatTime(c.CreatedAt),
		UpdatedAt:           formatTime(c.UpdatedAt),
	}
}

// ReportResponse maps account ids to a per-account amount.
type ReportResponse struct {
	CustomerID string                     `json:"customer_id"`
	Accounts   map[string]decimal.Decimal `json:"accounts"`
}

// CommissionsQuery holds the optional reporting window. It is accepted for
// compatibility but does not narrow the totals.
type CommissionsQuery struct {
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// Range parses the window; unset bounds are the zero time.
func (q CommissionsQuery) Range() (start, end time.Time) {
	if q.Start != "" {
		start, _ = time.Parse(time.DateOnly, q.Start)
	}
	if q.End != "" {
		end, _ = time.Parse(time.DateOnly, q.End)
	}
	return start, end
}

// MaskCardNumber keeps the last four digits.
func MaskCardNumber(n string) string {
	if len(n) <= 4 {
		return n
	}
	masked := make([]byte, len(n))
	for i := range masked {
		if i < len(n)-4 {
			masked[i] = '*'
		} else {
			masked[i] = n[i]
		}
	}
	return string(masked)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
