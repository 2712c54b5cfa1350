package apperror

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so callers can compare against a constructor result.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Resources (RES) ----

// ErrResourceNotFound is the untyped not-found used where the caller
// only needs to know the lookup missed.
func ErrResourceNotFound(entity string) *AppError {
	return New("RES_000", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAccountNotFound(id string) *AppError {
	return New("RES_001", fmt.Sprintf("Account not found: %s", id), http.StatusNotFound)
}

func ErrCustomerNotFound(id string) *AppError {
	return New("RES_002", fmt.Sprintf("Customer not found: %s", id), http.StatusNotFound)
}

// ---- Request validation (VAL) ----

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Ledger (LED) ----

func ErrInsufficientFunds() *AppError {
	return New("LED_001", "Insufficient funds", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("LED_002", "Amount must be greater than zero", http.StatusBadRequest)
}

// ---- Account rules (ACC) ----

func ErrCreditCardRequired() *AppError {
	return New("ACC_001", "Customer must have a credit card", http.StatusBadRequest)
}

func ErrMinimumBalance(minimum decimal.Decimal) *AppError {
	return New("ACC_002", fmt.Sprintf("Initial balance must be at least %s", minimum.String()), http.StatusBadRequest)
}

func ErrDuplicateAccountType(kind string) *AppError {
	return New("ACC_003", fmt.Sprintf("Personal customer already has a %s account", kind), http.StatusBadRequest)
}

func ErrInvalidAccountType(message string) *AppError {
	return New("ACC_004", message, http.StatusBadRequest)
}

// ---- Debit cards (CARD) ----

func ErrCardNotFound() *AppError {
	return New("CARD_001", "Debit card not found", http.StatusBadRequest)
}

func ErrAccountOwnership(accountID string) *AppError {
	return New("CARD_002", fmt.Sprintf("Account %s does not belong to the card owner", accountID), http.StatusBadRequest)
}

func ErrPrimaryUnlink() *AppError {
	return New("CARD_003", "Cannot unlink primary account. Link a new primary account first.", http.StatusBadRequest)
}

func ErrAllAccountsDeclined() *AppError {
	return New("CARD_004", "Insufficient funds in all linked accounts", http.StatusBadRequest)
}

func ErrCardNumberTaken() *AppError {
	return New("CARD_005", "Card number already registered", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}
