package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/apperror"
	"bank-account-service/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.LedgerService. Every read-modify-write
// on one account runs while holding that account's lock.
type LedgerServiceImpl struct {
	repo   ports.AccountRepository
	locker ports.AccountLocker
	log    zerolog.Logger
	now    func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(repo ports.AccountRepository, locker ports.AccountLocker, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		repo:   repo,
		locker: locker,
		log:    log,
		now:    time.Now,
	}
}

// Deposit adds amount to the balance and records a snapshot.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	a, err := s.deposit(ctx, accountID, amount)
	observe("deposit", err)
	return a, err
}

func (s *LedgerServiceImpl) deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	a, err := s.mutate(ctx, accountID, apperror.ErrAccountNotFound, func(a *domain.Account, now time.Time) error {
		a.Balance = a.Balance.Add(amount)
		a.RecordSnapshot(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", accountID).
		Str("amount", amount.String()).
		Str("balance", a.Balance.String()).
		Msg("Deposit applied")
	return a, nil
}

// Withdraw debits amount plus any commission due. Funds are checked against
// amount alone, so a due commission may leave the balance below zero.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	a, err := s.withdraw(ctx, accountID, amount)
	observe("withdraw", err)
	return a, err
}

func (s *LedgerServiceImpl) withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	var commission decimal.Decimal
	a, err := s.mutate(ctx, accountID, apperror.ErrAccountNotFound, func(a *domain.Account, now time.Time) error {
		if a.Balance.LessThan(amount) {
			return apperror.ErrInsufficientFunds()
		}
		commission = a.CommissionDue()
		a.Balance = a.Balance.Sub(amount).Sub(commission)
		a.IncrementTransactions()
		a.RecordSnapshot(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if commission.IsPositive() {
		metrics.CommissionsCharged.Inc()
	}
	s.log.Info().
		Str("account_id", accountID).
		Str("amount", amount.String()).
		Str("commission", commission.String()).
		Str("balance", a.Balance.String()).
		Msg("Withdrawal applied")
	return a, nil
}

// Transfer withdraws from source then deposits into destination. The legs
// commit separately and a failed deposit is not compensated. Only the
// transfer itself is counted in ledger_operations, not its legs.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, sourceID, destinationID string, amount decimal.Decimal) (*ports.TransferResult, error) {
	result, err := s.transfer(ctx, sourceID, destinationID, amount)
	observe("transfer", err)
	return result, err
}

func (s *LedgerServiceImpl) transfer(ctx context.Context, sourceID, destinationID string, amount decimal.Decimal) (*ports.TransferResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if sourceID == destinationID {
		return nil, apperror.Validation("source and destination accounts must differ")
	}

	for _, id := range []string{sourceID, destinationID} {
		if _, err := findAccount(ctx, s.repo, id); err != nil {
			return nil, err
		}
	}

	source, err := s.withdraw(ctx, sourceID, amount)
	if err != nil {
		return nil, err
	}

	destination, err := s.deposit(ctx, destinationID, amount)
	if err != nil {
		metrics.TransferPartialFailures.Inc()
		s.log.Error().Err(err).
			Str("source_account_id", sourceID).
			Str("destination_account_id", destinationID).
			Str("amount", amount.String()).
			Msg("Transfer deposit leg failed after withdrawal committed")
		return nil, err
	}

	return &ports.TransferResult{Source: source, Destination: destination}, nil
}

// UpdateAuthorizedSigners replaces the signer list as a whole.
func (s *LedgerServiceImpl) UpdateAuthorizedSigners(ctx context.Context, accountID string, signers []string) (*domain.Account, error) {
	notFound := func(string) *apperror.AppError { return apperror.ErrResourceNotFound("Account") }

	a, err := s.mutate(ctx, accountID, notFound, func(a *domain.Account, _ time.Time) error {
		if signers == nil {
			a.AuthorizedSigners = []string{}
			return nil
		}
		a.AuthorizedSigners = append([]string{}, signers...)
		return nil
	})
	observe("update_signers", err)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", accountID).Int("signers", len(a.AuthorizedSigners)).Msg("Authorized signers replaced")
	return a, nil
}

// ResetTransactionCounter zeroes the monthly counter. Counters are never
// reset automatically.
func (s *LedgerServiceImpl) ResetTransactionCounter(ctx context.Context, accountID string) (*domain.Account, error) {
	a, err := s.mutate(ctx, accountID, apperror.ErrAccountNotFound, func(a *domain.Account, _ time.Time) error {
		a.ResetTransactions()
		return nil
	})
	observe("reset_counter", err)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", accountID).Msg("Transaction counter reset")
	return a, nil
}

// mutate loads the account under its lock, applies fn and saves the result.
// When fn fails nothing is saved.
func (s *LedgerServiceImpl) mutate(
	ctx context.Context,
	accountID string,
	notFound func(id string) *apperror.AppError,
	fn func(a *domain.Account, now time.Time) error,
) (*domain.Account, error) {
	release, err := s.locker.Lock(ctx, accountID)
	if err != nil {
		return nil, asAppError(err)
	}
	defer release()

	a, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find account %s: %w", accountID, err))
	}
	if a == nil {
		return nil, notFound(accountID)
	}

	now := s.now().UTC()
	if err := fn(a, now); err != nil {
		return nil, err
	}
	a.UpdatedAt = now

	saved, err := s.repo.Save(ctx, a)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save account %s: %w", accountID, err))
	}
	return saved, nil
}

// observe records a ledger operation outcome: ok, rejected (business rule)
// or error (infrastructure).
func observe(operation string, err error) {
	metrics.LedgerOperations.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		return "rejected"
	}
	return "error"
}

func asAppError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(err)
}
