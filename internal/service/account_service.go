package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	repo      ports.AccountRepository
	directory ports.CustomerDirectory
	rules     AccountRules
	log       zerolog.Logger
	now       func() time.Time
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	repo ports.AccountRepository,
	directory ports.CustomerDirectory,
	rules AccountRules,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		repo:      repo,
		directory: directory,
		rules:     rules,
		log:       log,
		now:       time.Now,
	}
}

// CreateAccount opens an account after checking the owner against the
// customer directory. Nothing is persisted unless every check passes.
func (s *AccountServiceImpl) CreateAccount(ctx context.Context, opening domain.Opening) (*domain.Account, error) {
	customerID := opening.Owner()
	if customerID == "" {
		return nil, apperror.Validation("customer_id is required")
	}

	customer, ok := s.directory.GetCustomerDetails(ctx, customerID)
	if !ok {
		return nil, apperror.ErrCustomerNotFound(customerID)
	}

	// A savings opening without a profile inherits the directory's.
	if o, isSavings := opening.(domain.SavingsOpening); isSavings && o.Profile == "" {
		o.Profile = customer.Profile
		opening = o
	}

	kind := opening.Kind()
	if customer.Type == domain.CustomerTypeBusiness && kind != domain.AccountTypeChecking {
		return nil, apperror.ErrInvalidAccountType("Business customers can only open checking accounts")
	}

	if customer.Type == domain.CustomerTypePersonal {
		existing, err := s.repo.FindByCustomerID(ctx, customerID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("list customer accounts: %w", err))
		}
		for _, a := range existing {
			if a.Type == kind {
				return nil, apperror.ErrDuplicateAccountType(string(kind))
			}
		}
	}

	if kind == domain.AccountTypeChecking && customer.Profile == domain.ProfilePYME {
		if !s.directory.HasCreditCard(ctx, customerID) {
			return nil, apperror.ErrCreditCardRequired()
		}
	}

	account, err := s.rules.Open(opening, s.now().UTC())
	if err != nil {
		return nil, err
	}
	account.CustomerType = customer.Type
	if account.Profile == "" {
		account.Profile = customer.Profile
	}
	account.AccountNumber = newAccountNumber()

	saved, err := s.repo.Save(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save account: %w", err))
	}

	s.log.Info().
		Str("account_id", saved.ID).
		Str("account_number", saved.AccountNumber).
		Str("account_type", string(saved.Type)).
		Str("customer_id", customerID).
		Msg("Account opened")

	return saved, nil
}

// GetAccount returns the account or RES_001.
func (s *AccountServiceImpl) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return findAccount(ctx, s.repo, id)
}

func (s *AccountServiceImpl) ListByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	accounts, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list customer accounts: %w", err))
	}
	return accounts, nil
}

// GetBalance summarizes the balance and the remaining free withdrawals.
func (s *AccountServiceImpl) GetBalance(ctx context.Context, id string) (*ports.BalanceView, error) {
	a, err := findAccount(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	return &ports.BalanceView{
		AccountID:                 a.ID,
		AccountNumber:             a.AccountNumber,
		Type:                      a.Type,
		Balance:                   a.Balance,
		TransactionsPerformed:     a.TransactionsPerformed,
		RemainingFreeTransactions: a.RemainingFreeTransactions(),
	}, nil
}

func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, id string) error {
	if _, err := findAccount(ctx, s.repo, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete account: %w", err))
	}
	s.log.Info().Str("account_id", id).Msg("Account deleted")
	return nil
}

func findAccount(ctx context.Context, repo ports.AccountRepository, id string) (*domain.Account, error) {
	a, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find account %s: %w", id, err))
	}
	if a == nil {
		return nil, apperror.ErrAccountNotFound(id)
	}
	return a, nil
}

// newAccountNumber returns ACC- followed by eight upper-case hex digits.
func newAccountNumber() string {
	return "ACC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
