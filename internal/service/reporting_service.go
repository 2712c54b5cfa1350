package service

import (
	"context"
	"fmt"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/apperror"

	"github.com/shopspring/decimal"
)

// reportingService implements ports.ReportingService. It only reads.
type reportingService struct {
	accounts ports.AccountRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(accounts ports.AccountRepository) ports.ReportingService {
	return &reportingService{accounts: accounts}
}

// AverageDailyBalance maps each of the customer's accounts to the mean of its
// balance history, or to the current balance when there is no history.
func (s *reportingService) AverageDailyBalance(ctx context.Context, customerID string) (map[string]decimal.Decimal, error) {
	accounts, err := s.customerAccounts(ctx, customerID)
	if err != nil {
		return nil, err
	}

	averages := make(map[string]decimal.Decimal, len(accounts))
	for _, a := range accounts {
		avg, ok := a.DailyBalances.Average()
		if !ok {
			avg = a.Balance
		}
		averages[a.ID] = avg
	}
	return averages, nil
}

// CommissionsReport maps each non-PYME account to the commission implied by
// its lifetime counters. start and end are accepted but not applied.
func (s *reportingService) CommissionsReport(ctx context.Context, customerID string, start, end time.Time) (map[string]decimal.Decimal, error) {
	accounts, err := s.customerAccounts(ctx, customerID)
	if err != nil {
		return nil, err
	}

	commissions := make(map[string]decimal.Decimal, len(accounts))
	for i := range accounts {
		if accounts[i].Profile == domain.ProfilePYME {
			continue
		}
		commissions[accounts[i].ID] = accounts[i].CommissionsOwed()
	}
	return commissions, nil
}

func (s *reportingService) customerAccounts(ctx context.Context, customerID string) ([]domain.Account, error) {
	accounts, err := s.accounts.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list customer accounts: %w", err))
	}
	return accounts, nil
}
