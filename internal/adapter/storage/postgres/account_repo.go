package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bank-account-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, account_number, account_type, customer_id, customer_type, customer_profile,
		balance, authorized_signers, transactions_performed,
		monthly_transaction_limit, transaction_commission, minimum_daily_balance, has_required_credit_card,
		maintenance_fee, interest_rate, daily_balances, created_at, updated_at`

// AccountRepo implements ports.AccountRepository. Kind-specific terms are
// flattened into nullable columns and regrouped on read by account_type.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// FindByID fetches an account by id. Returns nil, nil when absent.
func (r *AccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return a, nil
}

// FindByCustomerID lists a customer's accounts, oldest first.
func (r *AccountRepo) FindByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts by customer: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

// Save upserts the account by id, assigning a UUID when the id is empty.
func (r *AccountRepo) Save(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	args, err := accountArgs(a)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			account_number = EXCLUDED.account_number,
			account_type = EXCLUDED.account_type,
			customer_id = EXCLUDED.customer_id,
			customer_type = EXCLUDED.customer_type,
			customer_profile = EXCLUDED.customer_profile,
			balance = EXCLUDED.balance,
			authorized_signers = EXCLUDED.authorized_signers,
			transactions_performed = EXCLUDED.transactions_performed,
			monthly_transaction_limit = EXCLUDED.monthly_transaction_limit,
			transaction_commission = EXCLUDED.transaction_commission,
			minimum_daily_balance = EXCLUDED.minimum_daily_balance,
			has_required_credit_card = EXCLUDED.has_required_credit_card,
			maintenance_fee = EXCLUDED.maintenance_fee,
			interest_rate = EXCLUDED.interest_rate,
			daily_balances = EXCLUDED.daily_balances,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("upsert account: %w", err)
	}
	return a, nil
}

// DeleteByID removes the account. Deleting a missing id is not an error.
func (r *AccountRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func accountArgs(a *domain.Account) ([]any, error) {
	var (
		limit          *int
		commission     decimal.NullDecimal
		minimumDaily   decimal.NullDecimal
		hasCreditCard  *bool
		maintenanceFee decimal.NullDecimal
		interestRate   decimal.NullDecimal
		history        []byte
	)

	if s := a.Savings; s != nil {
		limit = &s.MonthlyTransactionLimit
		commission = decimal.NewNullDecimal(s.TransactionCommission)
		if s.MinimumDailyBalance != nil {
			minimumDaily = decimal.NewNullDecimal(*s.MinimumDailyBalance)
		}
		hasCreditCard = &s.HasRequiredCreditCard
	}
	if c := a.Checking; c != nil {
		maintenanceFee = decimal.NewNullDecimal(c.MaintenanceFee)
	}
	if f := a.FixedTerm; f != nil {
		interestRate = decimal.NewNullDecimal(f.InterestRate)
	}
	if a.DailyBalances != nil {
		raw, err := json.Marshal(a.DailyBalances)
		if err != nil {
			return nil, fmt.Errorf("encode daily balances: %w", err)
		}
		history = raw
	}

	signers := a.AuthorizedSigners
	if signers == nil {
		signers = []string{}
	}

	return []any{
		a.ID, a.AccountNumber, string(a.Type), a.CustomerID, string(a.CustomerType), string(a.Profile),
		a.Balance, signers, a.TransactionsPerformed,
		limit, commission, minimumDaily, hasCreditCard,
		maintenanceFee, interestRate, history, a.CreatedAt, a.UpdatedAt,
	}, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a              domain.Account
		accountType    string
		customerType   string
		profile        string
		limit          *int
		commission     decimal.NullDecimal
		minimumDaily   decimal.NullDecimal
		hasCreditCard  *bool
		maintenanceFee decimal.NullDecimal
		interestRate   decimal.NullDecimal
		history        []byte
	)

	err := row.Scan(
		&a.ID, &a.AccountNumber, &accountType, &a.CustomerID, &customerType, &profile,
		&a.Balance, &a.AuthorizedSigners, &a.TransactionsPerformed,
		&limit, &commission, &minimumDaily, &hasCreditCard,
		&maintenanceFee, &interestRate, &history, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Type = domain.AccountType(accountType)
	a.CustomerType = domain.CustomerType(customerType)
	a.Profile = domain.CustomerProfile(profile)

	switch a.Type {
	case domain.AccountTypeSavings:
		s := &domain.SavingsTerms{TransactionCommission: commission.Decimal}
		if limit != nil {
			s.MonthlyTransactionLimit = *limit
		}
		if minimumDaily.Valid {
			v := minimumDaily.Decimal
			s.MinimumDailyBalance = &v
		}
		if hasCreditCard != nil {
			s.HasRequiredCreditCard = *hasCreditCard
		}
		a.Savings = s
	case domain.AccountTypeChecking:
		a.Checking = &domain.CheckingTerms{MaintenanceFee: maintenanceFee.Decimal}
	case domain.AccountTypeFixedTerm:
		a.FixedTerm = &domain.FixedTermTerms{InterestRate: interestRate.Decimal}
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &a.DailyBalances); err != nil {
			return nil, fmt.Errorf("decode daily balances of %s: %w", a.ID, err)
		}
	}

	return &a, nil
}
