package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"bank-account-service/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountColumnNames() []string {
	return []string{
		"id", "account_number", "account_type", "customer_id", "customer_type", "customer_profile",
		"balance", "authorized_signers", "transactions_performed",
		"monthly_transaction_limit", "transaction_commission", "minimum_daily_balance", "has_required_credit_card",
		"maintenance_fee", "interest_rate", "daily_balances", "created_at", "updated_at",
	}
}

func testTime() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func savingsRow(rows *pgxmock.Rows, id string) *pgxmock.Rows {
	limit := 5
	performed := 2
	hasCard := true
	return rows.AddRow(
		id, "ACC-1A2B3C4D", "SAVINGS", "cust-1", "PERSONAL", "VIP",
		decimal.RequireFromString("1500.50"), []string{"Ana"}, &performed,
		&limit, decimal.NewNullDecimal(decimal.RequireFromString("1.25")),
		decimal.NewNullDecimal(decimal.RequireFromString("1000")), &hasCard,
		nil, nil, []byte(`{"2024-06-01T11:00:00":"1500.5"}`), testTime(), testTime(),
	)
}

func checkingRow(rows *pgxmock.Rows, id string) *pgxmock.Rows {
	return rows.AddRow(
		id, "ACC-99887766", "CHECKING", "cust-1", "PERSONAL", "REGULAR",
		decimal.RequireFromString("300"), []string{}, nil,
		nil, nil, nil, nil,
		decimal.NewNullDecimal(decimal.RequireFromString("12.5")), nil, nil, testTime(), testTime(),
	)
}

func TestAccountRepo_FindByID_Savings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs("acc-1").
		WillReturnRows(savingsRow(pgxmock.NewRows(accountColumnNames()), "acc-1"))

	a, err := repo.FindByID(context.Background(), "acc-1")
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.Equal(t, domain.AccountTypeSavings, a.Type)
	assert.Equal(t, domain.ProfileVIP, a.Profile)
	assert.Equal(t, "1500.5", a.Balance.String())
	assert.Equal(t, []string{"Ana"}, a.AuthorizedSigners)
	require.NotNil(t, a.TransactionsPerformed)
	assert.Equal(t, 2, *a.TransactionsPerformed)

	require.NotNil(t, a.Savings)
	assert.Nil(t, a.Checking)
	assert.Nil(t, a.FixedTerm)
	assert.Equal(t, 5, a.Savings.MonthlyTransactionLimit)
	assert.Equal(t, "1.25", a.Savings.TransactionCommission.String())
	require.NotNil(t, a.Savings.MinimumDailyBalance)
	assert.Equal(t, "1000", a.Savings.MinimumDailyBalance.String())
	assert.True(t, a.Savings.HasRequiredCreditCard)

	require.Len(t, a.DailyBalances, 1)
	assert.Equal(t, "2024-06-01T11:00:00", a.DailyBalances[0].At)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByID_CheckingHasNoHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs("acc-2").
		WillReturnRows(checkingRow(pgxmock.NewRows(accountColumnNames()), "acc-2"))

	a, err := repo.FindByID(context.Background(), "acc-2")
	require.NoError(t, err)
	require.NotNil(t, a)

	require.NotNil(t, a.Checking)
	assert.Nil(t, a.Savings)
	assert.Equal(t, "12.5", a.Checking.MaintenanceFee.String())
	assert.Nil(t, a.TransactionsPerformed)
	assert.Nil(t, a.DailyBalances)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(accountColumnNames()))

	a, err := repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, a)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByID_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs("acc-1").
		WillReturnError(errors.New("connection reset"))

	a, err := repo.FindByID(context.Background(), "acc-1")
	assert.Error(t, err)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAccountRepo_FindByCustomerID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	rows := pgxmock.NewRows(accountColumnNames())
	rows = savingsRow(rows, "acc-1")
	rows = checkingRow(rows, "acc-2")

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE customer_id").
		WithArgs("cust-1").
		WillReturnRows(rows)

	accounts, err := repo.FindByCustomerID(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "acc-1", accounts[0].ID)
	assert.Equal(t, domain.AccountTypeChecking, accounts[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByCustomerID_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE customer_id").
		WithArgs("nobody").
		WillReturnRows(pgxmock.NewRows(accountColumnNames()))

	accounts, err := repo.FindByCustomerID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestAccountRepo_Save_AssignsIDAndFlattensTerms(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	zero := 0
	a := &domain.Account{
		AccountNumber:         "ACC-0000AAAA",
		Type:                  domain.AccountTypeSavings,
		CustomerID:            "cust-1",
		CustomerType:          domain.CustomerTypePersonal,
		Profile:               domain.ProfileRegular,
		Balance:               decimal.RequireFromString("10"),
		TransactionsPerformed: &zero,
		Savings: &domain.SavingsTerms{
			MonthlyTransactionLimit: 5,
			TransactionCommission:   decimal.RequireFromString("1.00"),
		},
		CreatedAt: testTime(),
		UpdatedAt: testTime(),
	}

	limit := 5
	hasCard := false
	mock.ExpectExec("INSERT INTO accounts .+ ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs(
			pgxmock.AnyArg(), "ACC-0000AAAA", "SAVINGS", "cust-1", "PERSONAL", "REGULAR",
			a.Balance, []string{}, &zero,
			&limit, decimal.NewNullDecimal(decimal.RequireFromString("1.00")), decimal.NullDecimal{}, &hasCard,
			decimal.NullDecimal{}, decimal.NullDecimal{}, []byte(nil), testTime(), testTime(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := repo.Save(context.Background(), a)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Save_KeepsIDAndEncodesHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	a := &domain.Account{
		ID:        "acc-9",
		Type:      domain.AccountTypeFixedTerm,
		Balance:   decimal.RequireFromString("700"),
		FixedTerm: &domain.FixedTermTerms{InterestRate: decimal.RequireFromString("-0.5")},
	}
	a.RecordSnapshot(testTime())

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(
			"acc-9", pgxmock.AnyArg(), "FIXED_TERM", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			decimal.NullDecimal{}, decimal.NewNullDecimal(decimal.RequireFromString("-0.5")),
			[]byte(`{"2024-06-01T12:00:00":"700"}`), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := repo.Save(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "acc-9", saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Save_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(anyArgs(18)...).
		WillReturnError(errors.New("disk full"))

	_, err = repo.Save(context.Background(), &domain.Account{ID: "acc-1", Type: domain.AccountTypeChecking, Checking: &domain.CheckingTerms{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert account")
	assert.Contains(t, err.Error(), "disk full")
}

func TestAccountRepo_DeleteByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectExec("DELETE FROM accounts WHERE id").
		WithArgs("acc-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.DeleteByID(context.Background(), "acc-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
