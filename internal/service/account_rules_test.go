package service

import (
	"testing"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var openedAt = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccountRules_OpenSavings(t *testing.T) {
	rules := DefaultAccountRules()

	a, err := rules.Open(domain.SavingsOpening{
		CustomerID:              "c1",
		Profile:                 domain.ProfileRegular,
		Balance:                 dec("0"),
		MonthlyTransactionLimit: 5,
	}, openedAt)
	require.NoError(t, err)

	assert.Equal(t, domain.AccountTypeSavings, a.Type)
	require.NotNil(t, a.TransactionsPerformed)
	assert.Equal(t, 0, *a.TransactionsPerformed)
	require.NotNil(t, a.Savings)
	assert.Equal(t, 5, a.Savings.MonthlyTransactionLimit)
	assert.True(t, dec("1.00").Equal(a.Savings.TransactionCommission))
	assert.Nil(t, a.Savings.MinimumDailyBalance, "only VIP accounts carry a minimum")
	assert.False(t, a.Savings.HasRequiredCreditCard)
	assert.Nil(t, a.Checking)
	assert.Nil(t, a.FixedTerm)
	assert.Equal(t, []string{}, a.AuthorizedSigners)

	require.Len(t, a.DailyBalances, 1)
	assert.Equal(t, "2024-06-01T09:30:00", a.DailyBalances[0].At)
	assert.True(t, a.DailyBalances[0].Balance.IsZero())
}

func TestAccountRules_OpenSavings_VIP(t *testing.T) {
	rules := AccountRules{VIPMinimumBalance: dec("1000"), DefaultCommission: dec("2.50")}

	a, err := rules.Open(domain.SavingsOpening{
		CustomerID:            "c1",
		Profile:               domain.ProfileVIP,
		Balance:               dec("1000"),
		HasRequiredCreditCard: true,
	}, openedAt)
	require.NoError(t, err)
	require.NotNil(t, a.Savings.MinimumDailyBalance)
	assert.True(t, dec("1000").Equal(*a.Savings.MinimumDailyBalance))
	assert.True(t, a.Savings.HasRequiredCreditCard)
	assert.True(t, dec("2.50").Equal(a.Savings.TransactionCommission))
}

func TestAccountRules_OpenSavings_Rejections(t *testing.T) {
	rules := DefaultAccountRules()

	tests := []struct {
		name    string
		opening domain.SavingsOpening
		code    string
	}{
		{
			name:    "missing customer",
			opening: domain.SavingsOpening{Profile: domain.ProfileRegular, Balance: dec("1")},
			code:    "VAL_001",
		},
		{
			name:    "missing profile",
			opening: domain.SavingsOpening{CustomerID: "c1", Balance: dec("1")},
			code:    "VAL_001",
		},
		{
			name:    "negative balance",
			opening: domain.SavingsOpening{CustomerID: "c1", Profile: domain.ProfileRegular, Balance: dec("-0.01")},
			code:    "VAL_001",
		},
		{
			name:    "negative limit",
			opening: domain.SavingsOpening{CustomerID: "c1", Profile: domain.ProfileRegular, MonthlyTransactionLimit: -1},
			code:    "VAL_001",
		},
		{
			name:    "vip without credit card",
			opening: domain.SavingsOpening{CustomerID: "c1", Profile: domain.ProfileVIP, Balance: dec("5000")},
			code:    "ACC_001",
		},
		{
			name:    "vip below minimum",
			opening: domain.SavingsOpening{CustomerID: "c1", Profile: domain.ProfileVIP, Balance: dec("999.99"), HasRequiredCreditCard: true},
			code:    "ACC_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := rules.Open(tt.opening, openedAt)
			assert.Nil(t, a)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestAccountRules_OpenChecking(t *testing.T) {
	rules := DefaultAccountRules()

	a, err := rules.Open(domain.CheckingOpening{CustomerID: "c1", Balance: dec("50"), MaintenanceFee: dec("5")}, openedAt)
	require.NoError(t, err)
	require.NotNil(t, a.Checking)
	assert.True(t, dec("5").Equal(a.Checking.MaintenanceFee))
	assert.Nil(t, a.Savings)
	assert.Nil(t, a.FixedTerm)
	assert.Nil(t, a.TransactionsPerformed)
	assert.Nil(t, a.DailyBalances)

	_, err = rules.Open(domain.CheckingOpening{CustomerID: "c1", Balance: dec("0"), MaintenanceFee: dec("5")}, openedAt)
	assert.ErrorIs(t, err, apperror.Validation(""))

	_, err = rules.Open(domain.CheckingOpening{CustomerID: "c1", Balance: dec("10"), MaintenanceFee: dec("0")}, openedAt)
	assert.ErrorIs(t, err, apperror.Validation(""))
}

func TestAccountRules_OpenFixedTerm(t *testing.T) {
	rules := DefaultAccountRules()

	a, err := rules.Open(domain.FixedTermOpening{CustomerID: "c1", Balance: dec("700"), InterestRate: dec("-1.5")}, openedAt)
	require.NoError(t, err, "interest rate sign is not checked")
	require.NotNil(t, a.FixedTerm)
	assert.True(t, dec("-1.5").Equal(a.FixedTerm.InterestRate))
	assert.Nil(t, a.Savings)
	assert.Nil(t, a.Checking)
	require.Len(t, a.DailyBalances, 1)
	assert.True(t, dec("700").Equal(a.DailyBalances[0].Balance))

	_, err = rules.Open(domain.FixedTermOpening{CustomerID: "c1", Balance: dec("-1")}, openedAt)
	assert.ErrorIs(t, err, apperror.Validation(""))
}
