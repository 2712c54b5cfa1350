package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bank-account-service/internal/adapter/storage/memory"
	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports/mocks"
	"bank-account-service/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedReportingStore(t *testing.T) *memory.AccountStore {
	t.Helper()
	store := memory.NewAccountStore()
	ctx := context.Background()

	withHistory := savings("hist", domain.ProfileRegular, "30", 5, 8)
	withHistory.DailyBalances = domain.DailyBalances{
		{At: "2024-01-01T00:00:00", Balance: dec("10")},
		{At: "2024-01-02T00:00:00", Balance: dec("20")},
		{At: "2024-01-03T00:00:00", Balance: dec("30.01")},
	}
	pyme := savings("pyme", domain.ProfilePYME, "50", 5, 9)
	legacy := checking("legacy", "77.7")

	for _, a := range []*domain.Account{withHistory, pyme, legacy} {
		_, err := store.Save(ctx, a)
		require.NoError(t, err)
	}
	other := checking("other-customer", "1")
	other.CustomerID = "c2"
	_, err := store.Save(ctx, other)
	require.NoError(t, err)
	return store
}

func TestReporting_AverageDailyBalance(t *testing.T) {
	svc := NewReportingService(seedReportingStore(t))

	got, err := svc.AverageDailyBalance(context.Background(), "c1")
	require.NoError(t, err)

	require.Len(t, got, 3)
	// (10 + 20 + 30.01) / 3 = 20.0033 -> 20.00
	assert.Equal(t, "20.00", got["hist"].StringFixed(2))
	assert.True(t, dec("50").Equal(got["pyme"]), "no history falls back to the balance")
	assert.True(t, dec("77.7").Equal(got["legacy"]))
}

func TestReporting_CommissionsReport(t *testing.T) {
	svc := NewReportingService(seedReportingStore(t))
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC)

	got, err := svc.CommissionsReport(context.Background(), "c1", start, end)
	require.NoError(t, err)

	// 1.00 * (8 - 5), even though the range is in the future.
	assert.True(t, dec("3.00").Equal(got["hist"]), "got %s", got["hist"])
	_, hasPYME := got["pyme"]
	assert.False(t, hasPYME, "PYME accounts are left out")
	assert.True(t, got["legacy"].IsZero())
}

func TestReporting_IsIdempotent(t *testing.T) {
	store := seedReportingStore(t)
	svc := NewReportingService(store)
	ctx := context.Background()

	avg1, err := svc.AverageDailyBalance(ctx, "c1")
	require.NoError(t, err)
	com1, err := svc.CommissionsReport(ctx, "c1", time.Time{}, time.Time{})
	require.NoError(t, err)

	avg2, err := svc.AverageDailyBalance(ctx, "c1")
	require.NoError(t, err)
	com2, err := svc.CommissionsReport(ctx, "c1", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, avg1, avg2)
	assert.Equal(t, com1, com2)

	a, err := store.FindByID(ctx, "hist")
	require.NoError(t, err)
	assert.Len(t, a.DailyBalances, 3)
	assert.Equal(t, 8, *a.TransactionsPerformed)
}

func TestReporting_EmptyCustomer(t *testing.T) {
	svc := NewReportingService(memory.NewAccountStore())

	got, err := svc.AverageDailyBalance(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReporting_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	svc := NewReportingService(repo)

	repo.EXPECT().FindByCustomerID(gomock.Any(), "c1").Return(nil, errors.New("down")).Times(2)

	_, err := svc.AverageDailyBalance(context.Background(), "c1")
	assert.ErrorIs(t, err, apperror.InternalError(nil))
	_, err = svc.CommissionsReport(context.Background(), "c1", time.Time{}, time.Time{})
	assert.ErrorIs(t, err, apperror.InternalError(nil))
}
