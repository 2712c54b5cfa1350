package memory

import (
	"context"
	"testing"

	"bank-account-service/internal/core/domain"
	"bank-account-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_SaveAssignsIDAndCopies(t *testing.T) {
	s := NewAccountStore()
	ctx := context.Background()

	zero := 0
	a := &domain.Account{
		CustomerID:            "c1",
		Type:                  domain.AccountTypeSavings,
		Balance:               decimal.NewFromInt(10),
		AuthorizedSigners:     []string{"Ana"},
		TransactionsPerformed: &zero,
		Savings:               &domain.SavingsTerms{MonthlyTransactionLimit: 3},
	}
	saved, err := s.Save(ctx, a)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	// Mutating the caller's copy must not leak into the store.
	a.Balance = decimal.NewFromInt(999)
	a.AuthorizedSigners[0] = "Eve"
	*a.TransactionsPerformed = 42
	a.Savings.MonthlyTransactionLimit = 99

	got, err := s.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", got.Balance.String())
	assert.Equal(t, []string{"Ana"}, got.AuthorizedSigners)
	assert.Equal(t, 0, *got.TransactionsPerformed)
	assert.Equal(t, 3, got.Savings.MonthlyTransactionLimit)
}

func TestAccountStore_FindByIDMissing(t *testing.T) {
	got, err := NewAccountStore().FindByID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountStore_FindByCustomerIDKeepsCreationOrder(t *testing.T) {
	s := NewAccountStore()
	ctx := context.Background()

	for _, id := range []string{"z", "a", "m"} {
		_, err := s.Save(ctx, &domain.Account{ID: id, CustomerID: "c1"})
		require.NoError(t, err)
	}
	_, err := s.Save(ctx, &domain.Account{ID: "other", CustomerID: "c2"})
	require.NoError(t, err)

	// Re-saving does not move the record.
	_, err = s.Save(ctx, &domain.Account{ID: "z", CustomerID: "c1", Balance: decimal.NewFromInt(5)})
	require.NoError(t, err)

	list, err := s.FindByCustomerID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "z", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "m", list[2].ID)

	empty, err := s.FindByCustomerID(ctx, "none")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAccountStore_Delete(t *testing.T) {
	s := NewAccountStore()
	ctx := context.Background()

	_, err := s.Save(ctx, &domain.Account{ID: "x", CustomerID: "c1"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteByID(ctx, "x"))
	require.NoError(t, s.DeleteByID(ctx, "x"))

	got, err := s.FindByID(ctx, "x")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDebitCardStore_UniqueNumber(t *testing.T) {
	s := NewDebitCardStore()
	ctx := context.Background()

	first, err := s.Save(ctx, &domain.DebitCard{CardNumber: "4111", PrimaryAccountID: "a1"})
	require.NoError(t, err)

	_, err = s.Save(ctx, &domain.DebitCard{CardNumber: "4111", PrimaryAccountID: "a2"})
	assert.ErrorIs(t, err, apperror.ErrCardNumberTaken())

	// Updating the owner of the number is fine.
	first.SecondaryAccountIDs = []string{"a3"}
	_, err = s.Save(ctx, first)
	require.NoError(t, err)

	got, err := s.FindByCardNumber(ctx, "4111")
	require.NoError(t, err)
	assert.Equal(t, []string{"a3"}, got.SecondaryAccountIDs)
}

func TestDebitCardStore_RenumberFreesOldNumber(t *testing.T) {
	s := NewDebitCardStore()
	ctx := context.Background()

	c, err := s.Save(ctx, &domain.DebitCard{CardNumber: "1111"})
	require.NoError(t, err)
	c.CardNumber = "2222"
	_, err = s.Save(ctx, c)
	require.NoError(t, err)

	old, err := s.FindByCardNumber(ctx, "1111")
	require.NoError(t, err)
	assert.Nil(t, old)

	byID, err := s.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "2222", byID.CardNumber)
}

func TestAuditStore(t *testing.T) {
	s := NewAuditStore()
	require.NoError(t, s.Create(context.Background(), &domain.AuditLog{ID: uuid.New(), Action: domain.AuditActionDeposit}))
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionDeposit, entries[0].Action)
}
