package postgres

import (
	"context"
	"errors"
	"fmt"

	"bank-account-service/internal/core/domain"
	"bank-account-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const debitCardColumns = `id, card_number, customer_id, primary_account_id, secondary_account_ids, created_at, updated_at`

// DebitCardRepo implements ports.DebitCardRepository.
type DebitCardRepo struct {
	pool Pool
}

// NewDebitCardRepo creates a new DebitCardRepo.
func NewDebitCardRepo(pool Pool) *DebitCardRepo {
	return &DebitCardRepo{pool: pool}
}

// FindByID fetches a card by id.
func (r *DebitCardRepo) FindByID(ctx context.Context, id string) (*domain.DebitCard, error) {
	return r.findOne(ctx, `SELECT `+debitCardColumns+` FROM debit_cards WHERE id = $1`, id)
}

// FindByCardNumber fetches a card by its number.
func (r *DebitCardRepo) FindByCardNumber(ctx context.Context, cardNumber string) (*domain.DebitCard, error) {
	return r.findOne(ctx, `SELECT `+debitCardColumns+` FROM debit_cards WHERE card_number = $1`, cardNumber)
}

func (r *DebitCardRepo) findOne(ctx context.Context, query string, arg string) (*domain.DebitCard, error) {
	c := &domain.DebitCard{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.CardNumber, &c.CustomerID, &c.PrimaryAccountID,
		&c.SecondaryAccountIDs, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get debit card: %w", err)
	}
	if c.SecondaryAccountIDs == nil {
		c.SecondaryAccountIDs = []string{}
	}
	return c, nil
}

// Save upserts the card by id. A card number already held by another card
// surfaces as CARD_005.
func (r *DebitCardRepo) Save(ctx context.Context, c *domain.DebitCard) (*domain.DebitCard, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	secondaries := c.SecondaryAccountIDs
	if secondaries == nil {
		secondaries = []string{}
	}

	query := `INSERT INTO debit_cards (` + debitCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			card_number = EXCLUDED.card_number,
			customer_id = EXCLUDED.customer_id,
			primary_account_id = EXCLUDED.primary_account_id,
			secondary_account_ids = EXCLUDED.secondary_account_ids,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.CardNumber, c.CustomerID, c.PrimaryAccountID,
		secondaries, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperror.ErrCardNumberTaken()
		}
		return nil, fmt.Errorf("upsert debit card: %w", err)
	}
	return c, nil
}
