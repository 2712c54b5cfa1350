package service

import (
	"context"
	"fmt"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/apperror"
	"bank-account-service/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// AttemptOutcome is the result of trying to debit one candidate account.
type AttemptOutcome int

const (
	Debited AttemptOutcome = iota
	InsufficientFunds
	AccountMissing
	Failed
)

func (o AttemptOutcome) String() string {
	switch o {
	case Debited:
		return "debited"
	case InsufficientFunds:
		return "insufficient_funds"
	case AccountMissing:
		return "account_missing"
	default:
		return "failed"
	}
}

// DebitCardServiceImpl implements ports.DebitCardService: card management and
// the payment router.
type DebitCardServiceImpl struct {
	cards    ports.DebitCardRepository
	accounts ports.AccountRepository
	locker   ports.AccountLocker
	log      zerolog.Logger
	now      func() time.Time
}

// NewDebitCardService creates a new DebitCardServiceImpl.
func NewDebitCardService(
	cards ports.DebitCardRepository,
	accounts ports.AccountRepository,
	locker ports.AccountLocker,
	log zerolog.Logger,
) *DebitCardServiceImpl {
	return &DebitCardServiceImpl{
		cards:    cards,
		accounts: accounts,
		locker:   locker,
		log:      log,
		now:      time.Now,
	}
}

// ProcessPayment debits amount from the first candidate account that can
// cover it: the primary, then the secondaries in stored order. Candidates are
// tried one at a time so a payment never debits two accounts.
func (s *DebitCardServiceImpl) ProcessPayment(ctx context.Context, cardNumber string, amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() {
		return false, apperror.ErrInvalidAmount()
	}

	card, err := s.cards.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		metrics.Payments.WithLabelValues("error").Inc()
		return false, apperror.InternalError(fmt.Errorf("find card: %w", err))
	}
	if card == nil {
		metrics.Payments.WithLabelValues("declined").Inc()
		return false, apperror.ErrCardNotFound()
	}

	for i, accountID := range card.Candidates() {
		position := "secondary"
		if i == 0 {
			position = "primary"
		}

		outcome := s.debitCandidate(ctx, accountID, amount)
		metrics.PaymentAttempts.WithLabelValues(position, outcome.String()).Inc()

		if outcome == Debited {
			metrics.Payments.WithLabelValues("approved").Inc()
			s.log.Info().
				Str("card_id", card.ID).
				Str("account_id", accountID).
				Str("position", position).
				Str("amount", amount.String()).
				Msg("Card payment approved")
			return true, nil
		}

		s.log.Info().
			Str("card_id", card.ID).
			Str("account_id", accountID).
			Str("position", position).
			Str("outcome", outcome.String()).
			Msg("Card payment candidate declined, trying next")
	}

	metrics.Payments.WithLabelValues("declined").Inc()
	return false, apperror.ErrAllAccountsDeclined()
}

// debitCandidate checks funds and deducts amount from one account. No
// commission applies and the counter only moves when already tracked.
func (s *DebitCardServiceImpl) debitCandidate(ctx context.Context, accountID string, amount decimal.Decimal) AttemptOutcome {
	release, err := s.locker.Lock(ctx, accountID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID).Msg("Card payment: lock not acquired")
		return Failed
	}
	defer release()

	a, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID).Msg("Card payment: account lookup failed")
		return Failed
	}
	if a == nil {
		return AccountMissing
	}
	if a.Balance.LessThan(amount) {
		return InsufficientFunds
	}

	now := s.now().UTC()
	a.Balance = a.Balance.Sub(amount)
	a.RecordSnapshot(now)
	a.IncrementTransactionsIfTracked()
	a.UpdatedAt = now

	if _, err := s.accounts.Save(ctx, a); err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID).Msg("Card payment: save failed")
		return Failed
	}
	return Debited
}

// CreateDebitCard issues a card after checking that every linked account
// exists and belongs to the card's customer.
func (s *DebitCardServiceImpl) CreateDebitCard(ctx context.Context, req ports.CreateDebitCardRequest) (*domain.DebitCard, error) {
	if req.CardNumber == "" || req.CustomerID == "" || req.PrimaryAccountID == "" {
		return nil, apperror.Validation("card_number, customer_id and primary_account_id are required")
	}

	existing, err := s.cards.FindByCardNumber(ctx, req.CardNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find card: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrCardNumberTaken()
	}

	ids := append([]string{req.PrimaryAccountID}, req.SecondaryAccountIDs...)
	found := make([]*domain.Account, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			a, err := s.accounts.FindByID(gctx, id)
			if err != nil {
				return fmt.Errorf("find account %s: %w", id, err)
			}
			found[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.InternalError(err)
	}

	// Report the first offending account in request order.
	for i, id := range ids {
		if found[i] == nil {
			return nil, apperror.ErrAccountNotFound(id)
		}
		if found[i].CustomerID != req.CustomerID {
			return nil, apperror.ErrAccountOwnership(id)
		}
	}

	now := s.now().UTC()
	card := &domain.DebitCard{
		CardNumber:          req.CardNumber,
		CustomerID:          req.CustomerID,
		PrimaryAccountID:    req.PrimaryAccountID,
		SecondaryAccountIDs: []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, id := range req.SecondaryAccountIDs {
		if id != card.PrimaryAccountID {
			card.AddSecondary(id)
		}
	}

	saved, err := s.cards.Save(ctx, card)
	if err != nil {
		return nil, asAppError(err)
	}

	s.log.Info().
		Str("card_id", saved.ID).
		Str("customer_id", saved.CustomerID).
		Int("secondary_accounts", len(saved.SecondaryAccountIDs)).
		Msg("Debit card created")
	return saved, nil
}

func (s *DebitCardServiceImpl) GetDebitCard(ctx context.Context, id string) (*domain.DebitCard, error) {
	return s.findCard(ctx, id)
}

// LinkAccount attaches an account of the card owner. As primary it replaces
// the current primary, which is not re-added as a secondary.
func (s *DebitCardServiceImpl) LinkAccount(ctx context.Context, cardID, accountID string, isPrimary bool) (*domain.DebitCard, error) {
	card, err := s.findCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	account, err := findAccount(ctx, s.accounts, accountID)
	if err != nil {
		return nil, err
	}
	if account.CustomerID != card.CustomerID {
		return nil, apperror.ErrAccountOwnership(accountID)
	}

	changed := false
	switch {
	case isPrimary:
		if card.PrimaryAccountID != accountID {
			card.PrimaryAccountID = accountID
			card.RemoveSecondary(accountID)
			changed = true
		}
	case accountID != card.PrimaryAccountID:
		changed = card.AddSecondary(accountID)
	}
	if !changed {
		return card, nil
	}

	card.UpdatedAt = s.now().UTC()
	saved, err := s.cards.Save(ctx, card)
	if err != nil {
		return nil, asAppError(err)
	}

	s.log.Info().
		Str("card_id", cardID).
		Str("account_id", accountID).
		Bool("primary", isPrimary).
		Msg("Account linked to debit card")
	return saved, nil
}

// UnlinkAccount removes a secondary account. The primary can only be replaced
// through LinkAccount; removing an account that is not linked is a no-op.
func (s *DebitCardServiceImpl) UnlinkAccount(ctx context.Context, cardID, accountID string) (*domain.DebitCard, error) {
	card, err := s.findCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.PrimaryAccountID == accountID {
		return nil, apperror.ErrPrimaryUnlink()
	}
	if !card.RemoveSecondary(accountID) {
		return card, nil
	}

	card.UpdatedAt = s.now().UTC()
	saved, err := s.cards.Save(ctx, card)
	if err != nil {
		return nil, asAppError(err)
	}

	s.log.Info().Str("card_id", cardID).Str("account_id", accountID).Msg("Account unlinked from debit card")
	return saved, nil
}

func (s *DebitCardServiceImpl) findCard(ctx context.Context, id string) (*domain.DebitCard, error) {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find card %s: %w", id, err))
	}
	if card == nil {
		return nil, apperror.ErrResourceNotFound("Debit card")
	}
	return card, nil
}
