// Package memory holds map-backed repositories used when the service runs
// without PostgreSQL, and by service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"bank-account-service/internal/core/domain"
	"bank-account-service/pkg/apperror"

	"github.com/google/uuid"
)

// AccountStore implements ports.AccountRepository. Records are copied on the
// way in and out so callers never share state with the store.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    map[string]uint64
	nextSeq  uint64
}

// NewAccountStore creates an empty AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]*domain.Account),
		order:    make(map[string]uint64),
	}
}

func (s *AccountStore) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	return cloneAccount(a), nil
}

func (s *AccountStore) Save(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, ok := s.order[a.ID]; !ok {
		s.nextSeq++
		s.order[a.ID] = s.nextSeq
	}
	s.accounts[a.ID] = cloneAccount(a)
	return a, nil
}

// FindByCustomerID returns the customer's accounts in creation order.
func (s *AccountStore) FindByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Account{}
	for _, a := range s.accounts {
		if a.CustomerID == customerID {
			out = append(out, *cloneAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return s.order[out[i].ID] < s.order[out[j].ID]
	})
	return out, nil
}

func (s *AccountStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.accounts, id)
	delete(s.order, id)
	return nil
}

// DebitCardStore implements ports.DebitCardRepository with a unique index
// on the card number.
type DebitCardStore struct {
	mu       sync.RWMutex
	cards    map[string]*domain.DebitCard
	byNumber map[string]string
}

// NewDebitCardStore creates an empty DebitCardStore.
func NewDebitCardStore() *DebitCardStore {
	return &DebitCardStore{
		cards:    make(map[string]*domain.DebitCard),
		byNumber: make(map[string]string),
	}
}

func (s *DebitCardStore) FindByID(ctx context.Context, id string) (*domain.DebitCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cards[id]
	if !ok {
		return nil, nil
	}
	return cloneCard(c), nil
}

func (s *DebitCardStore) FindByCardNumber(ctx context.Context, cardNumber string) (*domain.DebitCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byNumber[cardNumber]
	if !ok {
		return nil, nil
	}
	return cloneCard(s.cards[id]), nil
}

func (s *DebitCardStore) Save(ctx context.Context, c *domain.DebitCard) (*domain.DebitCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.byNumber[c.CardNumber]; ok && owner != c.ID {
		return nil, apperror.ErrCardNumberTaken()
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if prev, ok := s.cards[c.ID]; ok && prev.CardNumber != c.CardNumber {
		delete(s.byNumber, prev.CardNumber)
	}
	s.cards[c.ID] = cloneCard(c)
	s.byNumber[c.CardNumber] = c.ID
	return c, nil
}

// AuditStore implements ports.AuditRepository by keeping entries in memory.
type AuditStore struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

func (s *AuditStore) Create(ctx context.Context, log *domain.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *log)
	return nil
}

// Entries returns a copy of everything recorded so far.
func (s *AuditStore) Entries() []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditLog(nil), s.entries...)
}

func cloneAccount(a *domain.Account) *domain.Account {
	c := *a
	if a.AuthorizedSigners != nil {
		c.AuthorizedSigners = append([]string{}, a.AuthorizedSigners...)
	}
	if a.TransactionsPerformed != nil {
		n := *a.TransactionsPerformed
		c.TransactionsPerformed = &n
	}
	if a.Savings != nil {
		s := *a.Savings
		if a.Savings.MinimumDailyBalance != nil {
			m := *a.Savings.MinimumDailyBalance
			s.MinimumDailyBalance = &m
		}
		c.Savings = &s
	}
	if a.Checking != nil {
		k := *a.Checking
		c.Checking = &k
	}
	if a.FixedTerm != nil {
		f := *a.FixedTerm
		c.FixedTerm = &f
	}
	if a.DailyBalances != nil {
		c.DailyBalances = append(domain.DailyBalances{}, a.DailyBalances...)
	}
	return &c
}

func cloneCard(c *domain.DebitCard) *domain.DebitCard {
	out := *c
	out.SecondaryAccountIDs = append([]string{}, c.SecondaryAccountIDs...)
	return &out
}
