package domain

import "time"

// DebitCard routes card payments across a customer's accounts. Candidates
// are tried primary first, then secondaries in slice order.
type DebitCard struct {
	ID                  string    `json:"id"`
	CardNumber          string    `json:"card_number"`
	CustomerID          string    `json:"customer_id"`
	PrimaryAccountID    string    `json:"primary_account_id"`
	SecondaryAccountIDs []string  `json:"secondary_account_ids"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Candidates returns the accounts to try for a payment, in priority order.
func (c *DebitCard) Candidates() []string {
	out := make([]string, 0, 1+len(c.SecondaryAccountIDs))
	out = append(out, c.PrimaryAccountID)
	return append(out, c.SecondaryAccountIDs...)
}

// AddSecondary appends accountID unless it is already a secondary.
// It reports whether the card changed.
func (c *DebitCard) AddSecondary(accountID string) bool {
	for _, id := range c.SecondaryAccountIDs {
		if id == accountID {
			return false
		}
	}
	c.SecondaryAccountIDs = append(c.SecondaryAccountIDs, accountID)
	return true
}

// RemoveSecondary drops accountID from the secondaries, keeping order.
// It reports whether the card changed.
func (c *DebitCard) RemoveSecondary(accountID string) bool {
	for i, id := range c.SecondaryAccountIDs {
		if id == accountID {
			c.SecondaryAccountIDs = append(c.SecondaryAccountIDs[:i:i], c.SecondaryAccountIDs[i+1:]...)
			return true
		}
	}
	return false
}
