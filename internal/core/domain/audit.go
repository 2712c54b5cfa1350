package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionOpenAccount   AuditAction = "OPEN_ACCOUNT"
	AuditActionDeleteAccount AuditAction = "DELETE_ACCOUNT"
	AuditActionDeposit       AuditAction = "DEPOSIT"
	AuditActionWithdraw      AuditAction = "WITHDRAW"
	AuditActionTransfer      AuditAction = "TRANSFER"
	AuditActionUpdateSigners AuditAction = "UPDATE_SIGNERS"
	AuditActionResetCounters AuditAction = "RESET_COUNTERS"
	AuditActionCreateCard    AuditAction = "CREATE_CARD"
	AuditActionLinkAccount   AuditAction = "LINK_ACCOUNT"
	AuditActionUnlinkAccount AuditAction = "UNLINK_ACCOUNT"
	AuditActionCardPayment   AuditAction = "CARD_PAYMENT"
)

// AuditLog records a single audited write against the ledger.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
