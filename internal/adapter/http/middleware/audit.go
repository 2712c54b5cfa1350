package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxResourceID lets a handler name the record it created or touched when
// the route has no :id parameter.
const CtxResourceID = "resource_id"

type auditTarget struct {
	action       domain.AuditAction
	resourceType string
}

// auditedRoutes maps "METHOD route-template" to the audited action.
var auditedRoutes = map[string]auditTarget{
	"POST /api/v1/accounts/savings":                      {domain.AuditActionOpenAccount, "account"},
	"POST /api/v1/accounts/checking":                     {domain.AuditActionOpenAccount, "account"},
	"POST /api/v1/accounts/fixed-term":                   {domain.AuditActionOpenAccount, "account"},
	"DELETE /api/v1/accounts/:id":                        {domain.AuditActionDeleteAccount, "account"},
	"POST /api/v1/accounts/:id/deposit":                  {domain.AuditActionDeposit, "account"},
	"POST /api/v1/accounts/:id/withdraw":                 {domain.AuditActionWithdraw, "account"},
	"PUT /api/v1/accounts/:id/signers":                   {domain.AuditActionUpdateSigners, "account"},
	"POST /api/v1/accounts/:id/reset-counter":            {domain.AuditActionResetCounters, "account"},
	"POST /api/v1/transfers":                             {domain.AuditActionTransfer, "account"},
	"POST /api/v1/debit-cards":                           {domain.AuditActionCreateCard, "debit_card"},
	"POST /api/v1/debit-cards/:id/accounts":              {domain.AuditActionLinkAccount, "debit_card"},
	"DELETE /api/v1/debit-cards/:id/accounts/:accountId": {domain.AuditActionUnlinkAccount, "debit_card"},
	"POST /api/v1/payments":                              {domain.AuditActionCardPayment, "debit_card"},
}

// AuditLog creates an audit middleware that records successful writes.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		target, ok := mapRouteToAction(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		resourceID := c.GetString(CtxResourceID)
		if resourceID == "" {
			resourceID = c.Param("id")
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Action:       target.action,
			ResourceType: target.resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(method, route string) (auditTarget, bool) {
	if route == "" {
		return auditTarget{}, false
	}
	t, ok := auditedRoutes[method+" "+route]
	return t, ok
}
