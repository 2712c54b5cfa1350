package handler

import (
	"bank-account-service/internal/adapter/http/dto"
	"bank-account-service/internal/adapter/http/middleware"
	"bank-account-service/internal/core/domain"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/apperror"
	"bank-account-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type idURI struct {
	ID string `uri:"id" binding:"required,max=64,safe_id"`
}

type customerURI struct {
	CustomerID string `uri:"customerId" binding:"required,max=64,safe_id"`
}

// AccountHandler handles account opening and read endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// CreateSavings handles POST /api/v1/accounts/savings.
func (h *AccountHandler) CreateSavings(c *gin.Context) {
	var req dto.CreateSavingsAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	h.open(c, req.ToOpening())
}

// CreateChecking handles POST /api/v1/accounts/checking.
func (h *AccountHandler) CreateChecking(c *gin.Context) {
	var req dto.CreateCheckingAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	h.open(c, req.ToOpening())
}

// CreateFixedTerm handles POST /api/v1/accounts/fixed-term.
func (h *AccountHandler) CreateFixedTerm(c *gin.Context) {
	var req dto.CreateFixedTermAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	h.open(c, req.ToOpening())
}

func (h *AccountHandler) open(c *gin.Context, opening domain.Opening) {
	account, err := h.accountSvc.CreateAccount(c.Request.Context(), opening)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, account.ID)
	response.Created(c, dto.NewAccountResponse(account))
}

// Get handles GET /api/v1/accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.GetAccount(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAccountResponse(account))
}

// ListByCustomer handles GET /api/v1/customers/:customerId/accounts.
func (h *AccountHandler) ListByCustomer(c *gin.Context) {
	var uri customerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	accounts, err := h.accountSvc.ListByCustomer(c.Request.Context(), uri.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAccountListResponse(accounts))
}

// GetBalance handles GET /api/v1/accounts/:id/balance.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	view, err := h.accountSvc.GetBalance(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{
		AccountID:                 view.AccountID,
		AccountNumber:             view.AccountNumber,
		AccountType:               string(view.Type),
		Balance:                   view.Balance,
		TransactionsPerformed:     view.TransactionsPerformed,
		RemainingFreeTransactions: view.RemainingFreeTransactions,
	})
}

// Delete handles DELETE /api/v1/accounts/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.accountSvc.DeleteAccount(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
