package handler

import (
	"bank-account-service/internal/adapter/http/dto"
	"bank-account-service/internal/adapter/http/middleware"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/apperror"
	"bank-account-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type cardAccountURI struct {
	ID        string `uri:"id" binding:"required,max=64,safe_id"`
	AccountID string `uri:"accountId" binding:"required,max=64,safe_id"`
}

// DebitCardHandler handles card management and card payments.
type DebitCardHandler struct {
	cardSvc ports.DebitCardService
}

// NewDebitCardHandler creates a new DebitCardHandler.
func NewDebitCardHandler(cardSvc ports.DebitCardService) *DebitCardHandler {
	return &DebitCardHandler{cardSvc: cardSvc}
}

// Create handles POST /api/v1/debit-cards.
func (h *DebitCardHandler) Create(c *gin.Context) {
	var req dto.CreateDebitCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	card, err := h.cardSvc.CreateDebitCard(c.Request.Context(), ports.CreateDebitCardRequest{
		CardNumber:          req.CardNumber,
		CustomerID:          req.CustomerID,
		PrimaryAccountID:    req.PrimaryAccountID,
		SecondaryAccountIDs: req.SecondaryAccountIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, card.ID)
	response.Created(c, dto.NewDebitCardResponse(card))
}

// Get handles GET /api/v1/debit-cards/:id.
func (h *DebitCardHandler) Get(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	card, err := h.cardSvc.GetDebitCard(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDebitCardResponse(card))
}

// LinkAccount handles POST /api/v1/debit-cards/:id/accounts.
func (h *DebitCardHandler) LinkAccount(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	var req dto.LinkAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	card, err := h.cardSvc.LinkAccount(c.Request.Context(), uri.ID, req.AccountID, req.IsPrimary)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDebitCardResponse(card))
}

// UnlinkAccount handles DELETE /api/v1/debit-cards/:id/accounts/:accountId.
func (h *DebitCardHandler) UnlinkAccount(c *gin.Context) {
	var uri cardAccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	card, err := h.cardSvc.UnlinkAccount(c.Request.Context(), uri.ID, uri.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDebitCardResponse(card))
}

// ProcessPayment handles POST /api/v1/payments.
func (h *DebitCardHandler) ProcessPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	masked := dto.MaskCardNumber(req.CardNumber)
	approved, err := h.cardSvc.ProcessPayment(c.Request.Context(), req.CardNumber, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, masked)
	response.OK(c, dto.PaymentResponse{
		Approved:   approved,
		CardNumber: masked,
		Amount:     req.Amount,
	})
}
