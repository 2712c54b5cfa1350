package handler

import (
	"bank-account-service/internal/adapter/http/dto"
	"bank-account-service/internal/core/ports"
	"bank-account-service/pkg/apperror"
	"bank-account-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves read-only customer reports.
type ReportHandler struct {
	reportingSvc ports.ReportingService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportingSvc ports.ReportingService) *ReportHandler {
	return &ReportHandler{reportingSvc: reportingSvc}
}

// AverageDailyBalance handles GET /api/v1/customers/:customerId/reports/average-daily-balance.
func (h *ReportHandler) AverageDailyBalance(c *gin.Context) {
	var uri customerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	averages, err := h.reportingSvc.AverageDailyBalance(c.Request.Context(), uri.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ReportResponse{CustomerID: uri.CustomerID, Accounts: averages})
}

// Commissions handles GET /api/v1/customers/:customerId/reports/commissions.
// The optional start/end query accepts YYYY-MM-DD.
func (h *ReportHandler) Commissions(c *gin.Context) {
	var uri customerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	var q dto.CommissionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	start, end := q.Range()
	totals, err := h.reportingSvc.CommissionsReport(c.Request.Context(), uri.CustomerID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ReportResponse{CustomerID: uri.CustomerID, Accounts: totals})
}
