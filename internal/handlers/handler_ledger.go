package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for ledger reports.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger report route.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	rg.GET("/ledger-report", h.getLedgerReport)
}

// getLedgerReport godoc
// @Summary Get an account's ledger report
// @Description Lists the POSTED movements of one account between two dates inclusive, with running balances
// @Tags ledger
// @Produce  json
// @Param   accountID query string true "Account ID"
// @Param   startDate query string true "Range start (YYYY-MM-DD)"
// @Param   endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerReportResponse
// @Failure 400 {object} map[string]string "Invalid parameters or date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /ledger-report [get]
func (h *ledgerHandler) getLedgerReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.LedgerReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	// Dates are pre-validated by the datetime binding tag.
	startDate, err := dto.ParseDate(params.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
		return
	}
	endDate, err := dto.ParseDate(params.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
		return
	}

	_, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	report, err := h.ledgerService.GetLedgerReport(c.Request.Context(), companyID, params.AccountID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to build ledger report", slog.String("error", err.Error()), slog.String("account_id", params.AccountID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerReportResponse(report))
}
