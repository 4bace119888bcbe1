package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankingHandler handles HTTP requests related to the bank ledger.
type bankingHandler struct {
	bankingService portssvc.BankingSvcFacade
}

// newBankingHandler creates a new bankingHandler.
func newBankingHandler(bs portssvc.BankingSvcFacade) *bankingHandler {
	return &bankingHandler{bankingService: bs}
}

// registerBankingRoutes registers routes related to cheque deposits and
// bank reconciliation.
func registerBankingRoutes(rg *gin.RouterGroup, bankingService portssvc.BankingSvcFacade) {
	h := newBankingHandler(bankingService)

	deposits := rg.Group("/cheque-deposits")
	{
		deposits.POST("", h.createChequeDeposit)
		deposits.GET("", h.listDeposits)
	}

	reconciliations := rg.Group("/bank-reconciliations")
	{
		reconciliations.POST("", h.createReconciliation)
	}
}

// createChequeDeposit godoc
// @Summary Deposit cheques into a bank account
// @Description Records a batch of cheques as one deposit transaction on the bank ledger
// @Tags banking
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateChequeDepositRequest true "Cheque deposit"
// @Success 201 {object} dto.BankTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Payload company mismatch"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Security BearerAuth
// @Router /cheque-deposits [post]
func (h *bankingHandler) createChequeDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChequeDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChequeDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	transaction, err := h.bankingService.DepositCheques(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record cheque deposit in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record deposit"})
		}
		return
	}

	logger.Info("Cheque deposit recorded successfully", slog.String("transaction_id", transaction.TransactionID))
	c.JSON(http.StatusCreated, dto.ToBankTransactionResponse(transaction))
}

// listDeposits godoc
// @Summary List cheque deposits
// @Description Lists the deposit transactions of the authenticated company with their details
// @Tags banking
// @Produce  json
// @Success 200 {object} dto.ListBankTransactionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list deposits"
// @Security BearerAuth
// @Router /cheque-deposits [get]
func (h *bankingHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	_, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	transactions, err := h.bankingService.ListDeposits(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Failed to list deposits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deposits"})
		return
	}

	resp := dto.ListBankTransactionsResponse{Transactions: make([]dto.BankTransactionResponse, len(transactions))}
	for i := range transactions {
		resp.Transactions[i] = dto.ToBankTransactionResponse(&transactions[i])
	}
	c.JSON(http.StatusOK, resp)
}

// createReconciliation godoc
// @Summary Reconcile bank transactions against a statement
// @Description Matches statement lines to recorded details and marks them cleared; unmatched lines are skipped, not failed
// @Tags banking
// @Accept  json
// @Produce  json
// @Param   reconciliation body dto.CreateBankReconciliationRequest true "Statement lines"
// @Success 200 {object} dto.BankReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Payload company mismatch"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to reconcile"
// @Security BearerAuth
// @Router /bank-reconciliations [post]
func (h *bankingHandler) createReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	result, err := h.bankingService.Reconcile(c.Request.Context(), companyID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reconcile in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BankReconciliationResponse{
		BankAccountID: result.BankAccountID,
		StatementDate: dto.FormatDate(result.StatementDate),
		Matched:       result.Matched,
		Updated:       result.Updated,
		Skipped:       result.Skipped,
	})
}
