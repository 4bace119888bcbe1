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

// transferHandler handles HTTP requests related to fund transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers routes related to fund transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/fund-transfers")
	{
		transfers.POST("", h.createFundTransfer)
		transfers.GET("", h.listFundTransfers)
	}
}

// createFundTransfer godoc
// @Summary Transfer funds between two accounts
// @Description Moves money between two accounts of the authenticated company by posting a balanced journal
// @Tags fund-transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateFundTransferRequest true "Transfer details"
// @Success 201 {object} dto.FundTransferResponse
// @Failure 400 {object} map[string]string "Invalid input or same source and destination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Payload company mismatch"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to create transfer"
// @Security BearerAuth
// @Router /fund-transfers [post]
func (h *transferHandler) createFundTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFundTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFundTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.CreateFundTransfer(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrSameAccount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create fund transfer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transfer"})
		}
		return
	}

	logger.Info("Fund transfer created successfully", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusCreated, dto.ToFundTransferResponse(transfer))
}

// listFundTransfers godoc
// @Summary List fund transfers
// @Description Lists the fund transfers of the authenticated company, newest first
// @Tags fund-transfers
// @Produce  json
// @Success 200 {object} dto.ListFundTransfersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transfers"
// @Security BearerAuth
// @Router /fund-transfers [get]
func (h *transferHandler) listFundTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	_, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	transfers, err := h.transferService.ListFundTransfers(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Failed to list fund transfers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transfers"})
		return
	}

	resp := dto.ListFundTransfersResponse{Transfers: make([]dto.FundTransferResponse, len(transfers))}
	for i := range transfers {
		resp.Transfers[i] = dto.ToFundTransferResponse(&transfers[i])
	}
	c.JSON(http.StatusOK, resp)
}
