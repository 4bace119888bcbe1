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

// journalHandler handles HTTP requests related to journals and batches.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to journals and batches.
// Batches live under their own prefix so the :journalID wildcard stays
// unambiguous.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
	}

	batches := rg.Group("/batches")
	{
		batches.GET("", h.listBatches)
		batches.POST("/:batchID/post", h.postBatch)
	}
}

// createJournal godoc
// @Summary Create a journal entry
// @Description Validates and records a balanced journal entry. Entries with a batchID stay DRAFT until the batch is posted.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal entry"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Unbalanced, empty, or invalid entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Payload company mismatch"
// @Failure 404 {object} map[string]string "Referenced account not found"
// @Failure 500 {object} map[string]string "Failed to create journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnbalancedEntry) || errors.Is(err, services.ErrEmptyEntry):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create journal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal"})
		}
		return
	}

	logger.Info("Journal created successfully", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal by ID
// @Description Retrieves a journal header and its lines
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	_, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), companyID, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		} else {
			logger.Error("Failed to get journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Description Lists the journals of the authenticated company, newest first, with cursor pagination
// @Tags journals
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	_, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	journals, nextToken, err := h.journalService.ListJournals(c.Request.Context(), companyID, params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journals"})
		return
	}

	resp := dto.ListJournalsResponse{
		Journals:  make([]dto.JournalResponse, len(journals)),
		NextToken: nextToken,
	}
	for i := range journals {
		resp.Journals[i] = dto.ToJournalResponse(&journals[i])
	}
	c.JSON(http.StatusOK, resp)
}

// listBatches godoc
// @Summary List pending batches
// @Description Summarizes the DRAFT journal batches of the authenticated company
// @Tags batches
// @Produce  json
// @Success 200 {object} dto.ListBatchesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list batches"
// @Security BearerAuth
// @Router /batches [get]
func (h *journalHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	_, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	batches, err := h.journalService.ListBatches(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Failed to list batches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list batches"})
		return
	}

	resp := dto.ListBatchesResponse{Batches: make([]dto.BatchSummaryResponse, len(batches))}
	for i, b := range batches {
		resp.Batches[i] = dto.BatchSummaryResponse{
			BatchID:    b.BatchID,
			Count:      b.Count,
			TotalDebit: b.TotalDebit,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// postBatch godoc
// @Summary Post a batch of DRAFT journals
// @Description Atomically transitions every DRAFT journal in the batch to POSTED
// @Tags batches
// @Produce  json
// @Param   batchID path string true "Batch ID"
// @Success 200 {object} dto.PostBatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found or already posted"
// @Failure 500 {object} map[string]string "Failed to post batch"
// @Security BearerAuth
// @Router /batches/{batchID}/post [post]
func (h *journalHandler) postBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")

	requestingUserID, companyID, ok := identityFromContext(c)
	if !ok {
		return
	}

	posted, err := h.journalService.PostBatch(c.Request.Context(), companyID, batchID, requestingUserID)
	if err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to post batch", slog.String("error", err.Error()), slog.String("batch_id", batchID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post batch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PostBatchResponse{BatchID: batchID, Posted: posted})
}
