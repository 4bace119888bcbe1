package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrUnbalancedEntry = errors.New("journal debits do not equal credits")
	ErrEmptyEntry      = errors.New("journal must move a non-zero amount")
	ErrBatchNotFound   = errors.New("batch not found or already posted")
)

// journalService provides core journal and batch operations.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// uniqueStrings returns the distinct values of a slice, preserving order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// CreateJournal validates and persists a new journal with its lines.
// Entries carrying a batch ID stay DRAFT until the batch is posted; all
// others are POSTED immediately.
// Implements portssvc.JournalSvcFacade
func (s *journalService) CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalHeader, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CompanyID != "" && req.CompanyID != companyID {
		logger.Warn("Payload company does not match authenticated company", slog.String("payload_company", req.CompanyID), slog.String("company_id", companyID))
		return nil, apperrors.ErrForbidden
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	accountIDs := make([]string, 0, len(req.Lines))
	for i, lineReq := range req.Lines {
		if lineReq.Debit.IsNegative() || lineReq.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line amounts must not be negative for account %s", apperrors.ErrValidation, lineReq.AccountID)
		}
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   lineReq.AccountID,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			TaxAmount:   lineReq.TaxAmount,
			Description: lineReq.Description,
			LineNo:      i + 1,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
		accountIDs = append(accountIDs, lineReq.AccountID)
	}

	// Double-entry check first, then the zero-value check. A journal that
	// nets to zero on both sides is balanced but still meaningless.
	totalDebit, totalCredit := accounting.SumEntryTotals(lines)
	if !totalDebit.Equal(totalCredit) {
		return nil, fmt.Errorf("%w: total debit is %s and total credit is %s",
			ErrUnbalancedEntry, totalDebit.String(), totalCredit.String())
	}
	if totalDebit.LessThanOrEqual(decimal.Zero) {
		return nil, ErrEmptyEntry
	}

	uniqueAccountIDs := uniqueStrings(accountIDs)
	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, companyID, uniqueAccountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for journal creation", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueAccountIDs {
		acc, found := accountsMap[id]
		if !found {
			// Accounts of other companies look identical to missing ones.
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if acc.IsInactive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
		if !acc.AllowAccountEntry {
			return nil, fmt.Errorf("%w: account %s does not allow direct entry", apperrors.ErrValidation, id)
		}
	}

	status := domain.Posted
	if req.BatchID != "" {
		status = domain.Draft
	}

	header := domain.JournalHeader{
		JournalID:   journalID,
		CompanyID:   companyID,
		Date:        date,
		Reference:   req.Reference,
		Notes:       req.Notes,
		Status:      status,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		BatchID:     req.BatchID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, header, lines); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	logger.Info("Journal created",
		slog.String("journal_id", journalID),
		slog.String("company_id", companyID),
		slog.String("status", string(status)),
		slog.String("total_debit", totalDebit.String()),
	)

	header.Lines = lines
	return &header, nil
}

// GetJournalByID retrieves a specific journal, with its lines, by ID.
// Implements portssvc.JournalSvcFacade
func (s *journalService) GetJournalByID(ctx context.Context, companyID string, journalID string) (*domain.JournalHeader, error) {
	header, err := s.journalRepo.FindJournalByID(ctx, companyID, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound // Obscure existence across companies
		}
		return nil, fmt.Errorf("failed to fetch journal %s: %w", journalID, err)
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lines for journal %s: %w", journalID, err)
	}
	header.Lines = lines
	return header, nil
}

// ListJournals retrieves a keyset-paginated list of journals in a company.
// Implements portssvc.JournalSvcFacade
func (s *journalService) ListJournals(ctx context.Context, companyID string, params dto.ListJournalsParams) ([]domain.JournalHeader, *string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.journalRepo.ListJournals(ctx, companyID, limit, params.NextToken)
}

// ListBatches summarizes the pending batches of a company.
// Implements portssvc.JournalSvcFacade
func (s *journalService) ListBatches(ctx context.Context, companyID string) ([]domain.BatchSummary, error) {
	return s.journalRepo.ListBatches(ctx, companyID)
}

// PostBatch atomically flips every DRAFT journal in the batch to POSTED.
// A batch that does not exist and a batch that was already posted are
// indistinguishable here; both report ErrBatchNotFound.
// Implements portssvc.JournalSvcFacade
func (s *journalService) PostBatch(ctx context.Context, companyID string, batchID string, requestingUserID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	posted, err := s.journalRepo.PostBatch(ctx, companyID, batchID, requestingUserID)
	if err != nil {
		logger.Error("Failed to post batch", slog.String("error", err.Error()), slog.String("batch_id", batchID))
		return 0, fmt.Errorf("failed to post batch %s: %w", batchID, err)
	}
	if posted == 0 {
		return 0, fmt.Errorf("%w: %s", ErrBatchNotFound, batchID)
	}

	logger.Info("Batch posted",
		slog.String("batch_id", batchID),
		slog.String("company_id", companyID),
		slog.String("posted_by", requestingUserID),
		slog.Int64("journal_count", posted),
	)
	return posted, nil
}
