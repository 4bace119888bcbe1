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
	"github.com/shopspring/decimal"
)

var ErrSameAccount = errors.New("source and destination accounts must differ")

// transferReferencePrefix marks journals generated by fund transfers.
const transferReferencePrefix = "FT-"

// TransferCompleted is the terminal status of a successful transfer; there
// are no intermediate states because transfers post synchronously.
const TransferCompleted = "COMPLETED"

// transferService moves money between accounts by generating balanced
// journals.
type transferService struct {
	transferRepo portsrepo.TransferRepositoryFacade
	accountSvc   portssvc.AccountSvcFacade
	ledgerSvc    portssvc.LedgerSvcFacade
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		accountSvc:   accountSvc,
		ledgerSvc:    ledgerSvc,
	}
}

// Ensure transferService implements the portssvc.TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateFundTransfer moves money between two accounts of the same company.
// The balance check here is advisory; the repository repeats it under a row
// lock so concurrent transfers cannot jointly overdraw the source.
// Implements portssvc.TransferSvcFacade
func (s *transferService) CreateFundTransfer(ctx context.Context, companyID string, req dto.CreateFundTransferRequest, creatorUserID string) (*domain.FundTransfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CompanyID != "" && req.CompanyID != companyID {
		logger.Warn("Payload company does not match authenticated company", slog.String("payload_company", req.CompanyID), slog.String("company_id", companyID))
		return nil, apperrors.ErrForbidden
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, companyID, []string{req.FromAccountID, req.ToAccountID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transfer accounts: %w", err)
	}
	from, ok := accountsMap[req.FromAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, req.FromAccountID)
	}
	to, ok := accountsMap[req.ToAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, req.ToAccountID)
	}
	// Checked after resolution so a transfer naming the same unknown
	// account twice reports the account as missing, not as duplicated.
	if req.FromAccountID == req.ToAccountID {
		return nil, ErrSameAccount
	}
	for _, acc := range []domain.Account{from, to} {
		if acc.IsInactive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.AccountID)
		}
	}

	// Fast-fail before opening a transaction. Not authoritative.
	balance, err := s.ledgerSvc.CalculateAccountBalance(ctx, companyID, req.FromAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check source balance: %w", err)
	}
	if balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: balance %s is less than transfer amount %s",
			apperrors.ErrInsufficientFunds, balance.String(), req.Amount.String())
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()
	transferID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	notes := "Internal Fund Transfer: " + req.Notes
	header := domain.JournalHeader{
		JournalID:   journalID,
		CompanyID:   companyID,
		Date:        date,
		Reference:   transferReferencePrefix + req.Reference,
		Notes:       notes,
		Status:      domain.Posted,
		TotalDebit:  req.Amount,
		TotalCredit: req.Amount,
		AuditFields: audit,
	}
	lines := []domain.JournalLine{
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.ToAccountID,
			Debit:       req.Amount,
			Description: "Transfer in from " + from.Name,
			LineNo:      1,
			AuditFields: audit,
		},
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.FromAccountID,
			Credit:      req.Amount,
			Description: "Transfer out to " + to.Name,
			LineNo:      2,
			AuditFields: audit,
		},
	}
	transfer := domain.FundTransfer{
		TransferID:    transferID,
		CompanyID:     companyID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Date:          date,
		Reference:     req.Reference,
		Notes:         req.Notes,
		Status:        TransferCompleted,
		JournalID:     journalID,
		AuditFields:   audit,
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer, header, lines); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Warn("Transfer rejected under lock",
				slog.String("from_account", req.FromAccountID),
				slog.String("amount", req.Amount.String()),
			)
			return nil, err
		}
		logger.Error("Failed to save transfer", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	logger.Info("Fund transfer completed",
		slog.String("transfer_id", transferID),
		slog.String("journal_id", journalID),
		slog.String("from_account", req.FromAccountID),
		slog.String("to_account", req.ToAccountID),
		slog.String("amount", req.Amount.String()),
	)
	return &transfer, nil
}

// ListFundTransfers retrieves the transfers recorded in a company.
// Implements portssvc.TransferSvcFacade
func (s *transferService) ListFundTransfers(ctx context.Context, companyID string) ([]domain.FundTransfer, error) {
	return s.transferRepo.ListTransfers(ctx, companyID)
}
