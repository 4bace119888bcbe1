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

// bankingService records bank-ledger transactions and reconciles them
// against statements.
type bankingService struct {
	bankRepo   portsrepo.BankRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
}

// NewBankingService creates a new BankingService.
func NewBankingService(bankRepo portsrepo.BankRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.BankingSvcFacade {
	return &bankingService{
		bankRepo:   bankRepo,
		accountSvc: accountSvc,
	}
}

// Ensure bankingService implements the portssvc.BankingSvcFacade interface
var _ portssvc.BankingSvcFacade = (*bankingService)(nil)

// chequeDescription synthesizes the statement line text for one cheque.
func chequeDescription(chequeNumber, receivedFrom string) string {
	return fmt.Sprintf("Cheque Deposit: %s from %s", chequeNumber, receivedFrom)
}

// DepositCheques records a batch of cheques as one deposit transaction on
// the bank ledger. The header total is the sum of the cheque amounts.
// Implements portssvc.BankingSvcFacade
func (s *bankingService) DepositCheques(ctx context.Context, companyID string, req dto.CreateChequeDepositRequest, creatorUserID string) (*domain.BankTransactionHeader, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CompanyID != "" && req.CompanyID != companyID {
		logger.Warn("Payload company does not match authenticated company", slog.String("payload_company", req.CompanyID), slog.String("company_id", companyID))
		return nil, apperrors.ErrForbidden
	}

	depositDate, err := dto.ParseDate(req.DepositDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deposit date %q", apperrors.ErrValidation, req.DepositDate)
	}

	bankAccount, err := s.accountSvc.GetAccountByID(ctx, companyID, req.BankAccountID)
	if err != nil {
		return nil, err
	}
	if bankAccount.IsInactive {
		return nil, fmt.Errorf("%w: bank account %s is inactive", apperrors.ErrValidation, bankAccount.AccountID)
	}

	now := time.Now().UTC()
	headerID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	total := decimal.Zero
	details := make([]domain.BankTransactionDetail, len(req.Cheques))
	for i, cheque := range req.Cheques {
		if cheque.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: cheque %s amount must be positive", apperrors.ErrValidation, cheque.ChequeNumber)
		}
		details[i] = domain.BankTransactionDetail{
			DetailID:    uuid.NewString(),
			HeaderID:    headerID,
			Description: chequeDescription(cheque.ChequeNumber, cheque.ReceivedFrom),
			Amount:      cheque.Amount,
			ChequeNo:    cheque.ChequeNumber,
			IsCleared:   false,
			AuditFields: audit,
		}
		total = total.Add(cheque.Amount)
	}

	header := domain.BankTransactionHeader{
		TransactionID:   headerID,
		CompanyID:       companyID,
		BankAccountID:   req.BankAccountID,
		Date:            depositDate,
		TotalAmount:     total,
		TransactionType: domain.BankDeposit,
		Reference:       req.Reference,
		Reconciled:      false,
		AuditFields:     audit,
	}

	if err := s.bankRepo.SaveBankTransaction(ctx, header, details); err != nil {
		logger.Error("Failed to save cheque deposit", slog.String("error", err.Error()), slog.String("transaction_id", headerID))
		return nil, fmt.Errorf("failed to save cheque deposit: %w", err)
	}

	logger.Info("Cheque deposit recorded",
		slog.String("transaction_id", headerID),
		slog.String("bank_account_id", req.BankAccountID),
		slog.Int("cheque_count", len(details)),
		slog.String("total_amount", total.String()),
	)

	header.Details = details
	return &header, nil
}

// Reconcile matches statement lines against recorded details and marks the
// matched ones cleared. A line that matches nothing is skipped and reported,
// never fatal; partial progress is kept.
// Implements portssvc.BankingSvcFacade
func (s *bankingService) Reconcile(ctx context.Context, companyID string, req dto.CreateBankReconciliationRequest, requestingUserID string) (*domain.ReconciliationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CompanyID != "" && req.CompanyID != companyID {
		logger.Warn("Payload company does not match authenticated company", slog.String("payload_company", req.CompanyID), slog.String("company_id", companyID))
		return nil, apperrors.ErrForbidden
	}

	statementDate, err := dto.ParseDate(req.StatementDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid statement date %q", apperrors.ErrValidation, req.StatementDate)
	}

	if _, err := s.accountSvc.GetAccountByID(ctx, companyID, req.BankAccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := domain.ReconciliationResult{
		BankAccountID: req.BankAccountID,
		StatementDate: statementDate,
	}
	touchedHeaders := make(map[string]struct{})

	for _, item := range req.Items {
		detail, err := s.bankRepo.FindDetailScoped(ctx, companyID, req.BankAccountID, item.TransactionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				result.Skipped = append(result.Skipped, item.TransactionID)
				continue
			}
			return nil, fmt.Errorf("failed to look up detail %s: %w", item.TransactionID, err)
		}
		result.Matched++

		if !item.IsCleared || detail.IsCleared {
			continue
		}

		clearedDate := statementDate
		if item.ClearedDate != "" {
			clearedDate, err = dto.ParseDate(item.ClearedDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid cleared date %q", apperrors.ErrValidation, item.ClearedDate)
			}
		}
		if err := s.bankRepo.MarkDetailCleared(ctx, detail.DetailID, clearedDate, requestingUserID, now); err != nil {
			logger.Error("Failed to mark detail cleared", slog.String("error", err.Error()), slog.String("detail_id", detail.DetailID))
			return nil, fmt.Errorf("failed to mark detail %s cleared: %w", detail.DetailID, err)
		}
		result.Updated++
		touchedHeaders[detail.HeaderID] = struct{}{}
	}

	// A header is reconciled as soon as any of its items clears against the
	// statement; sibling items may still be outstanding.
	for headerID := range touchedHeaders {
		if err := s.bankRepo.MarkHeaderReconciled(ctx, headerID, requestingUserID, now); err != nil {
			return nil, fmt.Errorf("failed to mark header %s reconciled: %w", headerID, err)
		}
	}

	logger.Info("Bank reconciliation completed",
		slog.String("bank_account_id", req.BankAccountID),
		slog.Int("matched", result.Matched),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", len(result.Skipped)),
	)
	return &result, nil
}

// ListDeposits retrieves the deposit transactions of a company with their
// details.
// Implements portssvc.BankingSvcFacade
func (s *bankingService) ListDeposits(ctx context.Context, companyID string) ([]domain.BankTransactionHeader, error) {
	return s.bankRepo.ListDeposits(ctx, companyID)
}
