package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// ledgerService derives balances and movement reports from posted journals.
// DRAFT journals never contribute.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CalculateAccountBalance derives the current balance of an account.
// An account that does not exist in the company yields zero rather than an
// error, matching how callers probe balances.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) CalculateAccountBalance(ctx context.Context, companyID string, accountID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}

	sumDebit, sumCredit, err := s.journalRepo.SumPostedByAccount(ctx, companyID, accountID)
	if err != nil {
		logger.Error("Failed to sum posted lines", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to sum posted lines for account %s: %w", accountID, err)
	}

	balance, err := accounting.DeriveBalance(account.TypicalBalance, account.OpeningBalance, sumDebit, sumCredit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to derive balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// GetLedgerReport lists the POSTED movements of an account between two dates
// inclusive, each with the running balance after it.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) GetLedgerReport(ctx context.Context, companyID string, accountID string, startDate, endDate time.Time) (*domain.LedgerReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}

	// Opening balance of the report is the account balance as of the day
	// before the range starts.
	sumDebit, sumCredit, err := s.journalRepo.SumPostedByAccountBefore(ctx, companyID, accountID, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to sum prior postings for account %s: %w", accountID, err)
	}
	opening, err := accounting.DeriveBalance(account.TypicalBalance, account.OpeningBalance, sumDebit, sumCredit)
	if err != nil {
		return nil, fmt.Errorf("failed to derive opening balance for account %s: %w", accountID, err)
	}

	ledgerLines, err := s.journalRepo.FindPostedLinesByAccountDateRange(ctx, companyID, accountID, startDate, endDate)
	if err != nil {
		logger.Error("Failed to fetch ledger lines", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to fetch ledger lines for account %s: %w", accountID, err)
	}

	running := opening
	reportLines := make([]domain.LedgerReportLine, len(ledgerLines))
	for i := range ledgerLines {
		effect, err := accounting.SignedLineEffect(account.TypicalBalance, ledgerLines[i].Debit, ledgerLines[i].Credit)
		if err != nil {
			return nil, fmt.Errorf("failed to derive line effect: %w", err)
		}
		running = running.Add(effect)
		reportLines[i] = domain.LedgerReportLine{
			LedgerLine:     ledgerLines[i],
			RunningBalance: running,
		}
	}

	return &domain.LedgerReport{
		Account:        *account,
		StartDate:      startDate,
		EndDate:        endDate,
		OpeningBalance: opening,
		ClosingBalance: running,
		Lines:          reportLines,
	}, nil
}
