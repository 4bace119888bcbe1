package services

import (
	"context"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerCalculatorSvc defines balance derivation operations
type LedgerCalculatorSvc interface {
	// CalculateAccountBalance derives the current balance of an account from
	// its opening balance and its POSTED lines, honoring the account's
	// typical balance. Accounts with no postings yield their opening balance;
	// unknown accounts yield zero.
	CalculateAccountBalance(ctx context.Context, companyID string, accountID string) (decimal.Decimal, error)
}

// LedgerReportingSvc defines operations for generating ledger reports
type LedgerReportingSvc interface {
	// GetLedgerReport lists the POSTED movements of an account between two
	// dates inclusive, with running balances.
	GetLedgerReport(ctx context.Context, companyID string, accountID string, startDate, endDate time.Time) (*domain.LedgerReport, error)
}

// LedgerSvcFacade combines the ledger calculation and reporting interfaces
type LedgerSvcFacade interface {
	LedgerCalculatorSvc
	LedgerReportingSvc
}
