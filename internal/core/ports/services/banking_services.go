package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
)

// BankingReaderSvc defines read operations for bank transactions
type BankingReaderSvc interface {
	// ListDeposits retrieves the deposit transactions of a company, with
	// their details.
	ListDeposits(ctx context.Context, companyID string) ([]domain.BankTransactionHeader, error)
}

// BankingWriterSvc defines write operations for bank transactions
type BankingWriterSvc interface {
	// DepositCheques records a batch of cheques as one deposit transaction
	// on the bank ledger.
	DepositCheques(ctx context.Context, companyID string, req dto.CreateChequeDepositRequest, creatorUserID string) (*domain.BankTransactionHeader, error)

	// Reconcile matches statement lines against recorded details and marks
	// the matched ones cleared. Unmatched lines are skipped, not failed.
	Reconcile(ctx context.Context, companyID string, req dto.CreateBankReconciliationRequest, requestingUserID string) (*domain.ReconciliationResult, error)
}

// BankingSvcFacade combines the banking service interfaces
type BankingSvcFacade interface {
	BankingReaderSvc
	BankingWriterSvc
}
