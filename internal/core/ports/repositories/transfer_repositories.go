package repositories

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// TransferRepositoryFacade defines persistence operations for fund transfers.
type TransferRepositoryFacade interface {
	// SaveTransfer persists the transfer record together with its generated
	// journal header and lines in one database transaction. The source
	// account row is locked FOR UPDATE and its balance re-derived inside the
	// transaction; when the locked balance is lower than the transfer amount
	// the whole transaction rolls back with apperrors.ErrInsufficientFunds.
	SaveTransfer(ctx context.Context, transfer domain.FundTransfer, header domain.JournalHeader, lines []domain.JournalLine) error

	ListTransfers(ctx context.Context, companyID string) ([]domain.FundTransfer, error)
}
