package repositories

import (
	"context"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// BankRepositoryFacade defines persistence operations for the secondary
// bank-transaction ledger.
type BankRepositoryFacade interface {
	// SaveBankTransaction persists a header and its details atomically.
	SaveBankTransaction(ctx context.Context, header domain.BankTransactionHeader, details []domain.BankTransactionDetail) error

	// FindDetailScoped locates one detail through its parent header, scoped
	// to the given company and bank account. Returns apperrors.ErrNotFound
	// when the detail does not exist inside that scope.
	FindDetailScoped(ctx context.Context, companyID string, bankAccountID string, detailID string) (*domain.BankTransactionDetail, error)

	// MarkDetailCleared records the cleared flag and date on a detail.
	MarkDetailCleared(ctx context.Context, detailID string, clearedDate time.Time, userID string, now time.Time) error

	// MarkHeaderReconciled flags a header as reconciled.
	MarkHeaderReconciled(ctx context.Context, headerID string, userID string, now time.Time) error

	ListDeposits(ctx context.Context, companyID string) ([]domain.BankTransactionHeader, error)
}
