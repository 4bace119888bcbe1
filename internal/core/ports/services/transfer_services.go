package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
)

// TransferSvcFacade defines operations for internal fund transfers
type TransferSvcFacade interface {
	// CreateFundTransfer moves money between two accounts of the same
	// company by generating and posting a balanced journal. Fails when the
	// source account would be overdrawn.
	CreateFundTransfer(ctx context.Context, companyID string, req dto.CreateFundTransferRequest, creatorUserID string) (*domain.FundTransfer, error)

	// ListFundTransfers retrieves the transfers recorded in a company.
	ListFundTransfers(ctx context.Context, companyID string) ([]domain.FundTransfer, error)
}
