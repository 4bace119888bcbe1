package dto

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFundTransferRequest defines the data needed to move money between
// two accounts of the same company. Amount positivity is enforced in the
// service because decimal amounts bypass numeric binding tags.
type CreateFundTransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Reference     string          `json:"reference" binding:"required"`
	Notes         string          `json:"notes"`
	CompanyID     string          `json:"companyID"` // Optional; must match the authenticated tenant when present
}

// FundTransferResponse defines the data returned for a fund transfer.
type FundTransferResponse struct {
	TransferID    string          `json:"transferID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes,omitempty"`
	Status        string          `json:"status"`
	JournalID     string          `json:"journalID"`
	CreatedAt     string          `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToFundTransferResponse converts a domain.FundTransfer to its DTO.
func ToFundTransferResponse(t *domain.FundTransfer) FundTransferResponse {
	return FundTransferResponse{
		TransferID:    t.TransferID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Date:          FormatDate(t.Date),
		Reference:     t.Reference,
		Notes:         t.Notes,
		Status:        t.Status,
		JournalID:     t.JournalID,
		CreatedAt:     t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		CreatedBy:     t.CreatedBy,
	}
}

// ListFundTransfersResponse wraps the list of transfers.
type ListFundTransfersResponse struct {
	Transfers []FundTransferResponse `json:"transfers"`
}
