package mapping

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/models"
)

// ToModelFundTransfer converts a domain.FundTransfer into its fund_transfers row.
func ToModelFundTransfer(d domain.FundTransfer) models.FundTransfer {
	return models.FundTransfer{
		TransferID:    d.TransferID,
		CompanyID:     d.CompanyID,
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		Amount:        d.Amount,
		TransferDate:  d.Date,
		Reference:     d.Reference,
		Notes:         d.Notes,
		Status:        d.Status,
		JournalID:     d.JournalID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFundTransfer converts a fund_transfers row into a domain.FundTransfer.
func ToDomainFundTransfer(m models.FundTransfer) domain.FundTransfer {
	return domain.FundTransfer{
		TransferID:    m.TransferID,
		CompanyID:     m.CompanyID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Amount:        m.Amount,
		Date:          m.TransferDate,
		Reference:     m.Reference,
		Notes:         m.Notes,
		Status:        m.Status,
		JournalID:     m.JournalID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
