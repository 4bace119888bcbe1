package mapping

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/models"
)

// ToModelJournalHeader converts a domain.JournalHeader into its journal_headers row.
func ToModelJournalHeader(d domain.JournalHeader) models.JournalHeader {
	return models.JournalHeader{
		JournalID:   d.JournalID,
		CompanyID:   d.CompanyID,
		JournalDate: d.Date,
		Reference:   d.Reference,
		Notes:       d.Notes,
		Status:      models.JournalStatus(d.Status),
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		BatchID:     d.BatchID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalHeader converts a journal_headers row into a domain.JournalHeader.
func ToDomainJournalHeader(m models.JournalHeader) domain.JournalHeader {
	return domain.JournalHeader{
		JournalID:   m.JournalID,
		CompanyID:   m.CompanyID,
		Date:        m.JournalDate,
		Reference:   m.Reference,
		Notes:       m.Notes,
		Status:      domain.JournalStatus(m.Status),
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		BatchID:     m.BatchID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain.JournalLine into its journal_details row.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		JournalID:   d.JournalID,
		AccountID:   d.AccountID,
		Debit:       d.Debit,
		Credit:      d.Credit,
		TaxAmount:   d.TaxAmount,
		Description: d.Description,
		LineNo:      d.LineNo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a journal_details row into a domain.JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		JournalID:   m.JournalID,
		AccountID:   m.AccountID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		TaxAmount:   m.TaxAmount,
		Description: m.Description,
		LineNo:      m.LineNo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of journal_details rows.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}

// ToDomainLedgerLine converts a joined report row into a domain.LedgerLine.
func ToDomainLedgerLine(m models.JournalLine) domain.LedgerLine {
	return domain.LedgerLine{
		JournalLine:      ToDomainJournalLine(m),
		JournalDate:      m.JournalDate,
		JournalReference: m.JournalReference,
		JournalStatus:    domain.JournalStatus(m.JournalStatus),
	}
}
