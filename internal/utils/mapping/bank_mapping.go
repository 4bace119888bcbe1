package mapping

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/models"
)

// ToModelBankHeader converts a domain.BankTransactionHeader into its row.
func ToModelBankHeader(d domain.BankTransactionHeader) models.BankTransactionHeader {
	return models.BankTransactionHeader{
		TransactionID:   d.TransactionID,
		CompanyID:       d.CompanyID,
		BankAccountID:   d.BankAccountID,
		TransactionDate: d.Date,
		TotalAmount:     d.TotalAmount,
		TransactionType: string(d.TransactionType),
		Reference:       d.Reference,
		Reconciled:      d.Reconciled,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankHeader converts a bank_transaction_headers row into the domain type.
func ToDomainBankHeader(m models.BankTransactionHeader) domain.BankTransactionHeader {
	return domain.BankTransactionHeader{
		TransactionID:   m.TransactionID,
		CompanyID:       m.CompanyID,
		BankAccountID:   m.BankAccountID,
		Date:            m.TransactionDate,
		TotalAmount:     m.TotalAmount,
		TransactionType: domain.BankTransactionType(m.TransactionType),
		Reference:       m.Reference,
		Reconciled:      m.Reconciled,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankDetail converts a domain.BankTransactionDetail into its row.
func ToModelBankDetail(d domain.BankTransactionDetail) models.BankTransactionDetail {
	return models.BankTransactionDetail{
		DetailID:    d.DetailID,
		HeaderID:    d.HeaderID,
		Description: d.Description,
		Amount:      d.Amount,
		ChequeNo:    d.ChequeNo,
		IsCleared:   d.IsCleared,
		ClearedDate: d.ClearedDate,
		MatchID:     d.MatchID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankDetail converts a bank_transaction_details row into the domain type.
func ToDomainBankDetail(m models.BankTransactionDetail) domain.BankTransactionDetail {
	return domain.BankTransactionDetail{
		DetailID:    m.DetailID,
		HeaderID:    m.HeaderID,
		Description: m.Description,
		Amount:      m.Amount,
		ChequeNo:    m.ChequeNo,
		IsCleared:   m.IsCleared,
		ClearedDate: m.ClearedDate,
		MatchID:     m.MatchID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankDetailSlice converts a slice of detail rows.
func ToDomainBankDetailSlice(ms []models.BankTransactionDetail) []domain.BankTransactionDetail {
	ds := make([]domain.BankTransactionDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankDetail(m)
	}
	return ds
}
