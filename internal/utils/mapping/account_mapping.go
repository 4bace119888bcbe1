package mapping

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/models"
)

// ToModelAccount converts a domain.Account into its chart_of_accounts row.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:             d.AccountID,
		CompanyID:             d.CompanyID,
		Code:                  d.Code,
		Name:                  d.Name,
		Alias:                 d.Alias,
		AccountType:           models.AccountType(d.AccountType),
		SubType:               d.SubType,
		Description:           d.Description,
		Category:              d.Category,
		PostingType:           d.PostingType,
		TypicalBalance:        string(d.TypicalBalance),
		IsInactive:            d.IsInactive,
		AllowAccountEntry:     d.AllowAccountEntry,
		OpeningBalance:        d.OpeningBalance,
		PostingLevelSales:     string(d.PostingLevels.Sales),
		PostingLevelInventory: string(d.PostingLevels.Inventory),
		PostingLevelPurchase:  string(d.PostingLevels.Purchasing),
		PostingLevelPayroll:   string(d.PostingLevels.Payroll),
		ParentAccountID:       d.ParentAccountID,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a chart_of_accounts row into a domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:         m.AccountID,
		CompanyID:         m.CompanyID,
		Code:              m.Code,
		Name:              m.Name,
		Alias:             m.Alias,
		AccountType:       domain.AccountType(m.AccountType),
		SubType:           m.SubType,
		Description:       m.Description,
		Category:          m.Category,
		PostingType:       m.PostingType,
		TypicalBalance:    domain.TypicalBalance(m.TypicalBalance),
		IsInactive:        m.IsInactive,
		AllowAccountEntry: m.AllowAccountEntry,
		OpeningBalance:    m.OpeningBalance,
		PostingLevels: domain.PostingLevels{
			Sales:      domain.PostingLevel(m.PostingLevelSales),
			Inventory:  domain.PostingLevel(m.PostingLevelInventory),
			Purchasing: domain.PostingLevel(m.PostingLevelPurchase),
			Payroll:    domain.PostingLevel(m.PostingLevelPayroll),
		},
		ParentAccountID: m.ParentAccountID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of account rows.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
