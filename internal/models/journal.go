package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal header.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// JournalHeader is the journal_headers row.
type JournalHeader struct {
	JournalID   string          `db:"journal_id"`
	CompanyID   string          `db:"company_id"`
	JournalDate time.Time       `db:"journal_date"`
	Reference   string          `db:"reference"`
	Notes       string          `db:"notes"`
	Status      JournalStatus   `db:"status"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	BatchID     string          `db:"batch_id"` // Nullable
	AuditFields
}

// JournalLine is the journal_details row.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	JournalID   string          `db:"journal_id"`
	AccountID   string          `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	Description string          `db:"description"`
	LineNo      int             `db:"line_no"`
	AuditFields

	// Joined header columns, populated only by the ledger report query.
	JournalDate      time.Time     `db:"journal_date"`
	JournalReference string        `db:"reference"`
	JournalStatus    JournalStatus `db:"status"`
}
