package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal header.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED" // Terminal
)

// ParseJournalStatus converts an external string into a JournalStatus or fails.
func ParseJournalStatus(s string) (JournalStatus, error) {
	switch JournalStatus(s) {
	case Draft, Posted:
		return JournalStatus(s), nil
	}
	return "", fmt.Errorf("unknown journal status %q", s)
}

// JournalHeader represents a single balanced financial event composed of
// multiple journal lines. Once POSTED a header is immutable.
type JournalHeader struct {
	JournalID   string          `json:"journalID"` // Primary key (UUID)
	CompanyID   string          `json:"companyID"` // Tenant boundary (NON-NULL)
	Date        time.Time       `json:"date"`      // Calendar date, no time-of-day
	Reference   string          `json:"reference"` // Free text, not unique
	Notes       string          `json:"notes"`
	Status      JournalStatus   `json:"status"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	BatchID     string          `json:"batchID"` // Optional named batch of DRAFT headers
	AuditFields

	// Lines are loaded separately; nil unless explicitly fetched.
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is a single line of a journal header, affecting one account.
// A line conventionally carries a value in exactly one of Debit/Credit,
// but the model does not forbid both; the header totals are the invariant.
type JournalLine struct {
	LineID      string          `json:"lineID"`    // Primary key (UUID)
	JournalID   string          `json:"journalID"` // FK -> JournalHeader (Not Null)
	AccountID   string          `json:"accountID"` // FK -> Account (Not Null), same company as header
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Description string          `json:"description"`
	LineNo      int             `json:"lineNo"` // Preserves caller-supplied ordering
	AuditFields
}

// LedgerLine is a journal line joined to its parent header, as returned by
// the ledger report.
type LedgerLine struct {
	JournalLine
	JournalDate      time.Time     `json:"journalDate"`
	JournalReference string        `json:"journalReference"`
	JournalStatus    JournalStatus `json:"journalStatus"`
}

// LedgerReportLine pairs a posted movement with the account balance after it.
type LedgerReportLine struct {
	LedgerLine
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReport is the movement history of one account over a date range.
type LedgerReport struct {
	Account        Account            `json:"account"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"` // Balance as of the day before StartDate
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
	Lines          []LedgerReportLine `json:"lines"`
}

// BatchSummary aggregates the DRAFT headers sharing one batch ID.
type BatchSummary struct {
	BatchID    string          `json:"batchID"`
	Count      int             `json:"count"`
	TotalDebit decimal.Decimal `json:"totalDebit"`
}
