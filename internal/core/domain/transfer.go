package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundTransfer records value moved between two accounts of one company.
// It always back-references the POSTED journal header it generated.
type FundTransfer struct {
	TransferID    string          `json:"transferID"` // Primary key (UUID)
	CompanyID     string          `json:"companyID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`    // "Posted" on success
	JournalID     string          `json:"journalID"` // FK -> JournalHeader (1:1)
	AuditFields
}
