package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundTransfer is the fund_transfers row.
type FundTransfer struct {
	TransferID    string          `db:"transfer_id"`
	CompanyID     string          `db:"company_id"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	Amount        decimal.Decimal `db:"amount"`
	TransferDate  time.Time       `db:"transfer_date"`
	Reference     string          `db:"reference"`
	Notes         string          `db:"notes"`
	Status        string          `db:"status"`
	JournalID     string          `db:"journal_id"`
	AuditFields
}
