package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransactionHeader is the bank_transaction_headers row.
type BankTransactionHeader struct {
	TransactionID   string          `db:"transaction_id"`
	CompanyID       string          `db:"company_id"`
	BankAccountID   string          `db:"bank_account_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	TransactionType string          `db:"transaction_type"`
	Reference       string          `db:"reference"`
	Reconciled      bool            `db:"reconciled"`
	AuditFields
}

// BankTransactionDetail is the bank_transaction_details row.
type BankTransactionDetail struct {
	DetailID    string          `db:"detail_id"`
	HeaderID    string          `db:"tx_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	ChequeNo    string          `db:"cheque_no"`
	IsCleared   bool            `db:"is_cleared"`
	ClearedDate *time.Time      `db:"cleared_date"`
	MatchID     string          `db:"match_id"` // Nullable
	AuditFields
}
