package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransactionType classifies a bank transaction header.
type BankTransactionType string

const (
	BankDeposit    BankTransactionType = "Deposit"
	BankWithdrawal BankTransactionType = "Withdrawal"
)

// BankTransactionHeader is one entry of the secondary bank ledger
// (a statement-level group of deposits or cheques). It is cross-referenced
// to posted journals but is not part of the double-entry invariant.
type BankTransactionHeader struct {
	TransactionID   string              `json:"transactionID"` // Primary key (UUID)
	CompanyID       string              `json:"companyID"`
	BankAccountID   string              `json:"bankAccountID"` // FK -> Account
	Date            time.Time           `json:"date"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	TransactionType BankTransactionType `json:"transactionType"`
	Reference       string              `json:"reference"`
	Reconciled      bool                `json:"reconciled"`
	AuditFields

	// Details are loaded separately; nil unless explicitly fetched.
	Details []BankTransactionDetail `json:"details,omitempty"`
}

// ReconciliationResult summarizes one reconciliation run. Statement lines
// that matched nothing are reported in Skipped rather than failing the run.
type ReconciliationResult struct {
	BankAccountID string    `json:"bankAccountID"`
	StatementDate time.Time `json:"statementDate"`
	Matched       int       `json:"matched"`
	Updated       int       `json:"updated"`
	Skipped       []string  `json:"skipped,omitempty"`
}

// BankTransactionDetail is a single statement line under a header.
type BankTransactionDetail struct {
	DetailID    string          `json:"detailID"` // Primary key (UUID)
	HeaderID    string          `json:"headerID"` // FK -> BankTransactionHeader
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ChequeNo    string          `json:"chequeNo"`
	IsCleared   bool            `json:"isCleared"`
	ClearedDate *time.Time      `json:"clearedDate,omitempty"`
	MatchID     string          `json:"matchID"` // Optional link to a journal header
	AuditFields
}
