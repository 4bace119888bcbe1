package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ParseAccountType converts an external string into an AccountType or fails.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Asset, Liability, Equity, Revenue, Expense:
		return AccountType(s), nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// TypicalBalance is the sign convention used to interpret raw debit/credit
// sums as an increase or decrease to an account's balance.
type TypicalBalance string

const (
	DebitNormal  TypicalBalance = "DEBIT"
	CreditNormal TypicalBalance = "CREDIT"
)

// ParseTypicalBalance converts an external string into a TypicalBalance or fails.
func ParseTypicalBalance(s string) (TypicalBalance, error) {
	switch TypicalBalance(s) {
	case DebitNormal, CreditNormal:
		return TypicalBalance(s), nil
	}
	return "", fmt.Errorf("unknown typical balance %q", s)
}

// PostingLevel is a per-module granularity hint for how detailed postings
// to an account should be. Carried as account metadata, not enforced here.
type PostingLevel string

const (
	PostingDetail  PostingLevel = "DETAIL"
	PostingSummary PostingLevel = "SUMMARY"
)

// PostingLevels groups the per-module posting granularity hints.
type PostingLevels struct {
	Sales      PostingLevel `json:"sales"`
	Inventory  PostingLevel `json:"inventory"`
	Purchasing PostingLevel `json:"purchasing"`
	Payroll    PostingLevel `json:"payroll"`
}

// Account represents one node of a company's chart of accounts.
// Accounts are never physically deleted; IsInactive retires them.
type Account struct {
	AccountID         string          `json:"accountID"`   // Primary key (UUID)
	CompanyID         string          `json:"companyID"`   // Tenant boundary (NON-NULL)
	Code              string          `json:"code"`        // Unique within the company, immutable once created
	Name              string          `json:"name"`        // Display name
	Alias             string          `json:"alias"`       // Optional short name
	AccountType       AccountType     `json:"accountType"` // ASSET, LIABILITY, etc.
	SubType           string          `json:"subType"`     // Free text classification
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	PostingType       string          `json:"postingType"`    // "Balance Sheet" or "Profit and Loss"
	TypicalBalance    TypicalBalance  `json:"typicalBalance"` // Sign convention for balance derivation
	IsInactive        bool            `json:"isInactive"`
	AllowAccountEntry bool            `json:"allowAccountEntry"`
	OpeningBalance    decimal.Decimal `json:"openingBalance"`
	PostingLevels     PostingLevels   `json:"postingLevels"`
	ParentAccountID   string          `json:"parentAccountID"` // Nullable self-reference forming a tree
	AuditFields
}
