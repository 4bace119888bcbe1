package accounting

import (
	"fmt"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeriveBalance interprets raw debit/credit sums through an account's
// typical-balance convention.
// DEBIT-normal:  balance = opening + sum(debit) - sum(credit)
// CREDIT-normal: balance = opening - sum(debit) + sum(credit)
func DeriveBalance(typical domain.TypicalBalance, opening, sumDebit, sumCredit decimal.Decimal) (decimal.Decimal, error) {
	switch typical {
	case domain.DebitNormal:
		return opening.Add(sumDebit).Sub(sumCredit), nil
	case domain.CreditNormal:
		return opening.Sub(sumDebit).Add(sumCredit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown typical balance %q", typical)
	}
}

// SignedLineEffect returns the effect one journal line has on an account's
// balance under the account's typical-balance convention.
func SignedLineEffect(typical domain.TypicalBalance, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch typical {
	case domain.DebitNormal:
		return debit.Sub(credit), nil
	case domain.CreditNormal:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown typical balance %q", typical)
	}
}

// SumEntryTotals computes the debit and credit totals across a set of lines.
func SumEntryTotals(lines []domain.JournalLine) (sumDebit, sumCredit decimal.Decimal) {
	sumDebit = decimal.Zero
	sumCredit = decimal.Zero
	for _, line := range lines {
		sumDebit = sumDebit.Add(line.Debit)
		sumCredit = sumCredit.Add(line.Credit)
	}
	return sumDebit, sumCredit
}
