package accounting

import (
	"testing"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveBalance(t *testing.T) {
	opening := decimal.NewFromInt(100)
	sumDebit := decimal.NewFromInt(50)
	sumCredit := decimal.NewFromInt(30)

	// DEBIT-normal accounts grow with debits
	balance, err := DeriveBalance(domain.DebitNormal, opening, sumDebit, sumCredit)
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(120)), "debit-normal balance should be 120, got %s", balance.String())

	// CREDIT-normal accounts grow with credits
	balance, err = DeriveBalance(domain.CreditNormal, opening, sumDebit, sumCredit)
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(80)), "credit-normal balance should be 80, got %s", balance.String())

	// Unknown convention is an error
	_, err = DeriveBalance(domain.TypicalBalance("SIDEWAYS"), opening, sumDebit, sumCredit)
	assert.Error(t, err)
}

func TestDeriveBalance_CanGoNegative(t *testing.T) {
	// Derivation never clamps; an overdrawn account reports a negative balance.
	balance, err := DeriveBalance(domain.DebitNormal, decimal.Zero, decimal.NewFromInt(10), decimal.NewFromInt(25))
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(-15)), "got %s", balance.String())
}

func TestSignedLineEffect(t *testing.T) {
	debit := decimal.NewFromInt(40)
	credit := decimal.NewFromInt(15)

	effect, err := SignedLineEffect(domain.DebitNormal, debit, credit)
	assert.NoError(t, err)
	assert.True(t, effect.Equal(decimal.NewFromInt(25)), "got %s", effect.String())

	effect, err = SignedLineEffect(domain.CreditNormal, debit, credit)
	assert.NoError(t, err)
	assert.True(t, effect.Equal(decimal.NewFromInt(-25)), "got %s", effect.String())

	_, err = SignedLineEffect(domain.TypicalBalance(""), debit, credit)
	assert.Error(t, err)
}

func TestSumEntryTotals(t *testing.T) {
	lines := []domain.JournalLine{
		{Debit: decimal.NewFromInt(100)},
		{Credit: decimal.NewFromInt(60)},
		{Credit: decimal.NewFromInt(40)},
	}

	sumDebit, sumCredit := SumEntryTotals(lines)
	assert.True(t, sumDebit.Equal(decimal.NewFromInt(100)))
	assert.True(t, sumCredit.Equal(decimal.NewFromInt(100)))

	sumDebit, sumCredit = SumEntryTotals(nil)
	assert.True(t, sumDebit.IsZero())
	assert.True(t, sumCredit.IsZero())
}
