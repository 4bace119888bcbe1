package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.LedgerSvcFacade
	companyID       string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewLedgerService(suite.mockAccountRepo, suite.mockJournalRepo)
	suite.companyID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) debitNormalAccount(opening int64) *domain.Account {
	return &domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      suite.companyID,
		Code:           "1010",
		Name:           "Cash",
		AccountType:    domain.Asset,
		TypicalBalance: domain.DebitNormal,
		OpeningBalance: decimal.NewFromInt(opening),
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCalculateAccountBalance_DebitNormal() {
	ctx := context.Background()
	account := suite.debitNormalAccount(100)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("SumPostedByAccount", ctx, suite.companyID, account.AccountID).
		Return(decimal.NewFromInt(50), decimal.NewFromInt(30), nil).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, suite.companyID, account.AccountID)

	suite.Require().NoError(err)
	// opening 100 + debits 50 - credits 30
	suite.True(balance.Equal(decimal.NewFromInt(120)), "got %s", balance.String())
}

func (suite *LedgerServiceTestSuite) TestCalculateAccountBalance_CreditNormal() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      suite.companyID,
		Code:           "2010",
		AccountType:    domain.Liability,
		TypicalBalance: domain.CreditNormal,
		OpeningBalance: decimal.NewFromInt(100),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("SumPostedByAccount", ctx, suite.companyID, account.AccountID).
		Return(decimal.NewFromInt(50), decimal.NewFromInt(30), nil).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, suite.companyID, account.AccountID)

	suite.Require().NoError(err)
	// opening 100 - debits 50 + credits 30
	suite.True(balance.Equal(decimal.NewFromInt(80)), "got %s", balance.String())
}

func (suite *LedgerServiceTestSuite) TestCalculateAccountBalance_UnknownAccountYieldsZero() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, suite.companyID, accountID)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SumPostedByAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetLedgerReport_RunningBalances() {
	ctx := context.Background()
	account := suite.debitNormalAccount(0)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	lines := []domain.LedgerLine{
		{
			JournalLine: domain.JournalLine{LineID: uuid.NewString(), AccountID: account.AccountID, Debit: decimal.NewFromInt(200)},
			JournalDate: start,
		},
		{
			JournalLine: domain.JournalLine{LineID: uuid.NewString(), AccountID: account.AccountID, Credit: decimal.NewFromInt(50)},
			JournalDate: start.AddDate(0, 0, 10),
		},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, account.AccountID).Return(account, nil).Once()
	// Postings before the range establish the report's opening balance.
	suite.mockJournalRepo.On("SumPostedByAccountBefore", ctx, suite.companyID, account.AccountID, start).
		Return(decimal.NewFromInt(100), decimal.Zero, nil).Once()
	suite.mockJournalRepo.On("FindPostedLinesByAccountDateRange", ctx, suite.companyID, account.AccountID, start, end).
		Return(lines, nil).Once()

	report, err := suite.service.GetLedgerReport(ctx, suite.companyID, account.AccountID, start, end)

	suite.Require().NoError(err)
	suite.True(report.OpeningBalance.Equal(decimal.NewFromInt(100)))
	suite.Require().Len(report.Lines, 2)
	suite.True(report.Lines[0].RunningBalance.Equal(decimal.NewFromInt(300)), "got %s", report.Lines[0].RunningBalance.String())
	suite.True(report.Lines[1].RunningBalance.Equal(decimal.NewFromInt(250)), "got %s", report.Lines[1].RunningBalance.String())
	suite.True(report.ClosingBalance.Equal(decimal.NewFromInt(250)))
}

func (suite *LedgerServiceTestSuite) TestGetLedgerReport_EmptyRangeKeepsOpening() {
	ctx := context.Background()
	account := suite.debitNormalAccount(75)
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("SumPostedByAccountBefore", ctx, suite.companyID, account.AccountID, start).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockJournalRepo.On("FindPostedLinesByAccountDateRange", ctx, suite.companyID, account.AccountID, start, end).
		Return([]domain.LedgerLine{}, nil).Once()

	report, err := suite.service.GetLedgerReport(ctx, suite.companyID, account.AccountID, start, end)

	suite.Require().NoError(err)
	suite.Empty(report.Lines)
	suite.True(report.OpeningBalance.Equal(decimal.NewFromInt(75)))
	suite.True(report.ClosingBalance.Equal(report.OpeningBalance))
}

func (suite *LedgerServiceTestSuite) TestGetLedgerReport_InvalidRange() {
	ctx := context.Background()
	start := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.GetLedgerReport(ctx, suite.companyID, uuid.NewString(), start, end)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidDateRange)
}

func (suite *LedgerServiceTestSuite) TestGetLedgerReport_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetLedgerReport(ctx, suite.companyID, accountID, start, end)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

// --- Run Test Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
