package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

// Ensure MockTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*MockTransferRepository)(nil)

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.FundTransfer, header domain.JournalHeader, lines []domain.JournalLine) error {
	args := m.Called(ctx, transfer, header, lines)
	return args.Error(0)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, companyID string) ([]domain.FundTransfer, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundTransfer), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) CalculateAccountBalance(ctx context.Context, companyID string, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) GetLedgerReport(ctx context.Context, companyID string, accountID string, startDate, endDate time.Time) (*domain.LedgerReport, error) {
	args := m.Called(ctx, companyID, accountID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerReport), args.Error(1)
}

// --- Test Suite Setup ---
type TransferServiceTestSuite struct {
	suite.Suite
	mockTransferRepo *MockTransferRepository
	mockAccountSvc   *MockAccountService
	mockLedgerSvc    *MockLedgerService
	service          portssvc.TransferSvcFacade
	sourceAccount    domain.Account
	targetAccount    domain.Account
	companyID        string
	userID           string
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.service = services.NewTransferService(suite.mockTransferRepo, suite.mockAccountSvc, suite.mockLedgerSvc)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.sourceAccount = domain.Account{
		AccountID:         uuid.NewString(),
		CompanyID:         suite.companyID,
		Code:              "1010",
		Name:              "Operating Account",
		AccountType:       domain.Asset,
		TypicalBalance:    domain.DebitNormal,
		AllowAccountEntry: true,
	}
	suite.targetAccount = domain.Account{
		AccountID:         uuid.NewString(),
		CompanyID:         suite.companyID,
		Code:              "1020",
		Name:              "Payroll Account",
		AccountType:       domain.Asset,
		TypicalBalance:    domain.DebitNormal,
		AllowAccountEntry: true,
	}
}

func (suite *TransferServiceTestSuite) transferRequest(amount int64) dto.CreateFundTransferRequest {
	return dto.CreateFundTransferRequest{
		FromAccountID: suite.sourceAccount.AccountID,
		ToAccountID:   suite.targetAccount.AccountID,
		Amount:        decimal.NewFromInt(amount),
		Date:          "2025-03-15",
		Reference:     "0042",
	}
}

func (suite *TransferServiceTestSuite) accountsMap() map[string]domain.Account {
	return map[string]domain.Account{
		suite.sourceAccount.AccountID: suite.sourceAccount,
		suite.targetAccount.AccountID: suite.targetAccount,
	}
}

// --- Test Cases ---

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_Success() {
	ctx := context.Background()
	req := suite.transferRequest(500)

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, []string{req.FromAccountID, req.ToAccountID}).Return(suite.accountsMap(), nil).Once()
	suite.mockLedgerSvc.On("CalculateAccountBalance", ctx, suite.companyID, req.FromAccountID).Return(decimal.NewFromInt(1000), nil).Once()

	var savedHeader domain.JournalHeader
	var savedLines []domain.JournalLine
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.FundTransfer"), mock.AnythingOfType("domain.JournalHeader"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			savedHeader = args.Get(2).(domain.JournalHeader)
			savedLines = args.Get(3).([]domain.JournalLine)
		}).Return(nil).Once()

	transfer, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
	suite.Equal(services.TransferCompleted, transfer.Status)
	suite.Equal(savedHeader.JournalID, transfer.JournalID)

	// The generated journal is balanced: debit into the target, credit out
	// of the source, posted immediately under an FT- reference.
	suite.Equal("FT-0042", savedHeader.Reference)
	suite.Equal(domain.Posted, savedHeader.Status)
	suite.True(savedHeader.TotalDebit.Equal(req.Amount))
	suite.True(savedHeader.TotalCredit.Equal(req.Amount))
	suite.Require().Len(savedLines, 2)
	suite.Equal(req.ToAccountID, savedLines[0].AccountID)
	suite.True(savedLines[0].Debit.Equal(req.Amount))
	suite.Contains(savedLines[0].Description, suite.sourceAccount.Name)
	suite.Equal(req.FromAccountID, savedLines[1].AccountID)
	suite.True(savedLines[1].Credit.Equal(req.Amount))
	suite.Contains(savedLines[1].Description, suite.targetAccount.Name)

	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_SameAccount() {
	ctx := context.Background()
	req := suite.transferRequest(500)
	req.ToAccountID = req.FromAccountID

	accounts := map[string]domain.Account{
		suite.sourceAccount.AccountID: suite.sourceAccount,
	}
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, []string{req.FromAccountID, req.ToAccountID}).Return(accounts, nil).Once()

	_, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSameAccount)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_SameUnknownAccount() {
	ctx := context.Background()
	req := suite.transferRequest(500)
	req.FromAccountID = uuid.NewString()
	req.ToAccountID = req.FromAccountID

	// Resolution runs first, so naming the same nonexistent account twice
	// reports it as missing rather than as a same-account transfer.
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(map[string]domain.Account{}, nil).Once()

	_, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.transferRequest(0)

	_, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_AccountNotFound() {
	ctx := context.Background()
	req := suite.transferRequest(500)

	partial := map[string]domain.Account{
		suite.sourceAccount.AccountID: suite.sourceAccount,
	}
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(partial, nil).Once()

	_, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_InsufficientFunds() {
	ctx := context.Background()
	req := suite.transferRequest(500)

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(suite.accountsMap(), nil).Once()
	suite.mockLedgerSvc.On("CalculateAccountBalance", ctx, suite.companyID, req.FromAccountID).Return(decimal.NewFromInt(499), nil).Once()

	_, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	// The advisory check fails fast; nothing reaches the repository.
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_RejectedUnderLock() {
	ctx := context.Background()
	req := suite.transferRequest(500)

	// The advisory check passes but a concurrent transfer drained the account
	// before the row lock was taken; the repository reports the overdraw.
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(suite.accountsMap(), nil).Once()
	suite.mockLedgerSvc.On("CalculateAccountBalance", ctx, suite.companyID, req.FromAccountID).Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrInsufficientFunds).Once()

	_, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateFundTransfer_InactiveAccount() {
	ctx := context.Background()
	req := suite.transferRequest(500)

	inactive := suite.targetAccount
	inactive.IsInactive = true
	accounts := map[string]domain.Account{
		suite.sourceAccount.AccountID: suite.sourceAccount,
		inactive.AccountID:            inactive,
	}
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(accounts, nil).Once()

	_, err := suite.service.CreateFundTransfer(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Test Suite ---
func TestTransferService(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
