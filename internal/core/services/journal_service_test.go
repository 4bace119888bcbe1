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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, header domain.JournalHeader, lines []domain.JournalLine) error {
	args := m.Called(ctx, header, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, companyID string, journalID string) (*domain.JournalHeader, error) {
	args := m.Called(ctx, companyID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalHeader), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalHeader, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalHeader), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SumPostedByAccount(ctx context.Context, companyID string, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return decimal.Zero, decimal.Zero, args.Error(2)
	}
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockJournalRepository) SumPostedByAccountBefore(ctx context.Context, companyID string, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, companyID, accountID, before)
	if args.Get(0) == nil {
		return decimal.Zero, decimal.Zero, args.Error(2)
	}
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockJournalRepository) ListBatches(ctx context.Context, companyID string) ([]domain.BatchSummary, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchSummary), args.Error(1)
}

func (m *MockJournalRepository) PostBatch(ctx context.Context, companyID string, batchID string, userID string) (int64, error) {
	args := m.Called(ctx, companyID, batchID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) FindPostedLinesByAccountDateRange(ctx context.Context, companyID string, accountID string, startDate, endDate time.Time) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, companyID, accountID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

// --- Mock AccountService (as used by JournalService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, companyID string, accountID string, requestingUserID string) error {
	args := m.Called(ctx, companyID, accountID, requestingUserID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	loanAccount     domain.Account
	companyID       string
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:         uuid.NewString(),
		CompanyID:         suite.companyID,
		Code:              "1010",
		Name:              "Cash",
		AccountType:       domain.Asset,
		TypicalBalance:    domain.DebitNormal,
		AllowAccountEntry: true,
	}
	suite.loanAccount = domain.Account{
		AccountID:         uuid.NewString(),
		CompanyID:         suite.companyID,
		Code:              "2010",
		Name:              "Bank Loan",
		AccountType:       domain.Liability,
		TypicalBalance:    domain.CreditNormal,
		AllowAccountEntry: true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest(amount int64) dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		Date:      "2025-03-01",
		Reference: "JE-100",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(amount)},
			{AccountID: suite.loanAccount.AccountID, Credit: decimal.NewFromInt(amount)},
		},
	}
}

func (suite *JournalServiceTestSuite) accountsMap() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
		suite.loanAccount.AccountID: suite.loanAccount,
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	req := suite.balancedRequest(100)

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, []string{suite.cashAccount.AccountID, suite.loanAccount.AccountID}).Return(suite.accountsMap(), nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.AnythingOfType("domain.JournalHeader"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.JournalID)
	suite.Equal(suite.companyID, created.CompanyID)
	suite.Equal(domain.Posted, created.Status)
	suite.True(created.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.True(created.TotalCredit.Equal(decimal.NewFromInt(100)))
	suite.Equal(suite.userID, created.CreatedBy)
	suite.Len(created.Lines, 2)
	suite.Equal(1, created.Lines[0].LineNo)
	suite.Equal(2, created.Lines[1].LineNo)

	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_BatchStaysDraft() {
	ctx := context.Background()
	req := suite.balancedRequest(50)
	req.BatchID = "MARCH-CLOSE"

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(suite.accountsMap(), nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.MatchedBy(func(h domain.JournalHeader) bool {
		return h.Status == domain.Draft && h.BatchID == "MARCH-CLOSE"
	}), mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, created.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:      "2025-03-01",
		Reference: "JE-101",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.loanAccount.AccountID, Credit: decimal.NewFromInt(99)},
		},
	}

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnbalancedEntry)
	// Both totals are reported so the caller can see the discrepancy.
	suite.Contains(err.Error(), "100")
	suite.Contains(err.Error(), "99")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_ZeroTotals() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:      "2025-03-01",
		Reference: "JE-102",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID},
			{AccountID: suite.loanAccount.AccountID},
		},
	}

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEmptyEntry)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:      "2025-03-01",
		Reference: "JE-103",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(-100)},
			{AccountID: suite.loanAccount.AccountID, Credit: decimal.NewFromInt(-100)},
		},
	}

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InvalidDate() {
	ctx := context.Background()
	req := suite.balancedRequest(100)
	req.Date = "01/03/2025"

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_AccountNotFound() {
	ctx := context.Background()
	req := suite.balancedRequest(100)

	// Only the cash account resolves; the loan account is missing.
	partial := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
	}
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(partial, nil).Once()

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InactiveAccount() {
	ctx := context.Background()
	req := suite.balancedRequest(100)

	inactive := suite.loanAccount
	inactive.IsInactive = true
	accounts := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
		inactive.AccountID:          inactive,
	}
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(accounts, nil).Once()

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SummaryAccountRejected() {
	ctx := context.Background()
	req := suite.balancedRequest(100)

	noEntry := suite.cashAccount
	noEntry.AllowAccountEntry = false
	accounts := map[string]domain.Account{
		noEntry.AccountID:           noEntry,
		suite.loanAccount.AccountID: suite.loanAccount,
	}
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(accounts, nil).Once()

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_CompanyMismatch() {
	ctx := context.Background()
	req := suite.balancedRequest(100)
	req.CompanyID = uuid.NewString()

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SaveError() {
	ctx := context.Background()
	req := suite.balancedRequest(100)
	repoErr := assert.AnError

	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.Anything).Return(suite.accountsMap(), nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(repoErr).Once()

	_, err := suite.service.CreateJournal(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Contains(err.Error(), repoErr.Error())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetJournalByID_Success() {
	ctx := context.Background()
	journalID := uuid.NewString()
	header := &domain.JournalHeader{JournalID: journalID, CompanyID: suite.companyID, Status: domain.Posted}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), JournalID: journalID, LineNo: 1},
		{LineID: uuid.NewString(), JournalID: journalID, LineNo: 2},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.companyID, journalID).Return(header, nil).Once()
	suite.mockJournalRepo.On("FindLinesByJournalID", ctx, journalID).Return(lines, nil).Once()

	found, err := suite.service.GetJournalByID(ctx, suite.companyID, journalID)

	suite.Require().NoError(err)
	suite.Len(found.Lines, 2)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetJournalByID_OtherCompanyLooksMissing() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, suite.companyID, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetJournalByID(ctx, suite.companyID, journalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListJournals_ClampsLimit() {
	ctx := context.Background()

	suite.mockJournalRepo.On("ListJournals", ctx, suite.companyID, 20, (*string)(nil)).Return([]domain.JournalHeader{}, nil, nil).Once()

	_, _, err := suite.service.ListJournals(ctx, suite.companyID, dto.ListJournalsParams{Limit: 5000})

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostBatch_Success() {
	ctx := context.Background()

	// The posting user is forwarded so the repository stamps the audit
	// columns with the poster, not the creator.
	suite.mockJournalRepo.On("PostBatch", ctx, suite.companyID, "MARCH-CLOSE", suite.userID).Return(int64(3), nil).Once()

	posted, err := suite.service.PostBatch(ctx, suite.companyID, "MARCH-CLOSE", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), posted)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostBatch_NothingToPost() {
	ctx := context.Background()

	// Zero rows covers both an unknown batch and one already posted.
	suite.mockJournalRepo.On("PostBatch", ctx, suite.companyID, "GONE", suite.userID).Return(int64(0), nil).Once()

	_, err := suite.service.PostBatch(ctx, suite.companyID, "GONE", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBatchNotFound)
}

// --- Run Test Suite ---
func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
