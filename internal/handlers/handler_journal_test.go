package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/core/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/handlers"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
	"github.com/finbooks-app/finbooks_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

// Ensure mock implements the interface
var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalHeader, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalHeader), args.Error(1)
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, companyID string, journalID string) (*domain.JournalHeader, error) {
	args := m.Called(ctx, companyID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalHeader), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, companyID string, params dto.ListJournalsParams) ([]domain.JournalHeader, *string, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalHeader), nextToken, args.Error(2)
}

func (m *MockJournalService) ListBatches(ctx context.Context, companyID string) ([]domain.BatchSummary, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchSummary), args.Error(1)
}

func (m *MockJournalService) PostBatch(ctx context.Context, companyID string, batchID string, requestingUserID string) (int64, error) {
	args := m.Called(ctx, companyID, batchID, requestingUserID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockJournalService *MockJournalService
	jwtSecret          string
	companyID          string
	userID             string
}

// generateTestToken creates a JWT carrying the test user and company.
func (suite *JournalHandlerTestSuite) generateTestToken() string {
	claims := middleware.AuthClaims{
		CompanyID: suite.companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "finbooks-test",
			Subject:   suite.userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockJournalService = new(MockJournalService)

	suite.router = gin.New()
	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger route registration
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Journal: suite.mockJournalService,
	})
}

func (suite *JournalHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *JournalHandlerTestSuite) TestCreateJournal_Success() {
	reqBody := dto.CreateJournalRequest{
		Date:      "2025-03-01",
		Reference: "JE-100",
		Lines: []dto.JournalLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(100)},
		},
	}
	created := &domain.JournalHeader{
		JournalID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Reference:   "JE-100",
		Status:      domain.Posted,
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.NewFromInt(100),
	}

	suite.mockJournalService.On("CreateJournal",
		mock.Anything,
		suite.companyID,
		mock.MatchedBy(func(r dto.CreateJournalRequest) bool { return r.Reference == "JE-100" && len(r.Lines) == 2 }),
		suite.userID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/journals", reqBody)

	suite.Equal(http.StatusCreated, w.Code, "body: %s", w.Body.String())
	var resp dto.JournalResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.JournalID, resp.JournalID)
	suite.Equal("POSTED", resp.Status)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateJournal_UnbalancedIsBadRequest() {
	reqBody := dto.CreateJournalRequest{
		Date:      "2025-03-01",
		Reference: "JE-101",
		Lines: []dto.JournalLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(99)},
		},
	}

	suite.mockJournalService.On("CreateJournal", mock.Anything, suite.companyID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: total debit is 100 and total credit is 99", services.ErrUnbalancedEntry)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/journals", reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "total debit")
}

func (suite *JournalHandlerTestSuite) TestGetJournal_NotFound() {
	journalID := uuid.NewString()

	suite.mockJournalService.On("GetJournalByID", mock.Anything, suite.companyID, journalID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journals/"+journalID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestPostBatch_Success() {
	suite.mockJournalService.On("PostBatch", mock.Anything, suite.companyID, "MARCH-CLOSE", suite.userID).
		Return(int64(4), nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/batches/MARCH-CLOSE/post", nil)

	suite.Equal(http.StatusOK, w.Code, "body: %s", w.Body.String())
	var resp dto.PostBatchResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("MARCH-CLOSE", resp.BatchID)
	suite.Equal(int64(4), resp.Posted)
}

func (suite *JournalHandlerTestSuite) TestPostBatch_NotFound() {
	suite.mockJournalService.On("PostBatch", mock.Anything, suite.companyID, "GONE", suite.userID).
		Return(int64(0), fmt.Errorf("%w: GONE", services.ErrBatchNotFound)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/batches/GONE/post", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestMissingTokenIsUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/journals", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
