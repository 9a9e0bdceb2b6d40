package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_statements/internal/core/ports/services"
	"github.com/SscSPs/ledger_statements/internal/dto"
	"github.com/SscSPs/ledger_statements/internal/handlers"
	"github.com/SscSPs/ledger_statements/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, req domain.ScopeRequest) (*domain.TrialBalance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, req domain.ScopeRequest) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, req domain.ScopeRequest) (*domain.ProfitAndLoss, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLoss), args.Error(1)
}

func (m *MockReportingService) CashFlow(ctx context.Context, req domain.ScopeRequest) (*domain.CashFlowStatement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowStatement), args.Error(1)
}

func (m *MockReportingService) GeneralLedger(ctx context.Context, req domain.ScopeRequest, accountCode string) (*domain.SubsidiaryLedger, error) {
	args := m.Called(ctx, req, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubsidiaryLedger), args.Error(1)
}

func (m *MockReportingService) CustomerLedger(ctx context.Context, req domain.ScopeRequest, customerID string) (*domain.SubsidiaryLedger, error) {
	args := m.Called(ctx, req, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubsidiaryLedger), args.Error(1)
}

func (m *MockReportingService) VendorLedger(ctx context.Context, req domain.ScopeRequest, vendorID string) (*domain.SubsidiaryLedger, error) {
	args := m.Called(ctx, req, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubsidiaryLedger), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportingService
	jwtSecret   string
	userID      string
	companyID   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ReportingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "statements-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.companyID = uuid.NewString()

	// Use the actual AuthMiddleware
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockReportingService)
	company := suite.router.Group("/api/v1/companies/:company_id")
	handlers.RegisterReportingRoutes(company, suite.mockService)
}

func (suite *ReportingHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	url := fmt.Sprintf("/api/v1/companies/%s/reports/%s", suite.companyID, path)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) scopeRequest(from, to string, tags ...string) domain.ScopeRequest {
	req := domain.ScopeRequest{UserID: suite.userID, CompanyID: suite.companyID, ScopeTags: tags}
	if from != "" {
		req.From, _ = time.Parse(time.DateOnly, from)
	}
	req.To, _ = time.Parse(time.DateOnly, to)
	return req
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestTrialBalance_Success() {
	report := &domain.TrialBalance{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Rows: []domain.TrialBalanceRow{
			{AccountCode: "1000", AccountName: "Cash", AccountType: domain.Asset, Debit: decimal.NewFromInt(1000), Credit: decimal.Zero, Balance: decimal.NewFromInt(1000)},
			{AccountCode: "4000", AccountName: "Sales", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(1000)},
		},
		TotalDebit:  decimal.NewFromInt(1000),
		TotalCredit: decimal.NewFromInt(1000),
		Balanced:    true,
	}
	suite.mockService.On("TrialBalance", mock.Anything, suite.scopeRequest("2024-01-01", "2024-01-31", "north", "south")).
		Return(report, nil).Once()

	w := suite.get("trial-balance?fromDate=2024-01-01&toDate=2024-01-31&scope=north,south")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-01-01", body.FromDate)
	suite.Len(body.Rows, 2)
	suite.Equal("1000.00", body.Rows[0].Debit)
	suite.Equal("0.00", body.Totals.Difference)
	suite.True(body.Totals.Balanced)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestBalanceSheet_DefaultsAsOfToToday() {
	suite.mockService.On("BalanceSheet", mock.Anything, mock.MatchedBy(func(req domain.ScopeRequest) bool {
		today := time.Now().UTC()
		return req.From.IsZero() && req.To.Year() == today.Year() && req.To.YearDay() == today.YearDay()
	})).Return(&domain.BalanceSheet{}, nil).Once()

	w := suite.get("balance-sheet")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestProfitAndLoss_FromDefaultsToMonthStart() {
	suite.mockService.On("ProfitAndLoss", mock.Anything, suite.scopeRequest("2024-02-01", "2024-02-20")).
		Return(&domain.ProfitAndLoss{NetProfit: decimal.RequireFromString("12.5")}, nil).Once()

	w := suite.get("profit-and-loss?toDate=2024-02-20")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ProfitAndLossResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("12.50", body.Summary.NetProfit)
}

func (suite *ReportingHandlerTestSuite) TestCashFlow_ReportsUnclassified() {
	suite.mockService.On("CashFlow", mock.Anything, suite.scopeRequest("2024-01-01", "2024-01-31")).
		Return(&domain.CashFlowStatement{
			NetIncome:    decimal.NewFromInt(500),
			Unclassified: decimal.RequireFromString("340"),
			Adjustments:  []domain.CashFlowAdjustment{{Label: "Change in trade receivables", Codes: []string{"1200"}, Delta: decimal.NewFromInt(200), Effect: decimal.NewFromInt(-200)}},
		}, nil).Once()

	w := suite.get("cash-flow?fromDate=2024-01-01&toDate=2024-01-31")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CashFlowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("340.00", body.Unclassified)
	suite.False(body.Reconciled)
	suite.Require().Len(body.Adjustments, 1)
	suite.Equal("-200.00", body.Adjustments[0].Effect)
}

func (suite *ReportingHandlerTestSuite) TestLedgers_RouteToTheRightService() {
	req := suite.scopeRequest("2024-01-01", "2024-01-31")
	suite.mockService.On("GeneralLedger", mock.Anything, req, "1200").
		Return(&domain.SubsidiaryLedger{Kind: domain.GeneralLedger, AccountCode: "1200"}, nil).Once()
	suite.mockService.On("CustomerLedger", mock.Anything, req, "cust-1").
		Return(&domain.SubsidiaryLedger{Kind: domain.CustomerLedger, Party: &domain.PartyRef{Type: domain.PartyCustomer, ID: "cust-1"}}, nil).Once()
	suite.mockService.On("VendorLedger", mock.Anything, req, "vend-1").
		Return(&domain.SubsidiaryLedger{Kind: domain.VendorLedger, Party: &domain.PartyRef{Type: domain.PartyVendor, ID: "vend-1"}}, nil).Once()

	for path, kind := range map[string]string{
		"general-ledger/1200?fromDate=2024-01-01&toDate=2024-01-31":    "GENERAL",
		"customer-ledger/cust-1?fromDate=2024-01-01&toDate=2024-01-31": "CUSTOMER",
		"vendor-ledger/vend-1?fromDate=2024-01-01&toDate=2024-01-31":   "VENDOR",
	} {
		w := suite.get(path)
		suite.Equal(http.StatusOK, w.Code, path)
		var body dto.LedgerResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		suite.Equal(kind, body.Kind, path)
		suite.NotNil(body.Rows, path)
	}
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGeneralLedger_InvalidAccountCode() {
	w := suite.get("general-ledger/$$$")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GeneralLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestInvalidDate() {
	w := suite.get("trial-balance?fromDate=31-01-2024")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestServiceErrorsMapToStatus() {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: start date after end date", apperrors.ErrValidation), http.StatusBadRequest},
		{apperrors.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: membership", apperrors.ErrNotFound), http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.mockService.On("ProfitAndLoss", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

		w := suite.get("profit-and-loss?fromDate=2024-01-01&toDate=2024-01-31")

		suite.Equal(tc.status, w.Code, tc.err.Error())
		if tc.status == http.StatusInternalServerError {
			suite.NotContains(w.Body.String(), "connection refused")
		}
	}
}

func (suite *ReportingHandlerTestSuite) TestMissingToken() {
	url := fmt.Sprintf("/api/v1/companies/%s/reports/trial-balance", suite.companyID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
