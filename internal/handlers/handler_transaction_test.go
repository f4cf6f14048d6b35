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

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jkim-dev/budget_tracker_app/internal/apperrors"
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
	"github.com/jkim-dev/budget_tracker_app/internal/handlers"
	"github.com/jkim-dev/budget_tracker_app/internal/middleware"
	"github.com/jkim-dev/budget_tracker_app/internal/utils"
)

// --- Mock TransactionService ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, userID, params)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID string, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID string, transactionID int64) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bta-test",
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

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	utils.RegisterCustomValidators()

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	h := handlers.NewTransactionHandler(suite.mockService)
	transactions := v1.Group("/transactions")
	transactions.POST("", h.CreateTransaction)
	transactions.GET("", h.ListTransactions)
	transactions.GET("/:id", h.GetTransaction)
	transactions.PATCH("/:id", h.UpdateTransaction)
	transactions.DELETE("/:id", h.DeleteTransaction)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url, userID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_BindsQueryParams() {
	userID := uuid.NewString()

	suite.mockService.On("ListTransactions",
		mock.Anything,
		userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.TransactionType != nil && *p.TransactionType == "EXPENSE" &&
				p.StartDate != nil && p.StartDate.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) &&
				p.MinAmount != nil && *p.MinAmount == 500 &&
				p.SortBy == "amount" && p.SortOrder == "asc" &&
				p.Skip == 20 && p.Limit == 10
		}),
	).Return([]domain.Transaction{}, int64(0), nil).Once()

	url := "/api/v1/transactions?transaction_type=EXPENSE&start_date=2025-06-01&min_amount=500&sort_by=amount&sort_order=asc&skip=20&limit=10"
	w := suite.doRequest(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultsApplied() {
	userID := uuid.NewString()

	suite.mockService.On("ListTransactions",
		mock.Anything,
		userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.SortBy == "date" && p.SortOrder == "desc" && p.Skip == 0 && p.Limit == 100
		}),
	).Return([]domain.Transaction{}, int64(0), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidTypeRejected() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?transaction_type=TRANSFER", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ReturnsItemsAndTotal() {
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{TransactionID: 1, UserID: userID, CategoryID: 3, Amount: 2500, TransactionType: domain.Expense, TransactionDate: time.Now().UTC()},
	}
	suite.mockService.On("ListTransactions", mock.Anything, userID, mock.Anything).Return(txns, int64(12), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions", userID, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Items, 1)
	suite.Equal(int64(12), resp.Total)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	created := &domain.Transaction{
		TransactionID:   42,
		UserID:          userID,
		CategoryID:      3,
		Amount:          2500,
		TransactionType: domain.Expense,
		TransactionDate: time.Now().UTC(),
	}

	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Amount == 2500 && req.TransactionType == "EXPENSE" && req.CategoryID == 3
	})).Return(created, nil).Once()

	body := []byte(`{"amount":2500,"transactionType":"EXPENSE","categoryID":3}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.TransactionID)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	userID := uuid.NewString()

	body := []byte(`{"amount":-100,"transactionType":"EXPENSE","categoryID":3}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidTypeRejected() {
	userID := uuid.NewString()

	body := []byte(`{"amount":100,"transactionType":"LOAN","categoryID":3}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Forbidden() {
	userID := uuid.NewString()
	suite.mockService.On("GetTransaction", mock.Anything, userID, int64(7)).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/7", userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	userID := uuid.NewString()
	suite.mockService.On("GetTransaction", mock.Anything, userID, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/99", userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	userID := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, userID, int64(7)).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/7", userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_AppErrorCodeHonored() {
	userID := uuid.NewString()
	suite.mockService.On("GetTransaction", mock.Anything, userID, int64(7)).
		Return(nil, apperrors.NewAppError(http.StatusServiceUnavailable, "storage unavailable", nil)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/7", userID, nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("storage unavailable", resp.Error)
}

func (suite *TransactionHandlerTestSuite) TestExpiredToken_Unauthorized() {
	claims := jwt.RegisteredClaims{
		Issuer:    "bta-test",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestMissingToken_Unauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/transactions", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_Success() {
	userID := uuid.NewString()
	updated := &domain.Transaction{TransactionID: 7, UserID: userID, Amount: 1500, TransactionType: domain.Expense}

	suite.mockService.On("UpdateTransaction", mock.Anything, userID, int64(7), mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.Amount != nil && *req.Amount == 1500 && req.TransactionType == nil
	})).Return(updated, nil).Once()

	body := []byte(`{"amount":1500}`)
	w := suite.doRequest(http.MethodPatch, "/api/v1/transactions/7", userID, body)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1500), resp.Amount)
}

func (suite *TransactionHandlerTestSuite) TestInvalidIDParam() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/transactions/%s", "not-a-number"), userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
