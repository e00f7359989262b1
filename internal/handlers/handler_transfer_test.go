package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openbanklab/bankapi/internal/apperrors"
	"github.com/openbanklab/bankapi/internal/core/domain"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
	"github.com/openbanklab/bankapi/internal/dto"
	"github.com/openbanklab/bankapi/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransferHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockLedgerService  *MockLedgerService
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)

	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Ledger:  suite.mockLedgerService,
	})
}

func (suite *TransferHandlerTestSuite) performJSON(method, url string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(method, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransferHandlerTestSuite) TestTransfer_Success() {
	from, to := "a1b2c3d4e5f60708090a", "0a0908070605f4e3d2c1"
	amount := decimal.NewFromInt(40)
	result := &domain.TransferResult{
		TransactionID: uuid.NewString(),
		Balances: map[string]decimal.Decimal{
			from: decimal.NewFromInt(60),
			to:   decimal.NewFromInt(40),
		},
	}
	suite.mockLedgerService.On("Transfer", mock.Anything, from, to, mock.MatchedBy(amount.Equal)).
		Return(result, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/transfer", gin.H{"from": from, "to": to, "amount": 40})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransferResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(result.TransactionID, body.ID)
	suite.True(decimal.NewFromInt(60).Equal(body.Balances[from]))
	suite.True(decimal.NewFromInt(40).Equal(body.Balances[to]))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestTransfer_MissingFields() {
	w := suite.performJSON(http.MethodPost, "/api/transfer", gin.H{"from": "a1", "amount": 40})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestTransfer_SenderNotFound() {
	suite.mockLedgerService.On("Transfer", mock.Anything, "a1", "b2", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodPost, "/api/transfer", gin.H{"from": "a1", "to": "b2", "amount": 40})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransferHandlerTestSuite) TestTransfer_InsufficientFunds() {
	suite.mockLedgerService.On("Transfer", mock.Anything, "a1", "b2", mock.Anything).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.performJSON(http.MethodPost, "/api/transfer", gin.H{"from": "a1", "to": "b2", "amount": 4000})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *TransferHandlerTestSuite) TestDivert_Success() {
	transactionID := uuid.NewString()
	result := &domain.TransferResult{
		TransactionID: uuid.NewString(),
		Balances: map[string]decimal.Decimal{
			"a1": decimal.NewFromInt(100),
			"b2": decimal.Zero,
		},
	}
	suite.mockLedgerService.On("Divert", mock.Anything, transactionID).Return(result, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/divert", gin.H{"id": transactionID})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransferResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(result.TransactionID, body.ID)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestDivert_NonTransferRejected() {
	transactionID := uuid.NewString()
	suite.mockLedgerService.On("Divert", mock.Anything, transactionID).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.performJSON(http.MethodPost, "/api/divert", gin.H{"id": transactionID})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransferHandlerTestSuite) TestDivert_TransactionNotFound() {
	transactionID := uuid.NewString()
	suite.mockLedgerService.On("Divert", mock.Anything, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodPost, "/api/divert", gin.H{"id": transactionID})

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestTransferHandler(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
