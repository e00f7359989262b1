package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/openbanklab/bankapi/internal/apperrors"
	"github.com/openbanklab/bankapi/internal/core/domain"
	portsrepo "github.com/openbanklab/bankapi/internal/core/ports/repositories"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
	"github.com/openbanklab/bankapi/internal/core/services"
	"github.com/openbanklab/bankapi/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// --- Mock BalanceCalculator ---
type MockBalanceCalculator struct {
	mock.Mock
}

var _ portssvc.BalanceCalculatorSvc = (*MockBalanceCalculator)(nil)

func (m *MockBalanceCalculator) ComputeBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	mockCalculator  *MockBalanceCalculator
	service         portssvc.AccountSvcFacade
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockCalculator = new(MockBalanceCalculator)
	s.service = services.NewAccountService(s.mockAccountRepo, s.mockTxnRepo, s.mockCalculator)
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Ada", Surname: "Lovelace"}

	s.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return len(account.AccountID) == 20 &&
			account.Name == "Ada" &&
			account.Surname == "Lovelace" &&
			!account.CreatedAt.IsZero()
	})).Return(nil).Once()

	account, err := s.service.CreateAccount(ctx, req)

	s.NoError(err)
	s.NotNil(account)
	s.Len(account.AccountID, 20)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateID() {
	ctx := context.Background()
	s.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	account, err := s.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Ada", Surname: "Lovelace"})

	s.Nil(account)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestGetAccountStatement_Success() {
	ctx := context.Background()
	accountID := "a1b2c3d4e5f60708090a"
	account := domain.Account{AccountID: accountID, Name: "Ada", Surname: "Lovelace"}
	history := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Deposit, AccountTo: &accountID, Amount: decimal.NewFromInt(100)},
	}

	s.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&account, nil).Once()
	s.mockCalculator.On("ComputeBalance", ctx, accountID).Return(decimal.NewFromInt(100), nil).Once()
	s.mockTxnRepo.On("ListTransactionsByAccount", ctx, accountID, domain.DetailSummary).Return(history, nil).Once()

	statement, err := s.service.GetAccountStatement(ctx, accountID, domain.DetailSummary)

	s.NoError(err)
	s.NotNil(statement)
	s.Equal(account, statement.Account)
	s.True(decimal.NewFromInt(100).Equal(statement.Balance))
	s.Len(statement.Transactions, 1)
	s.mockCalculator.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestGetAccountStatement_NotFound() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	statement, err := s.service.GetAccountStatement(ctx, "missing", domain.DetailFull)

	s.Nil(statement)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockCalculator.AssertNotCalled(s.T(), "ComputeBalance", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "a1", Name: "Ada", Surname: "Lovelace"},
		{AccountID: "b2", Name: "Alan", Surname: "Turing"},
	}
	s.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	got, err := s.service.ListAccounts(ctx)

	s.NoError(err)
	s.Equal(accounts, got)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	accountID := "a1b2c3d4e5f60708090a"
	existing := domain.Account{AccountID: accountID, Name: "Ada", Surname: "Lovelace", CreatedAt: time.Now().UTC()}

	s.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&existing, nil).Once()
	s.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.AccountID == accountID && account.Name == "Grace" && account.Surname == "Hopper"
	})).Return(nil).Once()

	err := s.service.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{Name: "Grace", Surname: "Hopper"})

	s.NoError(err)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.UpdateAccount(ctx, "missing", dto.UpdateAccountRequest{Name: "Grace", Surname: "Hopper"})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockAccountRepo.AssertNotCalled(s.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestPatchAccount_NameOnly() {
	ctx := context.Background()
	accountID := "a1b2c3d4e5f60708090a"
	existing := domain.Account{AccountID: accountID, Name: "Ada", Surname: "Lovelace"}
	name := "Grace"

	s.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&existing, nil).Once()
	s.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.Name == "Grace" && account.Surname == "Lovelace"
	})).Return(nil).Once()

	err := s.service.PatchAccount(ctx, accountID, dto.PatchAccountRequest{Name: &name})

	s.NoError(err)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestPatchAccount_BothFieldsRejected() {
	ctx := context.Background()
	name, surname := "Grace", "Hopper"

	err := s.service.PatchAccount(ctx, "a1", dto.PatchAccountRequest{Name: &name, Surname: &surname})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestPatchAccount_NoFieldsRejected() {
	ctx := context.Background()

	err := s.service.PatchAccount(ctx, "a1", dto.PatchAccountRequest{})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	s.mockAccountRepo.On("DeleteAccount", ctx, "a1").Return(nil).Once()

	err := s.service.DeleteAccount(ctx, "a1")

	s.NoError(err)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()
	s.mockAccountRepo.On("DeleteAccount", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := s.service.DeleteAccount(ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
