package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// MockCOARepository is a mock type for the COARepositoryFacade interface
type MockCOARepository struct {
	mock.Mock
}

// Ensure MockCOARepository implements portsrepo.COARepositoryFacade
var _ portsrepo.COARepositoryFacade = (*MockCOARepository)(nil)

func (m *MockCOARepository) SaveCOA(ctx context.Context, coa domain.ChartOfAccount) error {
	args := m.Called(ctx, coa)
	return args.Error(0)
}

func (m *MockCOARepository) FindCOAByID(ctx context.Context, tenantID, coaID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID, coaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockCOARepository) FindCOAByCode(ctx context.Context, tenantID, code string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockCOARepository) ListCOA(ctx context.Context, tenantID string, includeInactive bool) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccount), args.Error(1)
}

func (m *MockCOARepository) UpdateCOA(ctx context.Context, coa domain.ChartOfAccount) error {
	args := m.Called(ctx, coa)
	return args.Error(0)
}

func (m *MockCOARepository) DeactivateCOA(ctx context.Context, tenantID, coaID, userID string, now time.Time) error {
	args := m.Called(ctx, tenantID, coaID, userID, now)
	return args.Error(0)
}

func (m *MockCOARepository) AggregateCOAFlows(ctx context.Context, tenantID, coaID, displayLabel string) (domain.COAFlows, error) {
	args := m.Called(ctx, tenantID, coaID, displayLabel)
	return args.Get(0).(domain.COAFlows), args.Error(1)
}

// MockFinancialAccountRepository is a mock type for the FinancialAccountRepositoryFacade interface
type MockFinancialAccountRepository struct {
	mock.Mock
}

// Ensure MockFinancialAccountRepository implements portsrepo.FinancialAccountRepositoryFacade
var _ portsrepo.FinancialAccountRepositoryFacade = (*MockFinancialAccountRepository)(nil)

func (m *MockFinancialAccountRepository) SaveFinancialAccount(ctx context.Context, account domain.FinancialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockFinancialAccountRepository) FindFinancialAccountByID(ctx context.Context, tenantID, accountID string) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockFinancialAccountRepository) FindFinancialAccountByName(ctx context.Context, tenantID, name string) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockFinancialAccountRepository) ListFinancialAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.FinancialAccount, error) {
	args := m.Called(ctx, tenantID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialAccount), args.Error(1)
}

func (m *MockFinancialAccountRepository) UpdateFinancialAccount(ctx context.Context, account domain.FinancialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockFinancialAccountRepository) DeactivateFinancialAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error {
	args := m.Called(ctx, tenantID, accountID, userID, now)
	return args.Error(0)
}

func (m *MockFinancialAccountRepository) AggregateAccountFlows(ctx context.Context, tenantID string) ([]domain.FinancialAccountFlow, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialAccountFlow), args.Error(1)
}

// --- Test Suite Setup ---

type COAServiceTestSuite struct {
	suite.Suite
	mockCOARepo  *MockCOARepository
	mockAcctRepo *MockFinancialAccountRepository
	service      portssvc.COASvcFacade
	tenantID     string
}

func (suite *COAServiceTestSuite) SetupTest() {
	suite.mockCOARepo = new(MockCOARepository)
	suite.mockAcctRepo = new(MockFinancialAccountRepository)
	suite.service = services.NewCOAService(suite.mockCOARepo, suite.mockAcctRepo)
	suite.tenantID = uuid.NewString()
}

// --- Test Cases ---

func (suite *COAServiceTestSuite) TestCreateCOA_AutoClassifiesFromCode() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()

	cases := []struct {
		code         string
		expectedType domain.AccountType
		expectedSide domain.NormalSide
	}{
		{"101", domain.Asset, domain.NormalDebit},
		{"201", domain.Liability, domain.NormalCredit},
		{"301", domain.Equity, domain.NormalCredit},
		{"401", domain.Income, domain.NormalCredit},
		{"501", domain.Expense, domain.NormalDebit},
		{"901", domain.Expense, domain.NormalDebit},
		{"X01", domain.Asset, domain.NormalDebit},
	}

	for _, tc := range cases {
		req := dto.CreateCOARequest{Code: tc.code, Name: "Some Account"}

		suite.mockCOARepo.On("FindCOAByCode", ctx, suite.tenantID, tc.code).Return(nil, apperrors.ErrNotFound).Once()
		suite.mockCOARepo.On("SaveCOA", ctx, mock.MatchedBy(func(c domain.ChartOfAccount) bool {
			return c.Code == tc.code && c.AccountType == tc.expectedType && c.NormalSide == tc.expectedSide
		})).Return(nil).Once()

		created, err := suite.service.CreateCOA(ctx, suite.tenantID, req, creatorUserID)

		suite.Require().NoError(err, "code %s", tc.code)
		suite.Equal(tc.expectedType, created.AccountType, "code %s", tc.code)
		suite.Equal(tc.expectedSide, created.NormalSide, "code %s", tc.code)
		suite.True(created.IsActive)
	}

	suite.mockCOARepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestCreateCOA_ExplicitTypeOverridesCode() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	explicitType := domain.Expense
	req := dto.CreateCOARequest{Code: "101", Name: "Misclassified on purpose", AccountType: &explicitType}

	suite.mockCOARepo.On("FindCOAByCode", ctx, suite.tenantID, "101").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCOARepo.On("SaveCOA", ctx, mock.MatchedBy(func(c domain.ChartOfAccount) bool {
		return c.AccountType == domain.Expense && c.NormalSide == domain.NormalDebit
	})).Return(nil).Once()

	created, err := suite.service.CreateCOA(ctx, suite.tenantID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.Expense, created.AccountType)

	suite.mockCOARepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestCreateCOA_DuplicateCode() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCOARequest{Code: "101", Name: "Cash"}
	existing := &domain.ChartOfAccount{COAID: uuid.NewString(), TenantID: suite.tenantID, Code: "101"}

	suite.mockCOARepo.On("FindCOAByCode", ctx, suite.tenantID, "101").Return(existing, nil).Once()

	created, err := suite.service.CreateCOA(ctx, suite.tenantID, req, creatorUserID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockCOARepo.AssertExpectations(suite.T())
	suite.mockCOARepo.AssertNotCalled(suite.T(), "SaveCOA", mock.Anything, mock.Anything)
}

func (suite *COAServiceTestSuite) TestUpdateCOA_CodeAndTypeImmutable() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	coaID := uuid.NewString()
	original := &domain.ChartOfAccount{
		COAID:       coaID,
		TenantID:    suite.tenantID,
		Code:        "401",
		Name:        "Rental Sales",
		AccountType: domain.Income,
		NormalSide:  domain.NormalCredit,
		IsActive:    true,
	}

	newName := "Rental Revenue"
	req := dto.UpdateCOARequest{Name: &newName}

	suite.mockCOARepo.On("FindCOAByID", ctx, suite.tenantID, coaID).Return(original, nil).Once()
	suite.mockCOARepo.On("UpdateCOA", ctx, mock.MatchedBy(func(c domain.ChartOfAccount) bool {
		return c.Name == newName && c.Code == "401" && c.AccountType == domain.Income && c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCOA(ctx, suite.tenantID, coaID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("401", updated.Code)

	suite.mockCOARepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestListCOABalances_DualSetFlows() {
	ctx := context.Background()

	salesCOA := domain.ChartOfAccount{
		COAID:       uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "401",
		Name:        "Rental Sales",
		AccountType: domain.Income,
		NormalSide:  domain.NormalCredit,
		IsActive:    true,
	}
	expenseCOA := domain.ChartOfAccount{
		COAID:       uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "501",
		Name:        "Rent Expense",
		AccountType: domain.Expense,
		NormalSide:  domain.NormalDebit,
		IsActive:    true,
	}

	suite.mockCOARepo.On("ListCOA", ctx, suite.tenantID, false).
		Return([]domain.ChartOfAccount{salesCOA, expenseCOA}, nil).Once()

	// Income: 1000 linked IN (credit), nothing else -> balance 1000.
	suite.mockCOARepo.On("AggregateCOAFlows", ctx, suite.tenantID, salesCOA.COAID, "401 - Rental Sales").
		Return(domain.COAFlows{LinkedIn: decimal.NewFromInt(1000)}, nil).Once()

	// Expense: 300 labeled OUT is a credit-side flow for the dual-set model;
	// 700 linked OUT plus 200 labeled IN land on the debit side -> 900-300=600.
	suite.mockCOARepo.On("AggregateCOAFlows", ctx, suite.tenantID, expenseCOA.COAID, "501 - Rent Expense").
		Return(domain.COAFlows{
			LinkedOut:  decimal.NewFromInt(700),
			LabeledIn:  decimal.NewFromInt(200),
			LabeledOut: decimal.NewFromInt(300),
		}, nil).Once()

	suite.mockAcctRepo.On("AggregateAccountFlows", ctx, suite.tenantID).
		Return([]domain.FinancialAccountFlow{
			{AccountID: "acct-1", Name: "Cash Drawer", TotalIn: decimal.NewFromInt(500), TotalOut: decimal.NewFromInt(120)},
		}, nil).Once()

	balances, err := suite.service.ListCOABalances(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 3)

	suite.Equal(salesCOA.COAID, balances[0].COAID)
	suite.True(balances[0].Balance.Equal(decimal.NewFromInt(1000)))
	suite.False(balances[0].IsFinancialAccount)

	suite.Equal(expenseCOA.COAID, balances[1].COAID)
	suite.True(balances[1].Balance.Equal(decimal.NewFromInt(600)))

	// Synthetic financial account row: TotalIn - TotalOut, always ASSET/DEBIT.
	suite.Equal("acct-1", balances[2].COAID)
	suite.True(balances[2].Balance.Equal(decimal.NewFromInt(380)))
	suite.Equal(domain.Asset, balances[2].AccountType)
	suite.Equal(domain.NormalDebit, balances[2].NormalSide)
	suite.True(balances[2].IsFinancialAccount)

	suite.mockCOARepo.AssertExpectations(suite.T())
	suite.mockAcctRepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestListCOABalances_SettledSaleNetsReceivableToZero() {
	ctx := context.Background()

	receivableCOA := domain.ChartOfAccount{
		COAID:       uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "103",
		Name:        "Accounts Receivable",
		AccountType: domain.Asset,
		NormalSide:  domain.NormalDebit,
		IsActive:    true,
	}

	suite.mockCOARepo.On("ListCOA", ctx, suite.tenantID, false).
		Return([]domain.ChartOfAccount{receivableCOA}, nil).Once()

	// A fully settled rental sale leaves two flows on the receivable: the
	// settlement leg credits it through its coa_id (linked IN), and the
	// recognition leg debits it through its "103 - Accounts Receivable" label
	// even though that leg's own coa_id points at the sales COA. The two must
	// cancel to zero once the sale is settled.
	suite.mockCOARepo.On("AggregateCOAFlows", ctx, suite.tenantID, receivableCOA.COAID, "103 - Accounts Receivable").
		Return(domain.COAFlows{
			LinkedIn:  decimal.NewFromInt(50000),
			LabeledIn: decimal.NewFromInt(50000),
		}, nil).Once()

	suite.mockAcctRepo.On("AggregateAccountFlows", ctx, suite.tenantID).
		Return([]domain.FinancialAccountFlow{}, nil).Once()

	balances, err := suite.service.ListCOABalances(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 1)
	suite.True(balances[0].Balance.IsZero(), "settled receivable should net to zero, got %s", balances[0].Balance)

	suite.mockCOARepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestListCOABalances_FlowError() {
	ctx := context.Background()
	coa := domain.ChartOfAccount{
		COAID: uuid.NewString(), TenantID: suite.tenantID, Code: "101", Name: "Cash",
		AccountType: domain.Asset, NormalSide: domain.NormalDebit, IsActive: true,
	}
	expectedErr := assert.AnError

	suite.mockCOARepo.On("ListCOA", ctx, suite.tenantID, false).Return([]domain.ChartOfAccount{coa}, nil).Once()
	suite.mockCOARepo.On("AggregateCOAFlows", ctx, suite.tenantID, coa.COAID, "101 - Cash").
		Return(domain.COAFlows{}, expectedErr).Once()

	balances, err := suite.service.ListCOABalances(ctx, suite.tenantID)

	suite.Require().Error(err)
	suite.Nil(balances)
	suite.ErrorIs(err, expectedErr)

	suite.mockCOARepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestDeactivateCOA_NotFound() {
	ctx := context.Background()
	coaID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockCOARepo.On("DeactivateCOA", ctx, suite.tenantID, coaID, userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateCOA(ctx, suite.tenantID, coaID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockCOARepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestCOAService(t *testing.T) {
	suite.Run(t, new(COAServiceTestSuite))
}
