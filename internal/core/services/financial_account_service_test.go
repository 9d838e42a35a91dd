package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// --- Test Suite Setup ---

type FinancialAccountServiceTestSuite struct {
	suite.Suite
	mockAcctRepo *MockFinancialAccountRepository
	service      portssvc.FinancialAccountSvcFacade
	tenantID     string
}

func (suite *FinancialAccountServiceTestSuite) SetupTest() {
	suite.mockAcctRepo = new(MockFinancialAccountRepository)
	suite.service = services.NewFinancialAccountService(suite.mockAcctRepo)
	suite.tenantID = uuid.NewString()
}

// --- Test Cases ---

func (suite *FinancialAccountServiceTestSuite) TestCreateFinancialAccount_StartsAtZeroBalance() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateFinancialAccountRequest{Name: "Cash Drawer", BankName: "", AccountNumber: ""}

	suite.mockAcctRepo.On("FindFinancialAccountByName", ctx, suite.tenantID, "Cash Drawer").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAcctRepo.On("SaveFinancialAccount", ctx, mock.MatchedBy(func(a domain.FinancialAccount) bool {
		return a.Name == "Cash Drawer" && a.Balance.IsZero() && a.IsActive
	})).Return(nil).Once()

	account, err := suite.service.CreateFinancialAccount(ctx, suite.tenantID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
	suite.Equal(creatorUserID, account.CreatedBy)

	suite.mockAcctRepo.AssertExpectations(suite.T())
}

func (suite *FinancialAccountServiceTestSuite) TestCreateFinancialAccount_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateFinancialAccountRequest{Name: "Cash Drawer"}
	existing := &domain.FinancialAccount{AccountID: uuid.NewString(), TenantID: suite.tenantID, Name: "Cash Drawer"}

	suite.mockAcctRepo.On("FindFinancialAccountByName", ctx, suite.tenantID, "Cash Drawer").
		Return(existing, nil).Once()

	account, err := suite.service.CreateFinancialAccount(ctx, suite.tenantID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockAcctRepo.AssertExpectations(suite.T())
	suite.mockAcctRepo.AssertNotCalled(suite.T(), "SaveFinancialAccount", mock.Anything, mock.Anything)
}

func (suite *FinancialAccountServiceTestSuite) TestUpdateFinancialAccount_RenameToTakenName() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.FinancialAccount{AccountID: accountID, TenantID: suite.tenantID, Name: "Old Name", IsActive: true}
	other := &domain.FinancialAccount{AccountID: uuid.NewString(), TenantID: suite.tenantID, Name: "Taken Name", IsActive: true}
	newName := "Taken Name"
	req := dto.UpdateFinancialAccountRequest{Name: &newName}

	suite.mockAcctRepo.On("FindFinancialAccountByID", ctx, suite.tenantID, accountID).Return(account, nil).Once()
	suite.mockAcctRepo.On("FindFinancialAccountByName", ctx, suite.tenantID, "Taken Name").Return(other, nil).Once()

	updated, err := suite.service.UpdateFinancialAccount(ctx, suite.tenantID, accountID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockAcctRepo.AssertExpectations(suite.T())
	suite.mockAcctRepo.AssertNotCalled(suite.T(), "UpdateFinancialAccount", mock.Anything, mock.Anything)
}

func (suite *FinancialAccountServiceTestSuite) TestUpdateFinancialAccount_MetadataOnly() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	accountID := uuid.NewString()
	account := &domain.FinancialAccount{AccountID: accountID, TenantID: suite.tenantID, Name: "BCA", IsActive: true}
	newBank := "Bank Central Asia"
	req := dto.UpdateFinancialAccountRequest{BankName: &newBank}

	suite.mockAcctRepo.On("FindFinancialAccountByID", ctx, suite.tenantID, accountID).Return(account, nil).Once()
	suite.mockAcctRepo.On("UpdateFinancialAccount", ctx, mock.MatchedBy(func(a domain.FinancialAccount) bool {
		return a.BankName == newBank && a.Name == "BCA" && a.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateFinancialAccount(ctx, suite.tenantID, accountID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newBank, updated.BankName)

	suite.mockAcctRepo.AssertExpectations(suite.T())
	// Name unchanged, so no uniqueness lookup happens.
	suite.mockAcctRepo.AssertNotCalled(suite.T(), "FindFinancialAccountByName", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinancialAccountServiceTestSuite) TestDeactivateFinancialAccount_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockAcctRepo.On("DeactivateFinancialAccount", ctx, suite.tenantID, accountID, userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateFinancialAccount(ctx, suite.tenantID, accountID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockAcctRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestFinancialAccountService(t *testing.T) {
	suite.Run(t, new(FinancialAccountServiceTestSuite))
}
