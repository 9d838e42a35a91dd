package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// MockRentalRepository is a mock type for the RentalRepositoryFacade interface
type MockRentalRepository struct {
	mock.Mock
}

// Ensure MockRentalRepository implements portsrepo.RentalRepositoryFacade
var _ portsrepo.RentalRepositoryFacade = (*MockRentalRepository)(nil)

func (m *MockRentalRepository) SaveRentalWithLegs(ctx context.Context, rental domain.RentalRecord, legs []domain.Transaction) error {
	args := m.Called(ctx, rental, legs)
	return args.Error(0)
}

func (m *MockRentalRepository) ReplaceRentalLegs(ctx context.Context, rental domain.RentalRecord, oldLegs []domain.Transaction, newLegs []domain.Transaction) error {
	args := m.Called(ctx, rental, oldLegs, newLegs)
	return args.Error(0)
}

func (m *MockRentalRepository) DeleteRentalWithLegs(ctx context.Context, rental domain.RentalRecord, legs []domain.Transaction) error {
	args := m.Called(ctx, rental, legs)
	return args.Error(0)
}

func (m *MockRentalRepository) FindRentalByID(ctx context.Context, tenantID, rentalID string) (*domain.RentalRecord, error) {
	args := m.Called(ctx, tenantID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}

func (m *MockRentalRepository) ListRentals(ctx context.Context, tenantID string, params dto.ListRentalsParams) ([]domain.RentalRecord, *string, error) {
	args := m.Called(ctx, tenantID, params)
	var rentals []domain.RentalRecord
	if args.Get(0) != nil {
		rentals = args.Get(0).([]domain.RentalRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return rentals, token, args.Error(2)
}

func (m *MockRentalRepository) FindLegsByIDs(ctx context.Context, tenantID string, txnIDs []string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tenantID, txnIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockRentalRepository) FindRentalPrice(ctx context.Context, tenantID, outletID, itemType string, duration int) (*domain.RentalPrice, error) {
	args := m.Called(ctx, tenantID, outletID, itemType, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalPrice), args.Error(1)
}

// MockSettingsRepository is a mock type for the SettingsRepositoryFacade interface
type MockSettingsRepository struct {
	mock.Mock
}

// Ensure MockSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) FindPostingTargets(ctx context.Context, tenantID string) (*domain.PostingTargets, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingTargets), args.Error(1)
}

// --- Test Suite Setup ---

type PostingServiceTestSuite struct {
	suite.Suite
	mockRentalRepo   *MockRentalRepository
	mockSettingsRepo *MockSettingsRepository
	mockCOARepo      *MockCOARepository
	mockAcctRepo     *MockFinancialAccountRepository
	service          portssvc.PostingSvcFacade
	tenantID         string
	targetTenantID   string
	targets          *domain.PostingTargets
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockRentalRepo = new(MockRentalRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockCOARepo = new(MockCOARepository)
	suite.mockAcctRepo = new(MockFinancialAccountRepository)
	suite.service = services.NewPostingService(suite.mockRentalRepo, suite.mockSettingsRepo, suite.mockCOARepo, suite.mockAcctRepo)
	suite.tenantID = uuid.NewString()
	suite.targetTenantID = uuid.NewString()
	suite.targets = &domain.PostingTargets{
		TenantID:          suite.tenantID,
		TargetTenantID:    suite.targetTenantID,
		CashAccountID:     "acct-cash",
		TransferAccountID: "acct-transfer",
		ReceivableCOAID:   "coa-receivable",
		SalesCOAID:        "coa-sales",
	}
}

// expectLabelResolution stubs the display-label lookups buildLegs performs.
func (suite *PostingServiceTestSuite) expectLabelResolution() {
	receivableCOA := &domain.ChartOfAccount{
		COAID: "coa-receivable", TenantID: suite.targetTenantID,
		Code: "103", Name: "Accounts Receivable",
		AccountType: domain.Asset, NormalSide: domain.NormalDebit, IsActive: true,
	}
	suite.mockCOARepo.On("FindCOAByID", mock.Anything, suite.targetTenantID, "coa-receivable").Return(receivableCOA, nil).Maybe()
	suite.mockAcctRepo.On("FindFinancialAccountByID", mock.Anything, suite.targetTenantID, "acct-cash").
		Return(&domain.FinancialAccount{AccountID: "acct-cash", TenantID: suite.targetTenantID, Name: "Cash Drawer", IsActive: true}, nil).Maybe()
	suite.mockAcctRepo.On("FindFinancialAccountByID", mock.Anything, suite.targetTenantID, "acct-transfer").
		Return(&domain.FinancialAccount{AccountID: "acct-transfer", TenantID: suite.targetTenantID, Name: "Bank Transfer", IsActive: true}, nil).Maybe()
}

func (suite *PostingServiceTestSuite) priceRow(price int64) *domain.RentalPrice {
	return &domain.RentalPrice{
		PriceID:  uuid.NewString(),
		TenantID: suite.tenantID,
		OutletID: "outlet-1",
		ItemType: "console",
		Duration: 2,
		Price:    decimal.NewFromInt(price),
	}
}

// --- Test Cases ---

func (suite *PostingServiceTestSuite) TestPostSale_CashProducesTwoLegs() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateRentalRequest{
		OutletID:      "outlet-1",
		InvoiceNumber: "INV-001",
		CustomerName:  "Budi",
		ItemType:      "console",
		Duration:      2,
		PaymentMethod: domain.PaymentCash,
	}

	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "console", 2).Return(suite.priceRow(50000), nil).Once()
	suite.mockSettingsRepo.On("FindPostingTargets", ctx, suite.tenantID).Return(suite.targets, nil).Once()
	suite.expectLabelResolution()

	var savedLegs []domain.Transaction
	suite.mockRentalRepo.On("SaveRentalWithLegs", ctx, mock.AnythingOfType("domain.RentalRecord"), mock.MatchedBy(func(legs []domain.Transaction) bool {
		savedLegs = legs
		return true
	})).Return(nil).Once()

	rental, err := suite.service.PostSale(ctx, suite.tenantID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rental)
	suite.True(rental.TotalAmount.Equal(decimal.NewFromInt(50000))) // priced, not caller-supplied
	suite.True(rental.CashAmount.Equal(decimal.NewFromInt(50000)))
	suite.True(rental.TransferAmount.IsZero())
	suite.Len(rental.TransactionIDs, 2)
	suite.Equal(suite.targetTenantID, rental.TargetTenantID) // recorded for later reversal

	suite.Require().Len(savedLegs, 2)

	recognition := savedLegs[0]
	settlement := savedLegs[1]

	// Recognition leg: label-only, full amount, credits the sales COA, and
	// predates the settlement leg so statements list it first.
	suite.False(recognition.Counterparty.IsLinked())
	suite.Equal("103 - Accounts Receivable", recognition.Counterparty.Label)
	suite.Require().NotNil(recognition.COAID)
	suite.Equal("coa-sales", *recognition.COAID)
	suite.True(recognition.Amount.Equal(decimal.NewFromInt(50000)))
	suite.True(recognition.CashEffect().IsZero())
	suite.True(recognition.Date.Before(settlement.Date))

	// Settlement leg: linked to the cash account, offsets the receivable.
	suite.True(settlement.Counterparty.IsLinked())
	suite.Equal("acct-cash", *settlement.Counterparty.AccountID)
	suite.Require().NotNil(settlement.COAID)
	suite.Equal("coa-receivable", *settlement.COAID)
	suite.True(settlement.CashEffect().Equal(decimal.NewFromInt(50000)))

	// Both legs land in the target tenant's ledger.
	suite.Equal(suite.targetTenantID, recognition.TenantID)
	suite.Equal(suite.targetTenantID, settlement.TenantID)

	suite.mockRentalRepo.AssertExpectations(suite.T())
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostSale_SplitProducesThreeLegs() {
	ctx := context.Background()
	req := dto.CreateRentalRequest{
		OutletID:       "outlet-1",
		InvoiceNumber:  "INV-002",
		ItemType:       "console",
		Duration:       2,
		PaymentMethod:  domain.PaymentSplit,
		CashAmount:     decimal.NewFromInt(20000),
		TransferAmount: decimal.NewFromInt(30000),
	}

	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "console", 2).Return(suite.priceRow(50000), nil).Once()
	suite.mockSettingsRepo.On("FindPostingTargets", ctx, suite.tenantID).Return(suite.targets, nil).Once()
	suite.expectLabelResolution()

	var savedLegs []domain.Transaction
	suite.mockRentalRepo.On("SaveRentalWithLegs", ctx, mock.AnythingOfType("domain.RentalRecord"), mock.MatchedBy(func(legs []domain.Transaction) bool {
		savedLegs = legs
		return true
	})).Return(nil).Once()

	rental, err := suite.service.PostSale(ctx, suite.tenantID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(savedLegs, 3)
	suite.Len(rental.TransactionIDs, 3)

	cashLeg := savedLegs[1]
	transferLeg := savedLegs[2]
	suite.Equal("acct-cash", *cashLeg.Counterparty.AccountID)
	suite.True(cashLeg.Amount.Equal(decimal.NewFromInt(20000)))
	suite.Equal("acct-transfer", *transferLeg.Counterparty.AccountID)
	suite.True(transferLeg.Amount.Equal(decimal.NewFromInt(30000)))

	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostSale_SplitZeroChannelDegenerates() {
	ctx := context.Background()
	req := dto.CreateRentalRequest{
		OutletID:       "outlet-1",
		InvoiceNumber:  "INV-003",
		ItemType:       "console",
		Duration:       2,
		PaymentMethod:  domain.PaymentSplit,
		CashAmount:     decimal.NewFromInt(50000),
		TransferAmount: decimal.Zero,
	}

	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "console", 2).Return(suite.priceRow(50000), nil).Once()
	suite.mockSettingsRepo.On("FindPostingTargets", ctx, suite.tenantID).Return(suite.targets, nil).Once()
	suite.expectLabelResolution()

	var savedLegs []domain.Transaction
	suite.mockRentalRepo.On("SaveRentalWithLegs", ctx, mock.AnythingOfType("domain.RentalRecord"), mock.MatchedBy(func(legs []domain.Transaction) bool {
		savedLegs = legs
		return true
	})).Return(nil).Once()

	rental, err := suite.service.PostSale(ctx, suite.tenantID, req, uuid.NewString())

	// A split with an empty transfer side settles like a plain cash sale:
	// recognition plus one settlement leg.
	suite.Require().NoError(err)
	suite.Require().Len(savedLegs, 2)
	suite.Equal("acct-cash", *savedLegs[1].Counterparty.AccountID)
	suite.True(rental.TransferAmount.IsZero())

	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostSale_SplitMismatchRejected() {
	ctx := context.Background()
	req := dto.CreateRentalRequest{
		OutletID:       "outlet-1",
		ItemType:       "console",
		Duration:       2,
		PaymentMethod:  domain.PaymentSplit,
		CashAmount:     decimal.NewFromInt(20000),
		TransferAmount: decimal.NewFromInt(20000), // 40000 != 50000
	}

	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "console", 2).Return(suite.priceRow(50000), nil).Once()

	rental, err := suite.service.PostSale(ctx, suite.tenantID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rental)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRentalRepo.AssertNotCalled(suite.T(), "SaveRentalWithLegs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostSale_PricingNotConfigured() {
	ctx := context.Background()
	req := dto.CreateRentalRequest{
		OutletID:      "outlet-1",
		ItemType:      "vr-headset",
		Duration:      4,
		PaymentMethod: domain.PaymentCash,
	}

	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "vr-headset", 4).Return(nil, apperrors.ErrNotFound).Once()

	rental, err := suite.service.PostSale(ctx, suite.tenantID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rental)
	suite.ErrorIs(err, apperrors.ErrPricingNotConfigured)

	suite.mockRentalRepo.AssertExpectations(suite.T())
	suite.mockRentalRepo.AssertNotCalled(suite.T(), "SaveRentalWithLegs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostSale_DefaultsWhenNoTargetsRow() {
	ctx := context.Background()
	req := dto.CreateRentalRequest{
		OutletID:      "outlet-1",
		ItemType:      "console",
		Duration:      2,
		PaymentMethod: domain.PaymentCash,
	}

	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "console", 2).Return(suite.priceRow(50000), nil).Once()
	suite.mockSettingsRepo.On("FindPostingTargets", ctx, suite.tenantID).Return(nil, apperrors.ErrNotFound).Once()

	// Default targets post into the tenant's own ledger; the seeded COA and
	// account rows may not exist yet, so label resolution falls back to ids.
	suite.mockCOARepo.On("FindCOAByID", mock.Anything, suite.tenantID, domain.DefaultReceivableCOAID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAcctRepo.On("FindFinancialAccountByID", mock.Anything, suite.tenantID, domain.DefaultCashAccountID).Return(nil, apperrors.ErrNotFound).Once()

	var savedLegs []domain.Transaction
	suite.mockRentalRepo.On("SaveRentalWithLegs", ctx, mock.AnythingOfType("domain.RentalRecord"), mock.MatchedBy(func(legs []domain.Transaction) bool {
		savedLegs = legs
		return true
	})).Return(nil).Once()

	_, err := suite.service.PostSale(ctx, suite.tenantID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(savedLegs, 2)
	suite.Equal(suite.tenantID, savedLegs[0].TenantID)
	suite.Equal(domain.DefaultReceivableCOAID, savedLegs[0].Counterparty.Label)
	suite.Equal(domain.DefaultCashAccountID, *savedLegs[1].Counterparty.AccountID)

	suite.mockSettingsRepo.AssertExpectations(suite.T())
	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestEditSale_ReversesOldLegs() {
	ctx := context.Background()
	rentalID := uuid.NewString()
	oldLegIDs := []string{uuid.NewString(), uuid.NewString()}
	existing := &domain.RentalRecord{
		RentalID:       rentalID,
		TenantID:       suite.tenantID,
		TargetTenantID: suite.targetTenantID,
		OutletID:       "outlet-1",
		ItemType:       "console",
		Duration:       2,
		TotalAmount:    decimal.NewFromInt(50000),
		PaymentMethod:  domain.PaymentCash,
		CashAmount:     decimal.NewFromInt(50000),
		TransactionIDs: oldLegIDs,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			CreatedBy: "original-creator",
		},
	}
	oldLegs := []domain.Transaction{
		{TransactionID: oldLegIDs[0], TenantID: suite.targetTenantID},
		{TransactionID: oldLegIDs[1], TenantID: suite.targetTenantID},
	}

	req := dto.UpdateRentalRequest{
		OutletID:      "outlet-1",
		ItemType:      "console",
		Duration:      2,
		PaymentMethod: domain.PaymentTransfer,
	}

	suite.mockRentalRepo.On("FindRentalByID", ctx, suite.tenantID, rentalID).Return(existing, nil).Once()
	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "console", 2).Return(suite.priceRow(50000), nil).Once()
	suite.mockSettingsRepo.On("FindPostingTargets", ctx, suite.tenantID).Return(suite.targets, nil).Once()
	suite.mockRentalRepo.On("FindLegsByIDs", ctx, suite.targetTenantID, oldLegIDs).Return(oldLegs, nil).Once()
	suite.expectLabelResolution()

	suite.mockRentalRepo.On("ReplaceRentalLegs", ctx, mock.MatchedBy(func(r domain.RentalRecord) bool {
		return r.RentalID == rentalID &&
			r.CreatedBy == "original-creator" &&
			r.PaymentMethod == domain.PaymentTransfer &&
			r.TransferAmount.Equal(decimal.NewFromInt(50000))
	}), oldLegs, mock.MatchedBy(func(newLegs []domain.Transaction) bool {
		return len(newLegs) == 2
	})).Return(nil).Once()

	updated, err := suite.service.EditSale(ctx, suite.tenantID, rentalID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Len(updated.TransactionIDs, 2)
	suite.NotEqual(oldLegIDs, updated.TransactionIDs)

	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestDeleteSale_ReversesLegs() {
	ctx := context.Background()
	rentalID := uuid.NewString()
	legIDs := []string{uuid.NewString()}
	existing := &domain.RentalRecord{
		RentalID:       rentalID,
		TenantID:       suite.tenantID,
		TargetTenantID: suite.targetTenantID,
		TransactionIDs: legIDs,
	}
	legs := []domain.Transaction{{TransactionID: legIDs[0], TenantID: suite.targetTenantID}}

	suite.mockRentalRepo.On("FindRentalByID", ctx, suite.tenantID, rentalID).Return(existing, nil).Once()
	suite.mockRentalRepo.On("FindLegsByIDs", ctx, suite.targetTenantID, legIDs).Return(legs, nil).Once()
	suite.mockRentalRepo.On("DeleteRentalWithLegs", ctx, mock.AnythingOfType("domain.RentalRecord"), legs).Return(nil).Once()

	err := suite.service.DeleteSale(ctx, suite.tenantID, rentalID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRentalRepo.AssertExpectations(suite.T())
	// The recorded ledger tenant is authoritative; the settings row is not
	// consulted on delete.
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "FindPostingTargets", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestEditSale_ReversesAgainstRecordedLedgerTenant() {
	ctx := context.Background()
	rentalID := uuid.NewString()
	oldLegIDs := []string{uuid.NewString(), uuid.NewString()}
	recordedLedgerTenantID := uuid.NewString() // where the legs actually live

	// The posting-targets row was repointed at a different tenant after this
	// sale was posted. The reversal must still hit the recorded ledger.
	repointedTargets := &domain.PostingTargets{
		TenantID:          suite.tenantID,
		TargetTenantID:    suite.targetTenantID,
		CashAccountID:     "acct-cash",
		TransferAccountID: "acct-transfer",
		ReceivableCOAID:   "coa-receivable",
		SalesCOAID:        "coa-sales",
	}
	existing := &domain.RentalRecord{
		RentalID:       rentalID,
		TenantID:       suite.tenantID,
		TargetTenantID: recordedLedgerTenantID,
		OutletID:       "outlet-1",
		ItemType:       "console",
		Duration:       2,
		TotalAmount:    decimal.NewFromInt(50000),
		PaymentMethod:  domain.PaymentCash,
		CashAmount:     decimal.NewFromInt(50000),
		TransactionIDs: oldLegIDs,
	}
	oldLegs := []domain.Transaction{
		{TransactionID: oldLegIDs[0], TenantID: recordedLedgerTenantID},
		{TransactionID: oldLegIDs[1], TenantID: recordedLedgerTenantID},
	}

	req := dto.UpdateRentalRequest{
		OutletID:      "outlet-1",
		ItemType:      "console",
		Duration:      2,
		PaymentMethod: domain.PaymentCash,
	}

	suite.mockRentalRepo.On("FindRentalByID", ctx, suite.tenantID, rentalID).Return(existing, nil).Once()
	suite.mockRentalRepo.On("FindRentalPrice", ctx, suite.tenantID, "outlet-1", "console", 2).Return(suite.priceRow(50000), nil).Once()
	suite.mockSettingsRepo.On("FindPostingTargets", ctx, suite.tenantID).Return(repointedTargets, nil).Once()
	suite.mockRentalRepo.On("FindLegsByIDs", ctx, recordedLedgerTenantID, oldLegIDs).Return(oldLegs, nil).Once()
	suite.expectLabelResolution()

	suite.mockRentalRepo.On("ReplaceRentalLegs", ctx, mock.MatchedBy(func(r domain.RentalRecord) bool {
		// The record now points at the ledger the new legs landed in.
		return r.TargetTenantID == suite.targetTenantID
	}), oldLegs, mock.MatchedBy(func(newLegs []domain.Transaction) bool {
		return len(newLegs) == 2 && newLegs[0].TenantID == suite.targetTenantID
	})).Return(nil).Once()

	updated, err := suite.service.EditSale(ctx, suite.tenantID, rentalID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)

	suite.mockRentalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestDeleteSale_NoLegsNothingReversed() {
	ctx := context.Background()
	rentalID := uuid.NewString()
	existing := &domain.RentalRecord{
		RentalID: rentalID,
		TenantID: suite.tenantID,
		// No linked legs: pre-migration row or already-reversed posting.
	}

	suite.mockRentalRepo.On("FindRentalByID", ctx, suite.tenantID, rentalID).Return(existing, nil).Once()
	suite.mockRentalRepo.On("DeleteRentalWithLegs", ctx, mock.AnythingOfType("domain.RentalRecord"), []domain.Transaction{}).Return(nil).Once()

	err := suite.service.DeleteSale(ctx, suite.tenantID, rentalID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRentalRepo.AssertExpectations(suite.T())
	suite.mockRentalRepo.AssertNotCalled(suite.T(), "FindLegsByIDs", mock.Anything, mock.Anything, mock.Anything)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "FindPostingTargets", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestDeleteSale_NotFound() {
	ctx := context.Background()
	rentalID := uuid.NewString()

	suite.mockRentalRepo.On("FindRentalByID", ctx, suite.tenantID, rentalID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSale(ctx, suite.tenantID, rentalID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRentalRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestPostingService(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
