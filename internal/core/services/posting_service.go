package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

var (
	ErrSplitAmountMismatch = errors.New("cash and transfer amounts must sum to the configured price")
)

// postingService turns rental sales into double-entry journal postings in the
// configured target tenant's ledger.
type postingService struct {
	BaseService
	rentalRepo        portsrepo.RentalRepositoryFacade
	settingsRepo      portsrepo.SettingsRepositoryFacade
	coaRepo           portsrepo.COARepositoryFacade
	financialAcctRepo portsrepo.FinancialAccountRepositoryFacade
}

// NewPostingService creates a new rental posting service.
func NewPostingService(
	rentalRepo portsrepo.RentalRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	coaRepo portsrepo.COARepositoryFacade,
	financialAcctRepo portsrepo.FinancialAccountRepositoryFacade,
) portssvc.PostingSvcFacade {
	return &postingService{
		rentalRepo:        rentalRepo,
		settingsRepo:      settingsRepo,
		coaRepo:           coaRepo,
		financialAcctRepo: financialAcctRepo,
	}
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// resolvePostingTargets loads the tenant's posting configuration, falling back
// to the hardcoded defaults when no row exists. Targets are resolved fresh on
// every posting call, never cached.
func (s *postingService) resolvePostingTargets(ctx context.Context, tenantID string) (domain.PostingTargets, error) {
	targets, err := s.settingsRepo.FindPostingTargets(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultPostingTargets(tenantID), nil
		}
		return domain.PostingTargets{}, err
	}
	return *targets, nil
}

// legsTenantID returns the ledger tenant a rental's legs were posted into.
// Rows predating the recorded ledger tenant fall back to the currently
// configured target.
func (s *postingService) legsTenantID(rental *domain.RentalRecord, targets domain.PostingTargets) string {
	if rental.TargetTenantID != "" {
		return rental.TargetTenantID
	}
	return targets.TargetTenantID
}

// settlementSplit validates the payment method against the priced total and
// returns the cash/transfer portions.
func settlementSplit(method domain.PaymentMethod, total, cash, transfer decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	switch method {
	case domain.PaymentCash:
		return total, decimal.Zero, nil
	case domain.PaymentTransfer:
		return decimal.Zero, total, nil
	case domain.PaymentSplit:
		// A zero channel is allowed; the split then degenerates to a single
		// settlement leg. Negative portions and sums that miss the priced
		// total are not.
		if cash.IsNegative() || transfer.IsNegative() || !cash.Add(transfer).Equal(total) {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSplitAmountMismatch)
		}
		return cash, transfer, nil
	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, method)
	}
}

// receivableLabel returns the display label the recognition leg carries for
// the receivable side. The COA row may not exist when a tenant runs on the
// default targets; the raw id is the fallback label.
func (s *postingService) receivableLabel(ctx context.Context, targets domain.PostingTargets) string {
	coa, err := s.coaRepo.FindCOAByID(ctx, targets.TargetTenantID, targets.ReceivableCOAID)
	if err != nil {
		return targets.ReceivableCOAID
	}
	return coa.DisplayLabel()
}

// settlementAccountLabel resolves the canonical name of a settlement account.
func (s *postingService) settlementAccountLabel(ctx context.Context, targetTenantID, accountID string) string {
	account, err := s.financialAcctRepo.FindFinancialAccountByID(ctx, targetTenantID, accountID)
	if err != nil {
		return accountID
	}
	return account.Name
}

// buildLegs constructs the recognition and settlement legs for a sale. The
// recognition leg is label-only (it moves no cash) and dated one second before
// the settlement legs so statements always show recognition first.
func (s *postingService) buildLegs(ctx context.Context, targets domain.PostingTargets, rental domain.RentalRecord, settledAt time.Time, userID string, now time.Time) []domain.Transaction {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	salesCOAID := targets.SalesCOAID
	receivableCOAID := targets.ReceivableCOAID
	description := fmt.Sprintf("Rental %s x%d - %s", rental.ItemType, rental.Duration, rental.InvoiceNumber)

	legs := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			TenantID:      targets.TargetTenantID,
			Date:          settledAt.Add(-time.Second),
			Amount:        rental.TotalAmount,
			Direction:     domain.DirectionIn,
			Status:        domain.StatusPaid,
			Description:   description,
			Counterparty:  domain.LabeledCounterparty(s.receivableLabel(ctx, targets)),
			COAID:         &salesCOAID,
			ContactName:   rental.CustomerName,
			AuditFields:   audit,
		},
	}

	if rental.CashAmount.IsPositive() {
		legs = append(legs, domain.Transaction{
			TransactionID: uuid.NewString(),
			TenantID:      targets.TargetTenantID,
			Date:          settledAt,
			Amount:        rental.CashAmount,
			Direction:     domain.DirectionIn,
			Status:        domain.StatusPaid,
			Description:   description,
			Counterparty:  domain.LinkedCounterparty(targets.CashAccountID, s.settlementAccountLabel(ctx, targets.TargetTenantID, targets.CashAccountID)),
			COAID:         &receivableCOAID,
			ContactName:   rental.CustomerName,
			AuditFields:   audit,
		})
	}
	if rental.TransferAmount.IsPositive() {
		legs = append(legs, domain.Transaction{
			TransactionID: uuid.NewString(),
			TenantID:      targets.TargetTenantID,
			Date:          settledAt,
			Amount:        rental.TransferAmount,
			Direction:     domain.DirectionIn,
			Status:        domain.StatusPaid,
			Description:   description,
			Counterparty:  domain.LinkedCounterparty(targets.TransferAccountID, s.settlementAccountLabel(ctx, targets.TargetTenantID, targets.TransferAccountID)),
			COAID:         &receivableCOAID,
			ContactName:   rental.CustomerName,
			AuditFields:   audit,
		})
	}

	return legs
}

// PostSale prices the sale, validates its settlement split, builds the
// recognition and settlement legs and persists record plus legs atomically.
func (s *postingService) PostSale(ctx context.Context, tenantID string, req dto.CreateRentalRequest, creatorUserID string) (*domain.RentalRecord, error) {
	price, err := s.rentalRepo.FindRentalPrice(ctx, tenantID, req.OutletID, req.ItemType, req.Duration)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s/%s duration %d", apperrors.ErrPricingNotConfigured, req.OutletID, req.ItemType, req.Duration)
		}
		return nil, err
	}

	cash, transfer, err := settlementSplit(req.PaymentMethod, price.Price, req.CashAmount, req.TransferAmount)
	if err != nil {
		return nil, err
	}

	targets, err := s.resolvePostingTargets(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	settledAt := now
	if req.SettledAt != nil {
		settledAt = req.SettledAt.UTC()
	}

	rental := domain.RentalRecord{
		RentalID:       uuid.NewString(),
		TenantID:       tenantID,
		TargetTenantID: targets.TargetTenantID,
		OutletID:       req.OutletID,
		InvoiceNumber:  req.InvoiceNumber,
		CustomerName:   req.CustomerName,
		ItemType:       req.ItemType,
		Duration:       req.Duration,
		TotalAmount:    price.Price,
		PaymentMethod:  req.PaymentMethod,
		CashAmount:     cash,
		TransferAmount: transfer,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	legs := s.buildLegs(ctx, targets, rental, settledAt, creatorUserID, now)
	for _, leg := range legs {
		rental.TransactionIDs = append(rental.TransactionIDs, leg.TransactionID)
	}

	if err := s.rentalRepo.SaveRentalWithLegs(ctx, rental, legs); err != nil {
		s.LogError(ctx, err, "Failed to post rental sale", "rental_id", rental.RentalID)
		return nil, err
	}

	s.LogInfo(ctx, "Rental sale posted",
		"rental_id", rental.RentalID,
		"target_tenant_id", targets.TargetTenantID,
		"total", rental.TotalAmount.String(),
		"legs", len(legs),
	)
	return &rental, nil
}

// GetRentalByID retrieves a rental record by its ID.
func (s *postingService) GetRentalByID(ctx context.Context, tenantID string, rentalID string) (*domain.RentalRecord, error) {
	return s.rentalRepo.FindRentalByID(ctx, tenantID, rentalID)
}

// ListRentals retrieves a cursor-paginated listing of rental records.
func (s *postingService) ListRentals(ctx context.Context, tenantID string, params dto.ListRentalsParams) (*dto.ListRentalsResponse, error) {
	rentals, nextToken, err := s.rentalRepo.ListRentals(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}
	return &dto.ListRentalsResponse{
		Rentals:   dto.ToRentalResponses(rentals),
		NextToken: nextToken,
	}, nil
}

// EditSale reposts a recorded sale: the prior legs are reversed and deleted,
// fresh legs posted from the updated request, and the record rewritten, all in
// one database transaction.
func (s *postingService) EditSale(ctx context.Context, tenantID string, rentalID string, req dto.UpdateRentalRequest, requestingUserID string) (*domain.RentalRecord, error) {
	existing, err := s.rentalRepo.FindRentalByID(ctx, tenantID, rentalID)
	if err != nil {
		return nil, err
	}

	price, err := s.rentalRepo.FindRentalPrice(ctx, tenantID, req.OutletID, req.ItemType, req.Duration)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s/%s duration %d", apperrors.ErrPricingNotConfigured, req.OutletID, req.ItemType, req.Duration)
		}
		return nil, err
	}

	cash, transfer, err := settlementSplit(req.PaymentMethod, price.Price, req.CashAmount, req.TransferAmount)
	if err != nil {
		return nil, err
	}

	targets, err := s.resolvePostingTargets(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	// The old legs live in the ledger recorded at posting time. The settings
	// row may have been repointed since; reversing against the freshly
	// resolved target would miss them and orphan their balance effects.
	oldLegs, err := s.rentalRepo.FindLegsByIDs(ctx, s.legsTenantID(existing, targets), existing.TransactionIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	settledAt := now
	if req.SettledAt != nil {
		settledAt = req.SettledAt.UTC()
	}

	rental := domain.RentalRecord{
		RentalID:       existing.RentalID,
		TenantID:       existing.TenantID,
		TargetTenantID: targets.TargetTenantID,
		OutletID:       req.OutletID,
		InvoiceNumber:  req.InvoiceNumber,
		CustomerName:   req.CustomerName,
		ItemType:       req.ItemType,
		Duration:       req.Duration,
		TotalAmount:    price.Price,
		PaymentMethod:  req.PaymentMethod,
		CashAmount:     cash,
		TransferAmount: transfer,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	newLegs := s.buildLegs(ctx, targets, rental, settledAt, requestingUserID, now)
	for _, leg := range newLegs {
		rental.TransactionIDs = append(rental.TransactionIDs, leg.TransactionID)
	}

	if err := s.rentalRepo.ReplaceRentalLegs(ctx, rental, oldLegs, newLegs); err != nil {
		s.LogError(ctx, err, "Failed to repost rental sale", "rental_id", rentalID)
		return nil, err
	}

	s.LogInfo(ctx, "Rental sale reposted", "rental_id", rentalID, "reversed_legs", len(oldLegs), "new_legs", len(newLegs))
	return &rental, nil
}

// DeleteSale reverses the rental's legs and deletes the record. A record with
// no linked leg IDs (a pre-migration row, or one whose posting was already
// reversed) deletes the record alone; nothing is reversed twice.
func (s *postingService) DeleteSale(ctx context.Context, tenantID string, rentalID string, requestingUserID string) error {
	existing, err := s.rentalRepo.FindRentalByID(ctx, tenantID, rentalID)
	if err != nil {
		return err
	}

	legs := []domain.Transaction{}
	if len(existing.TransactionIDs) > 0 {
		ledgerTenantID := existing.TargetTenantID
		if ledgerTenantID == "" {
			// Row predating the recorded ledger tenant: fall back to the
			// currently configured target.
			targets, err := s.resolvePostingTargets(ctx, tenantID)
			if err != nil {
				return err
			}
			ledgerTenantID = targets.TargetTenantID
		}
		legs, err = s.rentalRepo.FindLegsByIDs(ctx, ledgerTenantID, existing.TransactionIDs)
		if err != nil {
			return err
		}
	}

	existing.LastUpdatedAt = time.Now().UTC()
	existing.LastUpdatedBy = requestingUserID

	if err := s.rentalRepo.DeleteRentalWithLegs(ctx, *existing, legs); err != nil {
		s.LogError(ctx, err, "Failed to delete rental sale", "rental_id", rentalID)
		return err
	}

	s.LogInfo(ctx, "Rental sale deleted", "rental_id", rentalID, "reversed_legs", len(legs))
	return nil
}
