package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/accounting"
)

// coaService provides chart-of-accounts registry and balance operations.
type coaService struct {
	BaseService
	coaRepo           portsrepo.COARepositoryFacade
	financialAcctRepo portsrepo.FinancialAccountRepositoryFacade
}

// NewCOAService creates a new COA service.
func NewCOAService(coaRepo portsrepo.COARepositoryFacade, financialAcctRepo portsrepo.FinancialAccountRepositoryFacade) portssvc.COASvcFacade {
	return &coaService{
		coaRepo:           coaRepo,
		financialAcctRepo: financialAcctRepo,
	}
}

// Ensure coaService implements the portssvc.COASvcFacade interface
var _ portssvc.COASvcFacade = (*coaService)(nil)

// CreateCOA persists a new chart-of-accounts entry. When the request omits the
// account type it is classified from the leading digit of the code, and the
// normal side is always derived from the type.
func (s *coaService) CreateCOA(ctx context.Context, tenantID string, req dto.CreateCOARequest, creatorUserID string) (*domain.ChartOfAccount, error) {
	logger := s.GetLogger(ctx)

	existing, err := s.coaRepo.FindCOAByCode(ctx, tenantID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
	}

	accountType := domain.ClassifyAccountCode(req.Code)
	if req.AccountType != nil {
		accountType = *req.AccountType
	}

	now := time.Now().UTC()
	coa := domain.ChartOfAccount{
		COAID:       uuid.NewString(),
		TenantID:    tenantID,
		Code:        req.Code,
		Name:        req.Name,
		AccountType: accountType,
		NormalSide:  domain.NormalSideFor(accountType),
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.coaRepo.SaveCOA(ctx, coa); err != nil {
		s.LogError(ctx, err, "Failed to save COA", "coa_id", coa.COAID)
		return nil, err
	}

	logger.Info("COA created", "coa_id", coa.COAID, "code", coa.Code, "account_type", string(coa.AccountType))
	return &coa, nil
}

// GetCOAByID retrieves a COA entry by its ID.
func (s *coaService) GetCOAByID(ctx context.Context, tenantID string, coaID string) (*domain.ChartOfAccount, error) {
	return s.coaRepo.FindCOAByID(ctx, tenantID, coaID)
}

// ListCOA retrieves the tenant's chart of accounts ordered by code.
func (s *coaService) ListCOA(ctx context.Context, tenantID string, includeInactive bool) ([]domain.ChartOfAccount, error) {
	return s.coaRepo.ListCOA(ctx, tenantID, includeInactive)
}

// UpdateCOA updates name/description of an existing entry. Code and type are
// immutable once created; historical label-matched rows depend on them.
func (s *coaService) UpdateCOA(ctx context.Context, tenantID string, coaID string, req dto.UpdateCOARequest, requestingUserID string) (*domain.ChartOfAccount, error) {
	coa, err := s.coaRepo.FindCOAByID(ctx, tenantID, coaID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		coa.Name = *req.Name
	}
	if req.Description != nil {
		coa.Description = *req.Description
	}
	coa.LastUpdatedAt = time.Now().UTC()
	coa.LastUpdatedBy = requestingUserID

	if err := s.coaRepo.UpdateCOA(ctx, *coa); err != nil {
		s.LogError(ctx, err, "Failed to update COA", "coa_id", coaID)
		return nil, err
	}

	return coa, nil
}

// DeactivateCOA marks a COA entry as inactive.
func (s *coaService) DeactivateCOA(ctx context.Context, tenantID string, coaID string, requestingUserID string) error {
	return s.coaRepo.DeactivateCOA(ctx, tenantID, coaID, requestingUserID, time.Now().UTC())
}

// ListCOABalances computes every active COA balance from the transaction log
// and appends the tenant's financial accounts as synthetic asset rows. Nothing
// here reads the cached balance column.
func (s *coaService) ListCOABalances(ctx context.Context, tenantID string) ([]domain.COABalance, error) {
	coas, err := s.coaRepo.ListCOA(ctx, tenantID, false)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.COABalance, 0, len(coas))
	for _, coa := range coas {
		flows, err := s.coaRepo.AggregateCOAFlows(ctx, tenantID, coa.COAID, coa.DisplayLabel())
		if err != nil {
			s.LogError(ctx, err, "Failed to aggregate COA flows", "coa_id", coa.COAID)
			return nil, err
		}
		balances = append(balances, domain.COABalance{
			COAID:       coa.COAID,
			Code:        coa.Code,
			Name:        coa.Name,
			AccountType: coa.AccountType,
			NormalSide:  coa.NormalSide,
			Balance:     accounting.BalanceFromFlows(coa.AccountType, flows),
		})
	}

	// Financial accounts join the listing as synthetic ASSET rows whose
	// balance is recomputed from their linked settled transactions.
	accountFlows, err := s.financialAcctRepo.AggregateAccountFlows(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for _, f := range accountFlows {
		balances = append(balances, domain.COABalance{
			COAID:              f.AccountID,
			Name:               f.Name,
			AccountType:        domain.Asset,
			NormalSide:         domain.NormalDebit,
			Balance:            f.TotalIn.Sub(f.TotalOut),
			IsFinancialAccount: true,
		})
	}

	return balances, nil
}
