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

// financialAccountService provides cash/bank account operations.
type financialAccountService struct {
	BaseService
	financialAcctRepo portsrepo.FinancialAccountRepositoryFacade
}

// NewFinancialAccountService creates a new financial account service.
func NewFinancialAccountService(financialAcctRepo portsrepo.FinancialAccountRepositoryFacade) portssvc.FinancialAccountSvcFacade {
	return &financialAccountService{financialAcctRepo: financialAcctRepo}
}

// Ensure financialAccountService implements the portssvc.FinancialAccountSvcFacade interface
var _ portssvc.FinancialAccountSvcFacade = (*financialAccountService)(nil)

// CreateFinancialAccount persists a new account with a zero balance. Names are
// unique per tenant (case-insensitive) because label resolution matches on them.
func (s *financialAccountService) CreateFinancialAccount(ctx context.Context, tenantID string, req dto.CreateFinancialAccountRequest, creatorUserID string) (*domain.FinancialAccount, error) {
	existing, err := s.financialAcctRepo.FindFinancialAccountByName(ctx, tenantID, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: financial account named %q already exists", apperrors.ErrDuplicate, req.Name)
	}

	now := time.Now().UTC()
	account := domain.FinancialAccount{
		AccountID:     uuid.NewString(),
		TenantID:      tenantID,
		Name:          req.Name,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Balance:       decimal.Zero,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.financialAcctRepo.SaveFinancialAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save financial account", "account_id", account.AccountID)
		return nil, err
	}

	s.LogInfo(ctx, "Financial account created", "account_id", account.AccountID, "name", account.Name)
	return &account, nil
}

// GetFinancialAccountByID retrieves an account by its ID.
func (s *financialAccountService) GetFinancialAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.FinancialAccount, error) {
	return s.financialAcctRepo.FindFinancialAccountByID(ctx, tenantID, accountID)
}

// ListFinancialAccounts retrieves the tenant's accounts ordered by name.
func (s *financialAccountService) ListFinancialAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.FinancialAccount, error) {
	return s.financialAcctRepo.ListFinancialAccounts(ctx, tenantID, includeInactive)
}

// UpdateFinancialAccount updates name/bank metadata. The cached balance is
// never writable through this path.
func (s *financialAccountService) UpdateFinancialAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateFinancialAccountRequest, requestingUserID string) (*domain.FinancialAccount, error) {
	account, err := s.financialAcctRepo.FindFinancialAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != account.Name {
		existing, err := s.financialAcctRepo.FindFinancialAccountByName(ctx, tenantID, *req.Name)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.AccountID != accountID {
			return nil, fmt.Errorf("%w: financial account named %q already exists", apperrors.ErrDuplicate, *req.Name)
		}
		account.Name = *req.Name
	}
	if req.BankName != nil {
		account.BankName = *req.BankName
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = requestingUserID

	if err := s.financialAcctRepo.UpdateFinancialAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update financial account", "account_id", accountID)
		return nil, err
	}

	return account, nil
}

// DeactivateFinancialAccount marks an account as inactive.
func (s *financialAccountService) DeactivateFinancialAccount(ctx context.Context, tenantID string, accountID string, requestingUserID string) error {
	return s.financialAcctRepo.DeactivateFinancialAccount(ctx, tenantID, accountID, requestingUserID, time.Now().UTC())
}
