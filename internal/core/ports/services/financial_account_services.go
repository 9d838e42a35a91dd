package services

import (
	"context"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// FinancialAccountReaderSvc defines read operations for cash/bank accounts
type FinancialAccountReaderSvc interface {
	// GetFinancialAccountByID retrieves a specific account by its ID.
	GetFinancialAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.FinancialAccount, error)

	// ListFinancialAccounts retrieves the tenant's accounts ordered by name.
	ListFinancialAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.FinancialAccount, error)
}

// FinancialAccountWriterSvc defines write operations for cash/bank accounts
type FinancialAccountWriterSvc interface {
	// CreateFinancialAccount persists a new account with a zero balance.
	CreateFinancialAccount(ctx context.Context, tenantID string, req dto.CreateFinancialAccountRequest, creatorUserID string) (*domain.FinancialAccount, error)

	// UpdateFinancialAccount updates name/bank metadata of an account.
	UpdateFinancialAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateFinancialAccountRequest, requestingUserID string) (*domain.FinancialAccount, error)

	// DeactivateFinancialAccount marks an account as inactive.
	DeactivateFinancialAccount(ctx context.Context, tenantID string, accountID string, requestingUserID string) error
}

// FinancialAccountSvcFacade combines all financial account service interfaces
type FinancialAccountSvcFacade interface {
	FinancialAccountReaderSvc
	FinancialAccountWriterSvc
}
