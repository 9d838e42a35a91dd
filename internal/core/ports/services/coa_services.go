package services

import (
	"context"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// COAReaderSvc defines read operations for chart-of-accounts data
type COAReaderSvc interface {
	// GetCOAByID retrieves a specific COA entry by its ID.
	GetCOAByID(ctx context.Context, tenantID string, coaID string) (*domain.ChartOfAccount, error)

	// ListCOA retrieves the tenant's chart of accounts ordered by code.
	ListCOA(ctx context.Context, tenantID string, includeInactive bool) ([]domain.ChartOfAccount, error)
}

// COAWriterSvc defines write operations for chart-of-accounts data
type COAWriterSvc interface {
	// CreateCOA persists a new COA entry, classifying it from the code's
	// leading digit when no explicit type is given.
	CreateCOA(ctx context.Context, tenantID string, req dto.CreateCOARequest, creatorUserID string) (*domain.ChartOfAccount, error)

	// UpdateCOA updates name/description of an existing COA entry.
	UpdateCOA(ctx context.Context, tenantID string, coaID string, req dto.UpdateCOARequest, requestingUserID string) (*domain.ChartOfAccount, error)

	// DeactivateCOA marks a COA entry as inactive.
	DeactivateCOA(ctx context.Context, tenantID string, coaID string, requestingUserID string) error
}

// COACalculatorSvc defines balance computation over the chart of accounts
type COACalculatorSvc interface {
	// ListCOABalances computes the balance of every active COA entry from the
	// transaction log and appends financial accounts as synthetic asset rows.
	ListCOABalances(ctx context.Context, tenantID string) ([]domain.COABalance, error)
}

// COASvcFacade combines all chart-of-accounts service interfaces
type COASvcFacade interface {
	COAReaderSvc
	COAWriterSvc
	COACalculatorSvc
}
