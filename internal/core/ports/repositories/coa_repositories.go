package repositories

import (
	"context"
	"time"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// COARepositoryFacade defines persistence operations for chart-of-accounts entries.
type COARepositoryFacade interface {
	// SaveCOA inserts a new COA row.
	SaveCOA(ctx context.Context, coa domain.ChartOfAccount) error

	// FindCOAByID retrieves a COA by id within a tenant. Returns
	// apperrors.ErrNotFound when missing or owned by another tenant.
	FindCOAByID(ctx context.Context, tenantID, coaID string) (*domain.ChartOfAccount, error)

	// FindCOAByCode retrieves a COA by its code within a tenant.
	FindCOAByCode(ctx context.Context, tenantID, code string) (*domain.ChartOfAccount, error)

	// ListCOA returns all COA rows for a tenant ordered by code.
	ListCOA(ctx context.Context, tenantID string, includeInactive bool) ([]domain.ChartOfAccount, error)

	// UpdateCOA persists name/description changes.
	UpdateCOA(ctx context.Context, coa domain.ChartOfAccount) error

	// DeactivateCOA soft-deletes a COA. COA rows are never hard-deleted.
	DeactivateCOA(ctx context.Context, tenantID, coaID, userID string, now time.Time) error

	// AggregateCOAFlows sums the transaction amounts feeding one COA's
	// balance: linked legs by coa_id plus label-only legs whose account label
	// matches displayLabel (case-insensitive, whitespace-trimmed).
	AggregateCOAFlows(ctx context.Context, tenantID, coaID, displayLabel string) (domain.COAFlows, error)
}
