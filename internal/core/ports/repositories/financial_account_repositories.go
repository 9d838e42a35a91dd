package repositories

import (
	"context"
	"time"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// FinancialAccountRepositoryFacade defines persistence operations for cash/bank accounts.
// The cached balance column is never written through this interface; it is
// only mutated inside the transaction repository's atomic units.
type FinancialAccountRepositoryFacade interface {
	// SaveFinancialAccount inserts a new account row with a zero balance.
	SaveFinancialAccount(ctx context.Context, account domain.FinancialAccount) error

	// FindFinancialAccountByID retrieves an account by id within a tenant.
	FindFinancialAccountByID(ctx context.Context, tenantID, accountID string) (*domain.FinancialAccount, error)

	// FindFinancialAccountByName retrieves an active account whose name
	// matches case-insensitively within a tenant. Returns ErrNotFound when
	// nothing matches; callers treat that as the label-only fallback, not a
	// failure.
	FindFinancialAccountByName(ctx context.Context, tenantID, name string) (*domain.FinancialAccount, error)

	// ListFinancialAccounts returns all accounts for a tenant ordered by name.
	ListFinancialAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.FinancialAccount, error)

	// UpdateFinancialAccount persists name/bank metadata changes.
	UpdateFinancialAccount(ctx context.Context, account domain.FinancialAccount) error

	// DeactivateFinancialAccount soft-deletes an account.
	DeactivateFinancialAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error

	// AggregateAccountFlows sums settled IN/OUT amounts per account directly
	// from the transaction log, for the synthetic rows of the balance listing.
	AggregateAccountFlows(ctx context.Context, tenantID string) ([]domain.FinancialAccountFlow, error)
}
