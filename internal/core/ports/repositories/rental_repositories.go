package repositories

import (
	"context"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// RentalRepositoryFacade defines persistence for rental sales and their
// journal legs. Legs may live in a different tenant than the rental record
// (cross-tenant posting); every method that writes legs also applies their
// settlement balance deltas and keeps transaction_ids in sync, all inside one
// database transaction.
type RentalRepositoryFacade interface {
	// SaveRentalWithLegs inserts all legs, applies their cash effects, and
	// inserts the rental record with its transaction_ids, atomically.
	SaveRentalWithLegs(ctx context.Context, rental domain.RentalRecord, legs []domain.Transaction) error

	// ReplaceRentalLegs reverses and deletes the old legs, posts the new
	// ones, and updates the rental record, all in one database transaction.
	ReplaceRentalLegs(ctx context.Context, rental domain.RentalRecord, oldLegs []domain.Transaction, newLegs []domain.Transaction) error

	// DeleteRentalWithLegs reverses and deletes the legs and the rental
	// record atomically.
	DeleteRentalWithLegs(ctx context.Context, rental domain.RentalRecord, legs []domain.Transaction) error

	// FindRentalByID retrieves a rental record within a tenant.
	FindRentalByID(ctx context.Context, tenantID, rentalID string) (*domain.RentalRecord, error)

	// ListRentals returns a cursor-paginated listing of rental records.
	ListRentals(ctx context.Context, tenantID string, params dto.ListRentalsParams) ([]domain.RentalRecord, *string, error)

	// FindLegsByIDs fetches the journal legs a rental produced from the
	// target tenant's ledger.
	FindLegsByIDs(ctx context.Context, tenantID string, txnIDs []string) ([]domain.Transaction, error)

	// FindRentalPrice looks up the configured price row for an
	// item/outlet/duration combination. Returns ErrNotFound when the
	// combination has no price configured.
	FindRentalPrice(ctx context.Context, tenantID, outletID, itemType string, duration int) (*domain.RentalPrice, error)
}

// SettingsRepositoryFacade reads per-tenant posting configuration.
type SettingsRepositoryFacade interface {
	// FindPostingTargets returns the tenant's posting_targets row, or
	// ErrNotFound when the tenant relies on the hardcoded defaults.
	FindPostingTargets(ctx context.Context, tenantID string) (*domain.PostingTargets, error)
}
