package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for posting configuration.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// FindPostingTargets returns the tenant's posting_targets row. ErrNotFound
// signals the caller to fall back to the hardcoded defaults.
func (r *PgxSettingsRepository) FindPostingTargets(ctx context.Context, tenantID string) (*domain.PostingTargets, error) {
	query := `
		SELECT tenant_id, target_tenant_id, cash_account_id, transfer_account_id, receivable_coa_id, sales_coa_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM posting_targets
		WHERE tenant_id = $1;
	`
	var m models.PostingTargets
	err := r.Pool.QueryRow(ctx, query, tenantID).Scan(
		&m.TenantID,
		&m.TargetTenantID,
		&m.CashAccountID,
		&m.TransferAccountID,
		&m.ReceivableCOAID,
		&m.SalesCOAID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find posting targets for tenant "+tenantID, err)
	}

	targets := mapping.ToDomainPostingTargets(m)
	return &targets, nil
}
