package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/mapping"
)

type PgxCOARepository struct {
	BaseRepository
}

// newPgxCOARepository creates a new repository for chart-of-accounts data.
func newPgxCOARepository(pool *pgxpool.Pool) portsrepo.COARepositoryFacade {
	return &PgxCOARepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCOARepository implements portsrepo.COARepositoryFacade
var _ portsrepo.COARepositoryFacade = (*PgxCOARepository)(nil)

const coaColumns = `coa_id, tenant_id, code, name, account_type, normal_side, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCOA(row pgx.Row) (models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.COAID,
		&m.TenantID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.NormalSide,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCOA inserts a new chart-of-accounts entry.
func (r *PgxCOARepository) SaveCOA(ctx context.Context, coa domain.ChartOfAccount) error {
	modelCOA := mapping.ToModelCOA(coa)

	query := `
		INSERT INTO chart_of_accounts (` + coaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCOA.COAID,
		modelCOA.TenantID,
		modelCOA.Code,
		modelCOA.Name,
		modelCOA.AccountType,
		modelCOA.NormalSide,
		modelCOA.Description,
		modelCOA.IsActive,
		modelCOA.CreatedAt,
		modelCOA.CreatedBy,
		modelCOA.LastUpdatedAt,
		modelCOA.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account code %s already exists in tenant", apperrors.ErrDuplicate, modelCOA.Code)
		}
		return apperrors.NewAppError(500, "failed to save COA "+modelCOA.COAID, err)
	}
	return nil
}

// FindCOAByID retrieves a COA entry by its ID within a tenant.
func (r *PgxCOARepository) FindCOAByID(ctx context.Context, tenantID, coaID string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + coaColumns + ` FROM chart_of_accounts WHERE tenant_id = $1 AND coa_id = $2;`

	m, err := scanCOA(r.Pool.QueryRow(ctx, query, tenantID, coaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find COA by ID "+coaID, err)
	}

	domainCOA := mapping.ToDomainCOA(m)
	return &domainCOA, nil
}

// FindCOAByCode retrieves a COA entry by its code within a tenant.
func (r *PgxCOARepository) FindCOAByCode(ctx context.Context, tenantID, code string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + coaColumns + ` FROM chart_of_accounts WHERE tenant_id = $1 AND code = $2;`

	m, err := scanCOA(r.Pool.QueryRow(ctx, query, tenantID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find COA by code "+code, err)
	}

	domainCOA := mapping.ToDomainCOA(m)
	return &domainCOA, nil
}

// ListCOA returns the tenant's chart of accounts ordered by code.
func (r *PgxCOARepository) ListCOA(ctx context.Context, tenantID string, includeInactive bool) ([]domain.ChartOfAccount, error) {
	query := `SELECT ` + coaColumns + ` FROM chart_of_accounts WHERE tenant_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query COA list for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelCOAs := []models.ChartOfAccount{}
	for rows.Next() {
		m, scanErr := scanCOA(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan COA row", scanErr)
		}
		modelCOAs = append(modelCOAs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating COA rows", err)
	}

	return mapping.ToDomainCOASlice(modelCOAs), nil
}

// UpdateCOA persists name/description changes to a COA entry.
func (r *PgxCOARepository) UpdateCOA(ctx context.Context, coa domain.ChartOfAccount) error {
	modelCOA := mapping.ToModelCOA(coa)

	query := `
		UPDATE chart_of_accounts
		SET name = $3,
		    description = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE tenant_id = $1 AND coa_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCOA.TenantID,
		modelCOA.COAID,
		modelCOA.Name,
		modelCOA.Description,
		modelCOA.LastUpdatedAt,
		modelCOA.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update COA "+modelCOA.COAID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("COA " + modelCOA.COAID + " not found for update")
	}
	return nil
}

// DeactivateCOA soft-deletes a COA entry. COA rows are never hard-deleted so
// historical transactions keep a resolvable reference.
func (r *PgxCOARepository) DeactivateCOA(ctx context.Context, tenantID, coaID, userID string, now time.Time) error {
	query := `
		UPDATE chart_of_accounts
		SET is_active = FALSE,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE tenant_id = $1 AND coa_id = $2 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, coaID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate COA "+coaID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("COA " + coaID + " not found for deactivation")
	}
	return nil
}

// AggregateCOAFlows sums the settled transaction amounts feeding one COA's
// balance. Linked flows match on coa_id; labeled flows match rows with no
// account linkage whose account label equals the COA's display label
// (case-insensitive, whitespace-trimmed). A labeled row may still carry a
// coa_id pointing at a different COA: a rental recognition leg credits the
// sales COA while its label debits the receivable, so the labeled branches
// must not require coa_id to be null.
func (r *PgxCOARepository) AggregateCOAFlows(ctx context.Context, tenantID, coaID, displayLabel string) (domain.COAFlows, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN coa_id = $2 AND direction = 'IN'  THEN amount ELSE 0 END), 0) AS linked_in,
			COALESCE(SUM(CASE WHEN coa_id = $2 AND direction = 'OUT' THEN amount ELSE 0 END), 0) AS linked_out,
			COALESCE(SUM(CASE WHEN account_id IS NULL
				AND LOWER(TRIM(account_label)) = LOWER(TRIM($3)) AND direction = 'IN'  THEN amount ELSE 0 END), 0) AS labeled_in,
			COALESCE(SUM(CASE WHEN account_id IS NULL
				AND LOWER(TRIM(account_label)) = LOWER(TRIM($3)) AND direction = 'OUT' THEN amount ELSE 0 END), 0) AS labeled_out
		FROM transactions
		WHERE tenant_id = $1 AND status = 'PAID';
	`
	var flows domain.COAFlows
	err := r.Pool.QueryRow(ctx, query, tenantID, coaID, displayLabel).Scan(
		&flows.LinkedIn,
		&flows.LinkedOut,
		&flows.LabeledIn,
		&flows.LabeledOut,
	)
	if err != nil {
		return domain.COAFlows{}, apperrors.NewAppError(500, "failed to aggregate flows for COA "+coaID, err)
	}
	return flows, nil
}
