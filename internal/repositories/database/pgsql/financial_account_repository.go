package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/mapping"
)

type PgxFinancialAccountRepository struct {
	BaseRepository
}

// newPgxFinancialAccountRepository creates a new repository for financial account data.
func newPgxFinancialAccountRepository(pool *pgxpool.Pool) portsrepo.FinancialAccountRepositoryFacade {
	return &PgxFinancialAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFinancialAccountRepository implements portsrepo.FinancialAccountRepositoryFacade
var _ portsrepo.FinancialAccountRepositoryFacade = (*PgxFinancialAccountRepository)(nil)

const financialAccountColumns = `account_id, tenant_id, name, bank_name, account_number, balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanFinancialAccount(row pgx.Row) (models.FinancialAccount, error) {
	var m models.FinancialAccount
	err := row.Scan(
		&m.AccountID,
		&m.TenantID,
		&m.Name,
		&m.BankName,
		&m.AccountNumber,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveFinancialAccount inserts a new account row.
func (r *PgxFinancialAccountRepository) SaveFinancialAccount(ctx context.Context, account domain.FinancialAccount) error {
	modelAcc := mapping.ToModelFinancialAccount(account)

	query := `
		INSERT INTO financial_accounts (` + financialAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.TenantID,
		modelAcc.Name,
		modelAcc.BankName,
		modelAcc.AccountNumber,
		modelAcc.Balance,
		modelAcc.IsActive,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: financial account %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return apperrors.NewAppError(500, "failed to save financial account "+modelAcc.AccountID, err)
	}
	return nil
}

// FindFinancialAccountByID retrieves an account by its ID within a tenant.
func (r *PgxFinancialAccountRepository) FindFinancialAccountByID(ctx context.Context, tenantID, accountID string) (*domain.FinancialAccount, error) {
	query := `SELECT ` + financialAccountColumns + ` FROM financial_accounts WHERE tenant_id = $1 AND account_id = $2;`

	m, err := scanFinancialAccount(r.Pool.QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find financial account by ID "+accountID, err)
	}

	domainAcc := mapping.ToDomainFinancialAccount(m)
	return &domainAcc, nil
}

// FindFinancialAccountByName retrieves an active account whose name matches
// case-insensitively within a tenant.
func (r *PgxFinancialAccountRepository) FindFinancialAccountByName(ctx context.Context, tenantID, name string) (*domain.FinancialAccount, error) {
	query := `
		SELECT ` + financialAccountColumns + `
		FROM financial_accounts
		WHERE tenant_id = $1 AND is_active = TRUE AND LOWER(TRIM(name)) = LOWER(TRIM($2))
		LIMIT 1;
	`
	m, err := scanFinancialAccount(r.Pool.QueryRow(ctx, query, tenantID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find financial account by name", err)
	}

	domainAcc := mapping.ToDomainFinancialAccount(m)
	return &domainAcc, nil
}

// ListFinancialAccounts returns the tenant's accounts ordered by name.
func (r *PgxFinancialAccountRepository) ListFinancialAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.FinancialAccount, error) {
	query := `SELECT ` + financialAccountColumns + ` FROM financial_accounts WHERE tenant_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query financial accounts for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelAccs := []models.FinancialAccount{}
	for rows.Next() {
		m, scanErr := scanFinancialAccount(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan financial account row", scanErr)
		}
		modelAccs = append(modelAccs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating financial account rows", err)
	}

	return mapping.ToDomainFinancialAccountSlice(modelAccs), nil
}

// UpdateFinancialAccount persists name/bank metadata changes. The balance
// column is deliberately excluded; it only moves inside journal write units.
func (r *PgxFinancialAccountRepository) UpdateFinancialAccount(ctx context.Context, account domain.FinancialAccount) error {
	modelAcc := mapping.ToModelFinancialAccount(account)

	query := `
		UPDATE financial_accounts
		SET name = $3,
		    bank_name = $4,
		    account_number = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE tenant_id = $1 AND account_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelAcc.TenantID,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.BankName,
		modelAcc.AccountNumber,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update financial account "+modelAcc.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("financial account " + modelAcc.AccountID + " not found for update")
	}
	return nil
}

// DeactivateFinancialAccount soft-deletes an account.
func (r *PgxFinancialAccountRepository) DeactivateFinancialAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error {
	query := `
		UPDATE financial_accounts
		SET is_active = FALSE,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE tenant_id = $1 AND account_id = $2 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, accountID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate financial account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("financial account " + accountID + " not found for deactivation")
	}
	return nil
}

// AggregateAccountFlows sums settled IN/OUT amounts per active account
// directly from the transaction log, bypassing the cached balance column.
func (r *PgxFinancialAccountRepository) AggregateAccountFlows(ctx context.Context, tenantID string) ([]domain.FinancialAccountFlow, error) {
	query := `
		SELECT fa.account_id, fa.name,
		       COALESCE(SUM(CASE WHEN t.direction = 'IN'  THEN t.amount ELSE 0 END), 0) AS total_in,
		       COALESCE(SUM(CASE WHEN t.direction = 'OUT' THEN t.amount ELSE 0 END), 0) AS total_out
		FROM financial_accounts fa
		LEFT JOIN transactions t
		       ON t.tenant_id = fa.tenant_id AND t.account_id = fa.account_id AND t.status = 'PAID'
		WHERE fa.tenant_id = $1 AND fa.is_active = TRUE
		GROUP BY fa.account_id, fa.name
		ORDER BY fa.name;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate account flows for tenant "+tenantID, err)
	}
	defer rows.Close()

	flows := []domain.FinancialAccountFlow{}
	for rows.Next() {
		var f domain.FinancialAccountFlow
		if scanErr := rows.Scan(&f.AccountID, &f.Name, &f.TotalIn, &f.TotalOut); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account flow row", scanErr)
		}
		flows = append(flows, f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account flow rows", err)
	}

	return flows, nil
}

// balanceKey identifies one financial account balance within one tenant's
// ledger. Rental postings can touch accounts in a tenant other than the
// origin, so the tenant is part of the key.
type balanceKey struct {
	TenantID  string
	AccountID string
}

// lockAccountsForUpdate locks the target account rows inside tx so concurrent
// journal writes serialize on the balances they touch. Returns ErrNotFound if
// any account is missing.
func lockAccountsForUpdate(ctx context.Context, tx pgx.Tx, keys []balanceKey) error {
	for _, k := range keys {
		var accountID string
		err := tx.QueryRow(ctx,
			`SELECT account_id FROM financial_accounts WHERE tenant_id = $1 AND account_id = $2 FOR UPDATE;`,
			k.TenantID, k.AccountID,
		).Scan(&accountID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: financial account %s", apperrors.ErrNotFound, k.AccountID)
			}
			return apperrors.NewAppError(500, "failed to lock financial account "+k.AccountID, err)
		}
	}
	return nil
}

// applyBalanceDeltasInTx applies signed balance deltas to the locked account
// rows. Callers must hold the row locks via lockAccountsForUpdate first.
func applyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[balanceKey]decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE financial_accounts
		SET balance = balance + $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE tenant_id = $1 AND account_id = $2;
	`
	for k, delta := range deltas {
		if delta.IsZero() {
			continue
		}
		cmdTag, err := tx.Exec(ctx, query, k.TenantID, k.AccountID, delta, now, userID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to apply balance delta to account "+k.AccountID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: financial account %s", apperrors.ErrNotFound, k.AccountID)
		}
	}
	return nil
}

// collectBalanceDeltas aggregates the cash effects of a batch of transactions
// into per-account deltas. Transactions with no effect contribute nothing.
func collectBalanceDeltas(txns []domain.Transaction) map[balanceKey]decimal.Decimal {
	deltas := make(map[balanceKey]decimal.Decimal)
	for _, txn := range txns {
		effect := txn.CashEffect()
		if effect.IsZero() {
			continue
		}
		k := balanceKey{TenantID: txn.TenantID, AccountID: *txn.Counterparty.AccountID}
		deltas[k] = deltas[k].Add(effect)
	}
	return deltas
}

// sortedBalanceKeys returns the delta keys in a deterministic order so
// concurrent units lock account rows in the same sequence.
func sortedBalanceKeys(deltas map[balanceKey]decimal.Decimal) []balanceKey {
	keys := make([]balanceKey, 0, len(deltas))
	for k := range deltas {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TenantID != keys[j].TenantID {
			return keys[i].TenantID < keys[j].TenantID
		}
		return keys[i].AccountID < keys[j].AccountID
	})
	return keys
}
