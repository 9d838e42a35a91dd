package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/mapping"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for journal transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, tenant_id, date, amount, direction, status, description, account_id, account_label, coa_id, category_label, business_unit_id, contact_name, due_date, created_at, created_by, last_updated_at, last_updated_by`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TenantID,
		&m.Date,
		&m.Amount,
		&m.Direction,
		&m.Status,
		&m.Description,
		&m.AccountID,
		&m.AccountLabel,
		&m.COAID,
		&m.CategoryLabel,
		&m.BusinessUnitID,
		&m.ContactName,
		&m.DueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertTransactionArgs(m models.Transaction) []interface{} {
	return []interface{}{
		m.TransactionID,
		m.TenantID,
		m.Date,
		m.Amount,
		m.Direction,
		m.Status,
		m.Description,
		m.AccountID,
		m.AccountLabel,
		m.COAID,
		m.CategoryLabel,
		m.BusinessUnitID,
		m.ContactName,
		m.DueDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// insertTransactionsInTx inserts the rows, locks the affected account
// balances and applies the aggregated deltas, all within the caller's tx.
func insertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction, userID string, now time.Time) error {
	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(insertTransactionQuery, insertTransactionArgs(mapping.ToModelTransaction(txn))...)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute transaction insert batch", err)
	}

	deltas := collectBalanceDeltas(txns)
	if len(deltas) == 0 {
		return nil
	}
	if err := lockAccountsForUpdate(ctx, tx, sortedBalanceKeys(deltas)); err != nil {
		return err
	}
	return applyBalanceDeltasInTx(ctx, tx, deltas, userID, now)
}

// reverseTransactionsInTx reverses the cash effects of the given rows and
// deletes them, within the caller's tx. Used by the rental posting path.
func reverseTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction, userID string, now time.Time) error {
	deltas := collectBalanceDeltas(txns)
	for k := range deltas {
		deltas[k] = deltas[k].Neg()
	}
	if len(deltas) > 0 {
		if err := lockAccountsForUpdate(ctx, tx, sortedBalanceKeys(deltas)); err != nil {
			return err
		}
		if err := applyBalanceDeltasInTx(ctx, tx, deltas, userID, now); err != nil {
			return err
		}
	}

	for _, txn := range txns {
		_, err := tx.Exec(ctx,
			`DELETE FROM transactions WHERE tenant_id = $1 AND transaction_id = $2;`,
			txn.TenantID, txn.TransactionID,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to delete transaction "+txn.TransactionID, err)
		}
	}
	return nil
}

// SaveTransaction inserts one row and applies its cash effect atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransactionsInTx(ctx, tx, []domain.Transaction{txn}, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction within a tenant.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, tenantID, txnID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1 AND transaction_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, tenantID, txnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+txnID, err)
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// UpdateTransaction locks the current row, reverses its old cash effect,
// persists the new field values and applies the new effect, all in one
// database transaction. The old and new effects may target different accounts.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1 AND transaction_id = $2 FOR UPDATE;`
	oldModel, err := scanTransaction(tx.QueryRow(ctx, lockQuery, txn.TenantID, txn.TransactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock transaction "+txn.TransactionID, err)
	}
	oldTxn := mapping.ToDomainTransaction(oldModel)

	modelTxn := mapping.ToModelTransaction(txn)
	updateQuery := `
		UPDATE transactions
		SET date = $3,
		    amount = $4,
		    direction = $5,
		    status = $6,
		    description = $7,
		    account_id = $8,
		    account_label = $9,
		    coa_id = $10,
		    category_label = $11,
		    business_unit_id = $12,
		    contact_name = $13,
		    due_date = $14,
		    last_updated_at = $15,
		    last_updated_by = $16
		WHERE tenant_id = $1 AND transaction_id = $2;
	`
	_, err = tx.Exec(ctx, updateQuery,
		modelTxn.TenantID,
		modelTxn.TransactionID,
		modelTxn.Date,
		modelTxn.Amount,
		modelTxn.Direction,
		modelTxn.Status,
		modelTxn.Description,
		modelTxn.AccountID,
		modelTxn.AccountLabel,
		modelTxn.COAID,
		modelTxn.CategoryLabel,
		modelTxn.BusinessUnitID,
		modelTxn.ContactName,
		modelTxn.DueDate,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+modelTxn.TransactionID, err)
	}

	deltas := make(map[balanceKey]decimal.Decimal)
	if oldEffect := oldTxn.CashEffect(); !oldEffect.IsZero() {
		k := balanceKey{TenantID: oldTxn.TenantID, AccountID: *oldTxn.Counterparty.AccountID}
		deltas[k] = deltas[k].Sub(oldEffect)
	}
	if newEffect := txn.CashEffect(); !newEffect.IsZero() {
		k := balanceKey{TenantID: txn.TenantID, AccountID: *txn.Counterparty.AccountID}
		deltas[k] = deltas[k].Add(newEffect)
	}
	if len(deltas) > 0 {
		if err := lockAccountsForUpdate(ctx, tx, sortedBalanceKeys(deltas)); err != nil {
			return err
		}
		if err := applyBalanceDeltasInTx(ctx, tx, deltas, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction locks the row, reverses its cash effect and deletes it
// atomically. Returns ErrNotFound for a missing row.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, tenantID, txnID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1 AND transaction_id = $2 FOR UPDATE;`
	m, err := scanTransaction(tx.QueryRow(ctx, lockQuery, tenantID, txnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock transaction "+txnID, err)
	}
	txn := mapping.ToDomainTransaction(m)

	if err := reverseTransactionsInTx(ctx, tx, []domain.Transaction{txn}, txn.LastUpdatedBy, time.Now().UTC()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListTransactions returns a filtered, cursor-paginated listing ordered by
// (date DESC, created_at DESC).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, tenantID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	appendFilter := func(clause string, value interface{}) {
		args = append(args, value)
		query += ` AND ` + clause + `$` + strconv.Itoa(len(args))
	}

	if params.Status != nil && *params.Status != "" {
		appendFilter(`status = `, *params.Status)
	}
	if params.Direction != nil && *params.Direction != "" {
		appendFilter(`direction = `, *params.Direction)
	}
	if params.AccountID != nil && *params.AccountID != "" {
		appendFilter(`account_id = `, *params.AccountID)
	}
	if params.BusinessUnitID != nil && *params.BusinessUnitID != "" {
		appendFilter(`business_unit_id = `, *params.BusinessUnitID)
	}
	if params.StartDate != nil {
		appendFilter(`date >= `, *params.StartDate)
	}
	if params.EndDate != nil {
		appendFilter(`date <= `, *params.EndDate)
	}

	if params.NextToken != nil && *params.NextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*params.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", scanErr)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	results := modelTxns
	if len(modelTxns) > limit {
		lastTxn := modelTxns[limit-1]
		token := pagination.EncodeToken(lastTxn.Date, lastTxn.CreatedAt)
		nextTokenVal = &token
		results = modelTxns[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// SaveTransactionsBatch inserts all rows and applies their aggregated cash
// effects inside one database transaction (bulk import path).
func (r *PgxTransactionRepository) SaveTransactionsBatch(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransactionsInTx(ctx, tx, txns, txns[0].CreatedBy, txns[0].CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// HasDuplicate reports whether a row with the same account linkage, amount,
// description and calendar day already exists in the tenant's journal.
func (r *PgxTransactionRepository) HasDuplicate(ctx context.Context, tenantID string, accountID *string, amount decimal.Decimal, description string, day time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE tenant_id = $1
			  AND account_id IS NOT DISTINCT FROM $2
			  AND amount = $3
			  AND description = $4
			  AND date_trunc('day', date) = date_trunc('day', $5::timestamptz)
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, tenantID, accountID, amount, description, day).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check transaction duplicate", err)
	}
	return exists, nil
}

// SumCashBefore returns the signed sum of settled amounts dated strictly
// before the given time. The label match is case-insensitive; rows linked by
// account_id match regardless of their stored label, which was frozen at
// write time and goes stale when the account is renamed.
func (r *PgxTransactionRepository) SumCashBefore(ctx context.Context, tenantID, accountLabel string, accountID *string, businessUnitID *string, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'OUT' THEN -amount ELSE amount END), 0)
		FROM transactions
		WHERE tenant_id = $1
		  AND status = 'PAID'
		  AND (LOWER(TRIM(account_label)) = LOWER(TRIM($2)) OR account_id = $3)
		  AND date < $4
	`
	args := []interface{}{tenantID, accountLabel, accountID, before}
	if businessUnitID != nil && *businessUnitID != "" {
		args = append(args, *businessUnitID)
		query += ` AND business_unit_id = $5`
	}
	query += `;`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum opening balance", err)
	}
	return sum, nil
}

// FindForStatement returns settled transactions in [start, end] with the same
// filters as SumCashBefore, ordered chronologically. The status filter matches
// the opening-balance query so a running balance recomputed from the rows
// always reconciles with openingBalance.
func (r *PgxTransactionRepository) FindForStatement(ctx context.Context, tenantID, accountLabel string, accountID *string, businessUnitID *string, start, end time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE tenant_id = $1
		  AND status = 'PAID'
		  AND (LOWER(TRIM(account_label)) = LOWER(TRIM($2)) OR account_id = $3)
		  AND date >= $4
		  AND date <= $5
	`
	args := []interface{}{tenantID, accountLabel, accountID, start, end}
	if businessUnitID != nil && *businessUnitID != "" {
		args = append(args, *businessUnitID)
		query += ` AND business_unit_id = $6`
	}
	query += ` ORDER BY date ASC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query statement transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan statement transaction row", scanErr)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating statement transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
