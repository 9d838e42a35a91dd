package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/mapping"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils/pagination"
)

type PgxRentalRepository struct {
	BaseRepository
}

// newPgxRentalRepository creates a new repository for rental sale data.
func newPgxRentalRepository(pool *pgxpool.Pool) portsrepo.RentalRepositoryFacade {
	return &PgxRentalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRentalRepository implements portsrepo.RentalRepositoryFacade
var _ portsrepo.RentalRepositoryFacade = (*PgxRentalRepository)(nil)

const rentalColumns = `rental_id, tenant_id, target_tenant_id, outlet_id, invoice_number, customer_name, item_type, duration, total_amount, payment_method, cash_amount, transfer_amount, transaction_ids, created_at, created_by, last_updated_at, last_updated_by`

func scanRental(row pgx.Row) (models.RentalRecord, error) {
	var m models.RentalRecord
	err := row.Scan(
		&m.RentalID,
		&m.TenantID,
		&m.TargetTenantID,
		&m.OutletID,
		&m.InvoiceNumber,
		&m.CustomerName,
		&m.ItemType,
		&m.Duration,
		&m.TotalAmount,
		&m.PaymentMethod,
		&m.CashAmount,
		&m.TransferAmount,
		&m.TransactionIDs,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRentalWithLegs inserts the journal legs, applies their cash effects and
// inserts the rental record, all inside one database transaction. The legs may
// target a different tenant's ledger than the rental record itself.
func (r *PgxRentalRepository) SaveRentalWithLegs(ctx context.Context, rental domain.RentalRecord, legs []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransactionsInTx(ctx, tx, legs, rental.CreatedBy, rental.CreatedAt); err != nil {
		return err
	}

	modelRental := mapping.ToModelRentalRecord(rental)
	query := `
		INSERT INTO rental_records (` + rentalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, query,
		modelRental.RentalID,
		modelRental.TenantID,
		modelRental.TargetTenantID,
		modelRental.OutletID,
		modelRental.InvoiceNumber,
		modelRental.CustomerName,
		modelRental.ItemType,
		modelRental.Duration,
		modelRental.TotalAmount,
		modelRental.PaymentMethod,
		modelRental.CashAmount,
		modelRental.TransferAmount,
		modelRental.TransactionIDs,
		modelRental.CreatedAt,
		modelRental.CreatedBy,
		modelRental.LastUpdatedAt,
		modelRental.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: rental %s already exists", apperrors.ErrDuplicate, modelRental.RentalID)
		}
		return apperrors.NewAppError(500, "failed to save rental "+modelRental.RentalID, err)
	}

	return r.Commit(ctx, tx)
}

// ReplaceRentalLegs reverses and deletes the old legs, posts the new ones and
// updates the rental record, all in one database transaction. A failure at any
// step leaves the prior posting intact.
func (r *PgxRentalRepository) ReplaceRentalLegs(ctx context.Context, rental domain.RentalRecord, oldLegs []domain.Transaction, newLegs []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := reverseTransactionsInTx(ctx, tx, oldLegs, rental.LastUpdatedBy, rental.LastUpdatedAt); err != nil {
		return err
	}
	if err := insertTransactionsInTx(ctx, tx, newLegs, rental.LastUpdatedBy, rental.LastUpdatedAt); err != nil {
		return err
	}

	modelRental := mapping.ToModelRentalRecord(rental)
	query := `
		UPDATE rental_records
		SET target_tenant_id = $3,
		    outlet_id = $4,
		    invoice_number = $5,
		    customer_name = $6,
		    item_type = $7,
		    duration = $8,
		    total_amount = $9,
		    payment_method = $10,
		    cash_amount = $11,
		    transfer_amount = $12,
		    transaction_ids = $13,
		    last_updated_at = $14,
		    last_updated_by = $15
		WHERE tenant_id = $1 AND rental_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelRental.TenantID,
		modelRental.RentalID,
		modelRental.TargetTenantID,
		modelRental.OutletID,
		modelRental.InvoiceNumber,
		modelRental.CustomerName,
		modelRental.ItemType,
		modelRental.Duration,
		modelRental.TotalAmount,
		modelRental.PaymentMethod,
		modelRental.CashAmount,
		modelRental.TransferAmount,
		modelRental.TransactionIDs,
		modelRental.LastUpdatedAt,
		modelRental.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update rental "+modelRental.RentalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("rental " + modelRental.RentalID + " not found for update")
	}

	return r.Commit(ctx, tx)
}

// DeleteRentalWithLegs reverses and deletes the legs and the rental record
// atomically. Callers pass an empty legs slice to delete the record alone.
func (r *PgxRentalRepository) DeleteRentalWithLegs(ctx context.Context, rental domain.RentalRecord, legs []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := reverseTransactionsInTx(ctx, tx, legs, rental.LastUpdatedBy, rental.LastUpdatedAt); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM rental_records WHERE tenant_id = $1 AND rental_id = $2;`,
		rental.TenantID, rental.RentalID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete rental "+rental.RentalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("rental " + rental.RentalID + " not found for deletion")
	}

	return r.Commit(ctx, tx)
}

// FindRentalByID retrieves a rental record within a tenant.
func (r *PgxRentalRepository) FindRentalByID(ctx context.Context, tenantID, rentalID string) (*domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_records WHERE tenant_id = $1 AND rental_id = $2;`

	m, err := scanRental(r.Pool.QueryRow(ctx, query, tenantID, rentalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rental by ID "+rentalID, err)
	}

	domainRental := mapping.ToDomainRentalRecord(m)
	return &domainRental, nil
}

// ListRentals returns a cursor-paginated listing ordered by creation time.
func (r *PgxRentalRepository) ListRentals(ctx context.Context, tenantID string, params dto.ListRentalsParams) ([]domain.RentalRecord, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + rentalColumns + ` FROM rental_records WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if params.OutletID != nil && *params.OutletID != "" {
		args = append(args, *params.OutletID)
		query += ` AND outlet_id = $` + strconv.Itoa(len(args))
	}

	if params.NextToken != nil && *params.NextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*params.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt)
		query += ` AND created_at < $` + strconv.Itoa(len(args))
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query rentals for tenant "+tenantID, err)
	}
	defer rows.Close()

	modelRentals := make([]models.RentalRecord, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanRental(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan rental row", scanErr)
		}
		modelRentals = append(modelRentals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating rental rows", err)
	}

	var nextTokenVal *string
	results := modelRentals
	if len(modelRentals) > limit {
		token := pagination.EncodeDateBasedToken(modelRentals[limit-1].CreatedAt)
		nextTokenVal = &token
		results = modelRentals[:limit]
	}

	return mapping.ToDomainRentalRecordSlice(results), nextTokenVal, nil
}

// FindLegsByIDs fetches the journal legs a rental produced from the target
// tenant's ledger. Missing ids are simply absent from the result.
func (r *PgxRentalRepository) FindLegsByIDs(ctx context.Context, tenantID string, txnIDs []string) ([]domain.Transaction, error) {
	if len(txnIDs) == 0 {
		return []domain.Transaction{}, nil
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1 AND transaction_id = ANY($2);`

	rows, err := r.Pool.Query(ctx, query, tenantID, txnIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rental legs", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rental leg row", scanErr)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rental leg rows", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// FindRentalPrice looks up the configured price row for an item/outlet/duration
// combination.
func (r *PgxRentalRepository) FindRentalPrice(ctx context.Context, tenantID, outletID, itemType string, duration int) (*domain.RentalPrice, error) {
	query := `
		SELECT price_id, tenant_id, outlet_id, item_type, duration, price, created_at, created_by, last_updated_at, last_updated_by
		FROM rental_prices
		WHERE tenant_id = $1 AND outlet_id = $2 AND item_type = $3 AND duration = $4;
	`
	var m models.RentalPrice
	err := r.Pool.QueryRow(ctx, query, tenantID, outletID, itemType, duration).Scan(
		&m.PriceID,
		&m.TenantID,
		&m.OutletID,
		&m.ItemType,
		&m.Duration,
		&m.Price,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rental price", err)
	}

	domainPrice := mapping.ToDomainRentalPrice(m)
	return &domainPrice, nil
}
