package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// TransactionRepositoryFacade defines persistence operations for the journal.
// Every mutating method runs the journal row(s) and the implied financial
// account balance deltas in one database transaction: a failed balance update
// rolls back the whole unit, there is no observable state where the journal
// and the cached balance disagree.
type TransactionRepositoryFacade interface {
	// SaveTransaction inserts the row and applies its cash effect (if any) to
	// the linked financial account balance atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a transaction within a tenant.
	FindTransactionByID(ctx context.Context, tenantID, txnID string) (*domain.Transaction, error)

	// UpdateTransaction locks the current row, reverses its old cash effect,
	// persists the new field values, and applies the new cash effect, all in
	// one database transaction. Returns ErrNotFound for a missing row.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction locks the row, reverses its cash effect and deletes
	// it atomically. Returns ErrNotFound for a missing row.
	DeleteTransaction(ctx context.Context, tenantID, txnID string) error

	// ListTransactions returns a filtered, cursor-paginated listing ordered
	// by (date DESC, created_at DESC).
	ListTransactions(ctx context.Context, tenantID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// SaveTransactionsBatch inserts all rows and applies their aggregated
	// cash effects inside one outer database transaction (bulk import path).
	SaveTransactionsBatch(ctx context.Context, txns []domain.Transaction) error

	// HasDuplicate reports whether a row with the same account, amount,
	// description and day already exists (bulk import duplicate detection).
	HasDuplicate(ctx context.Context, tenantID string, accountID *string, amount decimal.Decimal, description string, day time.Time) (bool, error)

	// SumCashBefore returns the signed sum of settled amounts dated strictly
	// before the given time (statement opening balance). Rows match on the
	// stored label or, when accountID is non-nil, on their account linkage;
	// linked rows keep matching after the account is renamed.
	SumCashBefore(ctx context.Context, tenantID, accountLabel string, accountID *string, businessUnitID *string, before time.Time) (decimal.Decimal, error)

	// FindForStatement returns settled transactions in [start, end] with the
	// same filters as SumCashBefore, ordered by (date ASC, created_at ASC).
	FindForStatement(ctx context.Context, tenantID, accountLabel string, accountID *string, businessUnitID *string, start, end time.Time) ([]domain.Transaction, error)
}
