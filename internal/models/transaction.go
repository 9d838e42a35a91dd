package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transactions row: one money-movement record.
// AccountID/COAID are nullable; label columns carry the free-text fallback
// identity for rows with no real linkage.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	TenantID       string          `db:"tenant_id"`
	Date           time.Time       `db:"date"`
	Amount         decimal.Decimal `db:"amount"`
	Direction      string          `db:"direction"` // IN or OUT
	Status         string          `db:"status"`    // PAID or UNPAID
	Description    string          `db:"description"`
	AccountID      *string         `db:"account_id"` // Nullable FK -> financial_accounts
	AccountLabel   string          `db:"account_label"`
	COAID          *string         `db:"coa_id"` // Nullable FK -> chart_of_accounts
	CategoryLabel  string          `db:"category_label"`
	BusinessUnitID *string         `db:"business_unit_id"`
	ContactName    string          `db:"contact_name"`
	DueDate        *time.Time      `db:"due_date"`
	AuditFields
}
