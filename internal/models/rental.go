package models

import "github.com/shopspring/decimal"

// RentalRecord represents a rental_records row (point-of-sale source event).
// TransactionIDs mirrors the text[] column linking the record to its journal legs.
type RentalRecord struct {
	RentalID       string          `db:"rental_id"`
	TenantID       string          `db:"tenant_id"`
	TargetTenantID string          `db:"target_tenant_id"`
	OutletID       string          `db:"outlet_id"`
	InvoiceNumber  string          `db:"invoice_number"`
	CustomerName   string          `db:"customer_name"`
	ItemType       string          `db:"item_type"`
	Duration       int             `db:"duration"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaymentMethod  string          `db:"payment_method"` // CASH, TRANSFER, SPLIT
	CashAmount     decimal.Decimal `db:"cash_amount"`
	TransferAmount decimal.Decimal `db:"transfer_amount"`
	TransactionIDs []string        `db:"transaction_ids"`
	AuditFields
}

// RentalPrice represents a rental_prices row.
type RentalPrice struct {
	PriceID  string          `db:"price_id"`
	TenantID string          `db:"tenant_id"`
	OutletID string          `db:"outlet_id"`
	ItemType string          `db:"item_type"`
	Duration int             `db:"duration"`
	Price    decimal.Decimal `db:"price"`
	AuditFields
}
