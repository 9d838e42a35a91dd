package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod indicates how a rental sale was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentSplit    PaymentMethod = "SPLIT"
)

// RentalRecord is a point-of-sale source event recorded by an outlet. Each
// record produces one revenue-recognition leg plus one or more settlement legs
// in the target tenant's journal; TransactionIDs plus TargetTenantID is the
// sole linkage used to find and reverse those legs on edit or delete, so both
// are written in the same database transaction as the legs. TargetTenantID is
// captured at posting time: reversals must hit the ledger the legs actually
// live in, not whatever the posting-targets settings row says today.
type RentalRecord struct {
	RentalID       string          `json:"rentalID"`       // Primary Key (e.g., UUID)
	TenantID       string          `json:"tenantID"`       // Tenant that recorded the sale
	TargetTenantID string          `json:"targetTenantID"` // Ledger tenant the legs were posted into
	OutletID       string          `json:"outletID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	CustomerName   string          `json:"customerName"`
	ItemType       string          `json:"itemType"`
	Duration       int             `json:"duration"` // Rental duration units (e.g., hours)
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	CashAmount     decimal.Decimal `json:"cashAmount"`
	TransferAmount decimal.Decimal `json:"transferAmount"`
	TransactionIDs []string        `json:"transactionIDs"` // Journal legs this record produced
	AuditFields
}

// RentalPrice is a configured price row for an item/outlet/duration combination.
// A sale referencing a combination with no price row is rejected before posting.
type RentalPrice struct {
	PriceID  string          `json:"priceID"`
	TenantID string          `json:"tenantID"`
	OutletID string          `json:"outletID"`
	ItemType string          `json:"itemType"`
	Duration int             `json:"duration"`
	Price    decimal.Decimal `json:"price"`
	AuditFields
}
