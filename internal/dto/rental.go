package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// CreateRentalRequest defines the payload for recording a point-of-sale rental.
// The total amount comes from the configured price row for the item/outlet
// combination; for SPLIT sales CashAmount+TransferAmount must equal it.
type CreateRentalRequest struct {
	OutletID       string               `json:"outletID" binding:"required"`
	InvoiceNumber  string               `json:"invoiceNumber"`
	CustomerName   string               `json:"customerName"`
	ItemType       string               `json:"itemType" binding:"required"`
	Duration       int                  `json:"duration" binding:"required,gt=0"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER SPLIT"`
	CashAmount     decimal.Decimal      `json:"cashAmount"`
	TransferAmount decimal.Decimal      `json:"transferAmount"`
	SettledAt      *time.Time           `json:"settledAt"`
}

// UpdateRentalRequest defines the payload for editing a recorded sale. The old
// journal legs are reversed and fresh legs posted in one atomic unit.
type UpdateRentalRequest struct {
	OutletID       string               `json:"outletID" binding:"required"`
	InvoiceNumber  string               `json:"invoiceNumber"`
	CustomerName   string               `json:"customerName"`
	ItemType       string               `json:"itemType" binding:"required"`
	Duration       int                  `json:"duration" binding:"required,gt=0"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER SPLIT"`
	CashAmount     decimal.Decimal      `json:"cashAmount"`
	TransferAmount decimal.Decimal      `json:"transferAmount"`
	SettledAt      *time.Time           `json:"settledAt"`
}

// ListRentalsParams holds parameters for listing rental records.
type ListRentalsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
	OutletID  *string `form:"outletID"`
}

// RentalResponse defines the data returned for a rental record.
type RentalResponse struct {
	RentalID       string          `json:"rentalID"`
	OutletID       string          `json:"outletID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	CustomerName   string          `json:"customerName"`
	ItemType       string          `json:"itemType"`
	Duration       int             `json:"duration"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	CashAmount     decimal.Decimal `json:"cashAmount"`
	TransferAmount decimal.Decimal `json:"transferAmount"`
	TransactionIDs []string        `json:"transactionIDs"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListRentalsResponse is the paginated rental listing.
type ListRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToRentalResponse converts a domain.RentalRecord to RentalResponse DTO.
func ToRentalResponse(r *domain.RentalRecord) RentalResponse {
	return RentalResponse{
		RentalID:       r.RentalID,
		OutletID:       r.OutletID,
		InvoiceNumber:  r.InvoiceNumber,
		CustomerName:   r.CustomerName,
		ItemType:       r.ItemType,
		Duration:       r.Duration,
		TotalAmount:    r.TotalAmount,
		PaymentMethod:  string(r.PaymentMethod),
		CashAmount:     r.CashAmount,
		TransferAmount: r.TransferAmount,
		TransactionIDs: r.TransactionIDs,
		CreatedAt:      r.CreatedAt,
	}
}

// ToRentalResponses converts a slice of domain.RentalRecord to []RentalResponse.
func ToRentalResponses(rs []domain.RentalRecord) []RentalResponse {
	responses := make([]RentalResponse, len(rs))
	for i := range rs {
		responses[i] = ToRentalResponse(&rs[i])
	}
	return responses
}
