package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// CreateTransactionRequest defines the payload for creating a transaction.
// AccountLabel is resolved against financial account names case-insensitively;
// rows whose label matches nothing stay label-only (the general-journal path).
type CreateTransactionRequest struct {
	Date           time.Time                `json:"date" binding:"required"`
	Amount         decimal.Decimal          `json:"amount" binding:"required"`
	Direction      domain.Direction         `json:"direction" binding:"required,oneof=IN OUT"`
	Status         domain.TransactionStatus `json:"status" binding:"required,oneof=PAID UNPAID"`
	Description    string                   `json:"description"`
	AccountLabel   string                   `json:"accountLabel"`
	COAID          *string                  `json:"coaID"`
	CategoryLabel  string                   `json:"categoryLabel"`
	BusinessUnitID *string                  `json:"businessUnitID"`
	ContactName    string                   `json:"contactName"`
	DueDate        *time.Time               `json:"dueDate"`
}

// UpdateTransactionRequest defines the payload for editing a transaction.
// The edit reverses the old balance effect and applies the new one atomically.
type UpdateTransactionRequest struct {
	Date           time.Time                `json:"date" binding:"required"`
	Amount         decimal.Decimal          `json:"amount" binding:"required"`
	Direction      domain.Direction         `json:"direction" binding:"required,oneof=IN OUT"`
	Status         domain.TransactionStatus `json:"status" binding:"required,oneof=PAID UNPAID"`
	Description    string                   `json:"description"`
	AccountLabel   string                   `json:"accountLabel"`
	COAID          *string                  `json:"coaID"`
	CategoryLabel  string                   `json:"categoryLabel"`
	BusinessUnitID *string                  `json:"businessUnitID"`
	ContactName    string                   `json:"contactName"`
	DueDate        *time.Time               `json:"dueDate"`
}

// ListTransactionsParams holds filters for listing transactions.
type ListTransactionsParams struct {
	Limit          int        `form:"limit"`
	NextToken      *string    `form:"nextToken"`
	Status         *string    `form:"status"`
	Direction      *string    `form:"direction"`
	AccountID      *string    `form:"accountID"`
	BusinessUnitID *string    `form:"businessUnitID"`
	StartDate      *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate        *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Direction      string          `json:"direction"`
	Status         string          `json:"status"`
	Description    string          `json:"description"`
	AccountID      *string         `json:"accountID"`
	AccountLabel   string          `json:"accountLabel"`
	COAID          *string         `json:"coaID"`
	CategoryLabel  string          `json:"categoryLabel"`
	BusinessUnitID *string         `json:"businessUnitID"`
	ContactName    string          `json:"contactName"`
	DueDate        *time.Time      `json:"dueDate"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListTransactionsResponse is the paginated transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		Date:           t.Date,
		Amount:         t.Amount,
		Direction:      string(t.Direction),
		Status:         string(t.Status),
		Description:    t.Description,
		AccountID:      t.Counterparty.AccountID,
		AccountLabel:   t.Counterparty.Label,
		COAID:          t.COAID,
		CategoryLabel:  t.CategoryLabel,
		BusinessUnitID: t.BusinessUnitID,
		ContactName:    t.ContactName,
		DueDate:        t.DueDate,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i := range ts {
		responses[i] = ToTransactionResponse(&ts[i])
	}
	return responses
}
