package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// ImportRow is one normalized row produced by an external file/spreadsheet
// parser. Account and COA references arrive pre-resolved; rows without a
// resolved account become label-only transactions.
type ImportRow struct {
	Date           time.Time                `json:"date" binding:"required"`
	Amount         decimal.Decimal          `json:"amount" binding:"required"`
	Direction      domain.Direction         `json:"direction" binding:"required,oneof=IN OUT"`
	Status         domain.TransactionStatus `json:"status" binding:"required,oneof=PAID UNPAID"`
	Description    string                   `json:"description"`
	AccountID      *string                  `json:"accountID"`
	AccountLabel   string                   `json:"accountLabel"`
	COAID          *string                  `json:"coaID"`
	CategoryLabel  string                   `json:"categoryLabel"`
	BusinessUnitID *string                  `json:"businessUnitID"`
}

// ImportTransactionsRequest is the payload for a bulk import run.
type ImportTransactionsRequest struct {
	Rows []ImportRow `json:"rows" binding:"required,min=1,dive"`
}

// ImportTransactionsResponse reports the outcome of a bulk import run.
// Duplicate rows are skipped and reported by index, never errored.
type ImportTransactionsResponse struct {
	BatchID          string `json:"batchID"`
	InsertedCount    int    `json:"insertedCount"`
	DuplicateCount   int    `json:"duplicateCount"`
	DuplicateIndexes []int  `json:"duplicateIndexes"`
}
