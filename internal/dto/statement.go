package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// StatementParams holds the filters for a statement-of-account query.
// AccountLabel matches either a financial account name or a transaction's
// free-text account label.
type StatementParams struct {
	AccountLabel   string    `form:"accountLabel" binding:"required"`
	StartDate      time.Time `form:"startDate" time_format:"2006-01-02" binding:"required"`
	EndDate        time.Time `form:"endDate" time_format:"2006-01-02" binding:"required"`
	BusinessUnitID *string   `form:"businessUnitID"`
}

// StatementResponse is the statement-of-account result: opening balance as of
// the start date plus the chronological transactions within the range.
type StatementResponse struct {
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	Transactions   []TransactionResponse `json:"transactions"`
}

// ToStatementResponse converts a domain.Statement to StatementResponse DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		OpeningBalance: s.OpeningBalance,
		Transactions:   ToTransactionResponses(s.Transactions),
	}
}
