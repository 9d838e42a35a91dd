package dto

import (
	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// CreateFinancialAccountRequest defines the payload for creating a cash/bank account.
// Balance is deliberately absent: the cached balance is only ever mutated as a
// side effect of journal writes.
type CreateFinancialAccountRequest struct {
	Name          string `json:"name" binding:"required"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// UpdateFinancialAccountRequest defines the payload for updating a cash/bank account.
type UpdateFinancialAccountRequest struct {
	Name          *string `json:"name"`
	BankName      *string `json:"bankName"`
	AccountNumber *string `json:"accountNumber"`
}

// FinancialAccountResponse defines the data returned for a financial account.
type FinancialAccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
}

// ToFinancialAccountResponse converts a domain.FinancialAccount to FinancialAccountResponse DTO.
func ToFinancialAccountResponse(a *domain.FinancialAccount) FinancialAccountResponse {
	return FinancialAccountResponse{
		AccountID:     a.AccountID,
		Name:          a.Name,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		IsActive:      a.IsActive,
	}
}

// ToFinancialAccountResponses converts a slice of domain.FinancialAccount to []FinancialAccountResponse.
func ToFinancialAccountResponses(as []domain.FinancialAccount) []FinancialAccountResponse {
	responses := make([]FinancialAccountResponse, len(as))
	for i := range as {
		responses[i] = ToFinancialAccountResponse(&as[i])
	}
	return responses
}
