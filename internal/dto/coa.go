package dto

import (
	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// CreateCOARequest defines the payload for creating a chart-of-accounts entry.
// AccountType is optional: the bulk-import path omits it and the type is then
// auto-classified from the leading digit of Code.
type CreateCOARequest struct {
	Code        string              `json:"code" binding:"required"`
	Name        string              `json:"name" binding:"required"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Description string              `json:"description"`
}

// UpdateCOARequest defines the payload for renaming a chart-of-accounts entry.
type UpdateCOARequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// COAResponse defines the data returned for a chart-of-accounts entry.
type COAResponse struct {
	COAID       string `json:"coaID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	NormalSide  string `json:"normalSide"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// COABalanceResponse is one row of the computed balance listing.
type COABalanceResponse struct {
	COAID              string          `json:"coaID"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	AccountType        string          `json:"accountType"`
	NormalSide         string          `json:"normalSide"`
	Balance            decimal.Decimal `json:"balance"`
	IsFinancialAccount bool            `json:"isFinancialAccount"`
}

// ToCOAResponse converts a domain.ChartOfAccount to COAResponse DTO.
func ToCOAResponse(c *domain.ChartOfAccount) COAResponse {
	return COAResponse{
		COAID:       c.COAID,
		Code:        c.Code,
		Name:        c.Name,
		AccountType: string(c.AccountType),
		NormalSide:  string(c.NormalSide),
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}

// ToCOAResponses converts a slice of domain.ChartOfAccount to []COAResponse.
func ToCOAResponses(cs []domain.ChartOfAccount) []COAResponse {
	responses := make([]COAResponse, len(cs))
	for i := range cs {
		responses[i] = ToCOAResponse(&cs[i])
	}
	return responses
}

// ToCOABalanceResponse converts a domain.COABalance to COABalanceResponse DTO.
func ToCOABalanceResponse(b domain.COABalance) COABalanceResponse {
	return COABalanceResponse{
		COAID:              b.COAID,
		Code:               b.Code,
		Name:               b.Name,
		AccountType:        string(b.AccountType),
		NormalSide:         string(b.NormalSide),
		Balance:            b.Balance,
		IsFinancialAccount: b.IsFinancialAccount,
	}
}

// ToCOABalanceResponses converts a slice of domain.COABalance to []COABalanceResponse.
func ToCOABalanceResponses(bs []domain.COABalance) []COABalanceResponse {
	responses := make([]COABalanceResponse, len(bs))
	for i, b := range bs {
		responses[i] = ToCOABalanceResponse(b)
	}
	return responses
}
