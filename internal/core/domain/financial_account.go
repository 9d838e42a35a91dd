package domain

import "github.com/shopspring/decimal"

// FinancialAccount represents a real cash or bank account within a tenant.
// Balance is a derived-but-cached running total: it must always equal the sum
// of signed amounts of all PAID transactions linked to the account. It is only
// ever mutated inside the same database transaction as the journal write that
// caused the change, never directly from user input.
type FinancialAccount struct {
	AccountID     string          `json:"accountID"`     // Primary Key (e.g., UUID)
	TenantID      string          `json:"tenantID"`      // FK -> tenants.tenant_id (NON-NULL)
	Name          string          `json:"name"`          // User-defined name, matched case-insensitively by label resolution
	BankName      string          `json:"bankName"`      // Nullable
	AccountNumber string          `json:"accountNumber"` // Nullable
	Balance       decimal.Decimal `json:"balance"`       // Cached running total
	IsActive      bool            `json:"isActive"`      // Soft delete flag
	AuditFields
}
