package domain

import "fmt"

// AccountType defines the fundamental accounting type of a chart-of-accounts entry.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// NormalSide indicates whether increases to an account are recorded as debits or credits.
type NormalSide string

const (
	NormalDebit  NormalSide = "DEBIT"
	NormalCredit NormalSide = "CREDIT"
)

// NormalSideFor returns the normal balance side implied by an accounting type.
// The side is fully determined by the type and is never chosen independently.
func NormalSideFor(t AccountType) NormalSide {
	switch t {
	case Liability, Equity, Income:
		return NormalCredit
	default:
		return NormalDebit
	}
}

// ClassifyAccountCode derives an accounting type from the leading digit of a COA code.
// Used by the bulk-import path when the type is not supplied explicitly:
// 1 -> ASSET, 2 -> LIABILITY, 3 -> EQUITY, 4 -> INCOME, 5-9 -> EXPENSE.
// Unrecognized prefixes default to ASSET.
func ClassifyAccountCode(code string) AccountType {
	if len(code) == 0 {
		return Asset
	}
	switch code[0] {
	case '1':
		return Asset
	case '2':
		return Liability
	case '3':
		return Equity
	case '4':
		return Income
	case '5', '6', '7', '8', '9':
		return Expense
	default:
		return Asset
	}
}

// ChartOfAccount represents a categorical ledger account (COA) within a tenant.
// COA rows are never hard-deleted once transactions reference them; they are
// deactivated instead.
type ChartOfAccount struct {
	COAID       string      `json:"coaID"`       // Primary Key (e.g., UUID)
	TenantID    string      `json:"tenantID"`    // FK -> tenants.tenant_id (NON-NULL)
	Code        string      `json:"code"`        // Unique per tenant
	Name        string      `json:"name"`        // User-defined name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	NormalSide  NormalSide  `json:"normalSide"`  // Derived from AccountType
	Description string      `json:"description"` // Nullable user description
	IsActive    bool        `json:"isActive"`    // Soft delete flag
	AuditFields
}

// DisplayLabel returns the formatted label ("{code} - {name}") that label-only
// general-journal transactions carry in place of a real foreign key.
func (c ChartOfAccount) DisplayLabel() string {
	return fmt.Sprintf("%s - %s", c.Code, c.Name)
}
