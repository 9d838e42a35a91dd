package models

// ChartOfAccount represents a chart_of_accounts row.
type ChartOfAccount struct {
	COAID       string `db:"coa_id"`
	TenantID    string `db:"tenant_id"`
	Code        string `db:"code"` // Unique per tenant
	Name        string `db:"name"`
	AccountType string `db:"account_type"` // ASSET, LIABILITY, EQUITY, INCOME, EXPENSE
	NormalSide  string `db:"normal_side"`  // DEBIT or CREDIT
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
