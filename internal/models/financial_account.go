package models

import "github.com/shopspring/decimal"

// FinancialAccount represents a financial_accounts row (real cash/bank account).
// Balance is only ever written inside the same DB transaction as the journal
// write that caused the change.
type FinancialAccount struct {
	AccountID     string          `db:"account_id"`
	TenantID      string          `db:"tenant_id"`
	Name          string          `db:"name"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
