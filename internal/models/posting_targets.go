package models

// PostingTargets represents a posting_targets row: per-tenant rental posting configuration.
type PostingTargets struct {
	TenantID          string `db:"tenant_id"`
	TargetTenantID    string `db:"target_tenant_id"`
	CashAccountID     string `db:"cash_account_id"`
	TransferAccountID string `db:"transfer_account_id"`
	ReceivableCOAID   string `db:"receivable_coa_id"`
	SalesCOAID        string `db:"sales_coa_id"`
	AuditFields
}
