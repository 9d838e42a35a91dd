package domain

// Fallback posting targets used when a tenant has no posting_targets row.
// These ids are seeded by the initial migration.
const (
	DefaultCashAccountID     = "acct-cash-drawer"
	DefaultTransferAccountID = "acct-bank-transfer"
	DefaultReceivableCOAID   = "coa-accounts-receivable"
	DefaultSalesCOAID        = "coa-rental-sales"
)

// PostingTargets is the per-tenant configuration driving rental journal
// posting. TargetTenantID may differ from TenantID: a satellite outlet's POS
// can deliberately feed a central finance tenant's ledger. The struct is
// resolved once per posting call and passed explicitly, never read as ambient
// state by the poster.
type PostingTargets struct {
	TenantID          string `json:"tenantID"`          // Tenant the settings belong to
	TargetTenantID    string `json:"targetTenantID"`    // Tenant whose ledger receives the legs
	CashAccountID     string `json:"cashAccountID"`     // Settlement account for CASH
	TransferAccountID string `json:"transferAccountID"` // Settlement account for TRANSFER
	ReceivableCOAID   string `json:"receivableCoaID"`   // Recognition-leg debit side
	SalesCOAID        string `json:"salesCoaID"`        // Recognition-leg credit side
	AuditFields
}

// DefaultPostingTargets returns the hardcoded fallback targets for a tenant
// that has no posting_targets row. Postings stay within the tenant itself.
func DefaultPostingTargets(tenantID string) PostingTargets {
	return PostingTargets{
		TenantID:          tenantID,
		TargetTenantID:    tenantID,
		CashAccountID:     DefaultCashAccountID,
		TransferAccountID: DefaultTransferAccountID,
		ReceivableCOAID:   DefaultReceivableCOAID,
		SalesCOAID:        DefaultSalesCOAID,
	}
}
