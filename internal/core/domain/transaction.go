package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction moves money in or out.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// TransactionStatus indicates whether a transaction has been settled.
// Only PAID transactions affect financial account balances.
type TransactionStatus string

const (
	StatusPaid   TransactionStatus = "PAID"
	StatusUnpaid TransactionStatus = "UNPAID"
)

// Counterparty identifies the account side of a transaction. It is either
// linked to a real financial account by id, or carries only a free-text label
// (the general-journal compatibility path for legacy/manual rows).
type Counterparty struct {
	AccountID *string `json:"accountID"` // Nullable FK -> financial_accounts.account_id
	Label     string  `json:"label"`     // Display label, always present
}

// LinkedCounterparty builds a counterparty backed by a real financial account.
func LinkedCounterparty(accountID, label string) Counterparty {
	return Counterparty{AccountID: &accountID, Label: label}
}

// LabeledCounterparty builds a label-only counterparty with no account linkage.
func LabeledCounterparty(label string) Counterparty {
	return Counterparty{Label: label}
}

// IsLinked reports whether the counterparty references a real financial account.
func (c Counterparty) IsLinked() bool {
	return c.AccountID != nil
}

// Transaction represents a single money-movement record in the journal.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID or IMP_ import id)
	TenantID      string            `json:"tenantID"`      // FK -> tenants.tenant_id (NON-NULL)
	Date          time.Time         `json:"date"`
	Amount        decimal.Decimal   `json:"amount"` // Always positive
	Direction     Direction         `json:"direction"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description"`
	Counterparty  Counterparty      `json:"counterparty"`   // Account side (linked or labeled)
	COAID         *string           `json:"coaID"`          // Nullable FK -> chart_of_accounts.coa_id
	CategoryLabel string            `json:"categoryLabel"`  // Free-text category fallback
	BusinessUnitID *string          `json:"businessUnitID"` // Nullable
	ContactName   string            `json:"contactName"`    // Nullable
	DueDate       *time.Time        `json:"dueDate"`        // Nullable
	AuditFields
}

// CashEffect returns the signed effect this transaction has on its linked
// financial account balance: +amount for IN, -amount for OUT, zero when the
// transaction is unsettled or has no linked account.
func (t Transaction) CashEffect() decimal.Decimal {
	if t.Status != StatusPaid || !t.Counterparty.IsLinked() {
		return decimal.Zero
	}
	if t.Direction == DirectionOut {
		return t.Amount.Neg()
	}
	return t.Amount
}
