package domain

import "github.com/shopspring/decimal"

// COABalance is one row of the computed balance listing. It is derived purely
// from the transaction log, never from a cached column. Financial (bank/cash)
// accounts appear in the same listing as synthetic ASSET/DEBIT rows.
type COABalance struct {
	COAID              string          `json:"coaID"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	AccountType        AccountType     `json:"accountType"`
	NormalSide         NormalSide      `json:"normalSide"`
	Balance            decimal.Decimal `json:"balance"`
	IsFinancialAccount bool            `json:"isFinancialAccount"`
}

// Statement is the result of a statement-of-account query: the balance as of
// the period start plus the chronological transactions within the period.
type Statement struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Transactions   []Transaction   `json:"transactions"`
}

// FinancialAccountFlow aggregates the settled IN/OUT totals of one financial
// account's linked transactions. Used to expose bank/cash accounts as
// synthetic ASSET rows in the balance listing without reading the cached
// balance column.
type FinancialAccountFlow struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	TotalIn   decimal.Decimal `json:"totalIn"`
	TotalOut  decimal.Decimal `json:"totalOut"`
}

// COAFlows aggregates the transaction amounts feeding one COA's balance.
// Linked flows come from rows with coa_id set (typically settlement-offset
// legs); labeled flows come from rows with no account linkage whose account
// label matches the COA's display label (general-journal debit side).
type COAFlows struct {
	LinkedIn   decimal.Decimal `json:"linkedIn"`
	LinkedOut  decimal.Decimal `json:"linkedOut"`
	LabeledIn  decimal.Decimal `json:"labeledIn"`
	LabeledOut decimal.Decimal `json:"labeledOut"`
}

// NetDebit is the debit-side total: linked OUT legs plus labeled IN legs.
func (f COAFlows) NetDebit() decimal.Decimal {
	return f.LinkedOut.Add(f.LabeledIn)
}

// NetCredit is the credit-side total: linked IN legs plus labeled OUT legs.
func (f COAFlows) NetCredit() decimal.Decimal {
	return f.LinkedIn.Add(f.LabeledOut)
}
