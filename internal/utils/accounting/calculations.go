package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

// SignedCashAmount applies the correct sign to a transaction amount based on
// its direction: +amount for IN, -amount for OUT.
// Used in both services and repositories to keep balance math consistent.
func SignedCashAmount(direction domain.Direction, amount decimal.Decimal) decimal.Decimal {
	if direction == domain.DirectionOut {
		return amount.Neg()
	}
	return amount
}

// BalanceFromFlows derives a COA balance from its aggregated flows by
// accounting-type rule:
// INCOME/LIABILITY/EQUITY -> netCredit - netDebit
// ASSET/EXPENSE           -> netDebit - netCredit
func BalanceFromFlows(accountType domain.AccountType, flows domain.COAFlows) decimal.Decimal {
	netDebit := flows.NetDebit()
	netCredit := flows.NetCredit()
	switch accountType {
	case domain.Income, domain.Liability, domain.Equity:
		return netCredit.Sub(netDebit)
	default:
		return netDebit.Sub(netCredit)
	}
}
