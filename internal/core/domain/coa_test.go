package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
)

func TestClassifyAccountCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want domain.AccountType
	}{
		{"asset prefix", "101", domain.Asset},
		{"liability prefix", "2100", domain.Liability},
		{"equity prefix", "3000", domain.Equity},
		{"income prefix", "4100", domain.Income},
		{"expense prefix 5", "5100", domain.Expense},
		{"expense prefix 9", "9999", domain.Expense},
		{"non-numeric prefix defaults to asset", "X99", domain.Asset},
		{"empty code defaults to asset", "", domain.Asset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClassifyAccountCode(tt.code))
		})
	}
}

func TestNormalSideFor(t *testing.T) {
	assert.Equal(t, domain.NormalDebit, domain.NormalSideFor(domain.Asset))
	assert.Equal(t, domain.NormalDebit, domain.NormalSideFor(domain.Expense))
	assert.Equal(t, domain.NormalCredit, domain.NormalSideFor(domain.Liability))
	assert.Equal(t, domain.NormalCredit, domain.NormalSideFor(domain.Equity))
	assert.Equal(t, domain.NormalCredit, domain.NormalSideFor(domain.Income))
}

func TestChartOfAccount_DisplayLabel(t *testing.T) {
	coa := domain.ChartOfAccount{Code: "1020", Name: "Accounts Receivable"}
	assert.Equal(t, "1020 - Accounts Receivable", coa.DisplayLabel())
}
