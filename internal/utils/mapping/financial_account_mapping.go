package mapping

import (
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
)

// ToModelFinancialAccount converts a domain FinancialAccount to a model FinancialAccount
func ToModelFinancialAccount(d domain.FinancialAccount) models.FinancialAccount {
	return models.FinancialAccount{
		AccountID:     d.AccountID,
		TenantID:      d.TenantID,
		Name:          d.Name,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		Balance:       d.Balance,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialAccount converts a model FinancialAccount to a domain FinancialAccount
func ToDomainFinancialAccount(m models.FinancialAccount) domain.FinancialAccount {
	return domain.FinancialAccount{
		AccountID:     m.AccountID,
		TenantID:      m.TenantID,
		Name:          m.Name,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		Balance:       m.Balance,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinancialAccountSlice converts a slice of model FinancialAccounts to domain FinancialAccounts
func ToDomainFinancialAccountSlice(ms []models.FinancialAccount) []domain.FinancialAccount {
	ds := make([]domain.FinancialAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialAccount(m)
	}
	return ds
}
