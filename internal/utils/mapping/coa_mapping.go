package mapping

import (
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
)

// ToModelCOA converts a domain ChartOfAccount to a model ChartOfAccount
func ToModelCOA(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		COAID:       d.COAID,
		TenantID:    d.TenantID,
		Code:        d.Code,
		Name:        d.Name,
		AccountType: string(d.AccountType),
		NormalSide:  string(d.NormalSide),
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCOA converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainCOA(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		COAID:       m.COAID,
		TenantID:    m.TenantID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		NormalSide:  domain.NormalSide(m.NormalSide),
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCOASlice converts a slice of model ChartOfAccounts to domain ChartOfAccounts
func ToDomainCOASlice(ms []models.ChartOfAccount) []domain.ChartOfAccount {
	ds := make([]domain.ChartOfAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCOA(m)
	}
	return ds
}
