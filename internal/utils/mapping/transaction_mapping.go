package mapping

import (
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// The counterparty variant flattens into the nullable account_id column plus
// the always-present account_label column.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		TenantID:       d.TenantID,
		Date:           d.Date,
		Amount:         d.Amount,
		Direction:      string(d.Direction),
		Status:         string(d.Status),
		Description:    d.Description,
		AccountID:      d.Counterparty.AccountID,
		AccountLabel:   d.Counterparty.Label,
		COAID:          d.COAID,
		CategoryLabel:  d.CategoryLabel,
		BusinessUnitID: d.BusinessUnitID,
		ContactName:    d.ContactName,
		DueDate:        d.DueDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		TenantID:       m.TenantID,
		Date:           m.Date,
		Amount:         m.Amount,
		Direction:      domain.Direction(m.Direction),
		Status:         domain.TransactionStatus(m.Status),
		Description:    m.Description,
		Counterparty:   domain.Counterparty{AccountID: m.AccountID, Label: m.AccountLabel},
		COAID:          m.COAID,
		CategoryLabel:  m.CategoryLabel,
		BusinessUnitID: m.BusinessUnitID,
		ContactName:    m.ContactName,
		DueDate:        m.DueDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
