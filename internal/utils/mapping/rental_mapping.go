package mapping

import (
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/models"
)

// ToModelRentalRecord converts a domain RentalRecord to a model RentalRecord
func ToModelRentalRecord(d domain.RentalRecord) models.RentalRecord {
	return models.RentalRecord{
		RentalID:       d.RentalID,
		TenantID:       d.TenantID,
		TargetTenantID: d.TargetTenantID,
		OutletID:       d.OutletID,
		InvoiceNumber:  d.InvoiceNumber,
		CustomerName:   d.CustomerName,
		ItemType:       d.ItemType,
		Duration:       d.Duration,
		TotalAmount:    d.TotalAmount,
		PaymentMethod:  string(d.PaymentMethod),
		CashAmount:     d.CashAmount,
		TransferAmount: d.TransferAmount,
		TransactionIDs: d.TransactionIDs,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRentalRecord converts a model RentalRecord to a domain RentalRecord
func ToDomainRentalRecord(m models.RentalRecord) domain.RentalRecord {
	return domain.RentalRecord{
		RentalID:       m.RentalID,
		TenantID:       m.TenantID,
		TargetTenantID: m.TargetTenantID,
		OutletID:       m.OutletID,
		InvoiceNumber:  m.InvoiceNumber,
		CustomerName:   m.CustomerName,
		ItemType:       m.ItemType,
		Duration:       m.Duration,
		TotalAmount:    m.TotalAmount,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		CashAmount:     m.CashAmount,
		TransferAmount: m.TransferAmount,
		TransactionIDs: m.TransactionIDs,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRentalRecordSlice converts a slice of model RentalRecords to domain RentalRecords
func ToDomainRentalRecordSlice(ms []models.RentalRecord) []domain.RentalRecord {
	ds := make([]domain.RentalRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRentalRecord(m)
	}
	return ds
}

// ToDomainRentalPrice converts a model RentalPrice to a domain RentalPrice
func ToDomainRentalPrice(m models.RentalPrice) domain.RentalPrice {
	return domain.RentalPrice{
		PriceID:     m.PriceID,
		TenantID:    m.TenantID,
		OutletID:    m.OutletID,
		ItemType:    m.ItemType,
		Duration:    m.Duration,
		Price:       m.Price,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPostingTargets converts a model PostingTargets to a domain PostingTargets
func ToDomainPostingTargets(m models.PostingTargets) domain.PostingTargets {
	return domain.PostingTargets{
		TenantID:          m.TenantID,
		TargetTenantID:    m.TargetTenantID,
		CashAccountID:     m.CashAccountID,
		TransferAccountID: m.TransferAccountID,
		ReceivableCOAID:   m.ReceivableCOAID,
		SalesCOAID:        m.SalesCOAID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
