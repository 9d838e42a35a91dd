package services

import (
	"context"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// TransactionReaderSvc defines read operations for journal transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its ID.
	GetTransactionByID(ctx context.Context, tenantID string, txnID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, cursor-paginated listing.
	ListTransactions(ctx context.Context, tenantID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for journal transactions
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction and applies its cash
	// effect to the linked account balance.
	CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateTransaction replaces a transaction's fields, reversing the old
	// cash effect and applying the new one atomically.
	UpdateTransaction(ctx context.Context, tenantID string, txnID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its cash effect.
	DeleteTransaction(ctx context.Context, tenantID string, txnID string, requestingUserID string) error
}

// TransactionImportSvc defines the bulk import path
type TransactionImportSvc interface {
	// ImportTransactions inserts a batch of rows under one batch ID, skipping
	// rows that duplicate an existing (account, amount, description, day).
	ImportTransactions(ctx context.Context, tenantID string, req dto.ImportTransactionsRequest, requestingUserID string) (*dto.ImportTransactionsResponse, error)
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionImportSvc
}
