package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/utils"
)

var (
	ErrAmountNotPositive = errors.New("transaction amount must be positive")
)

// transactionService provides journal transaction operations.
type transactionService struct {
	BaseService
	txnRepo           portsrepo.TransactionRepositoryFacade
	financialAcctRepo portsrepo.FinancialAccountRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, financialAcctRepo portsrepo.FinancialAccountRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:           txnRepo,
		financialAcctRepo: financialAcctRepo,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveCounterparty matches an account label against the tenant's financial
// accounts case-insensitively. A match links the row to the real account under
// its canonical name; no match leaves the row label-only, which is the normal
// general-journal path, not an error.
func (s *transactionService) resolveCounterparty(ctx context.Context, tenantID, accountLabel string) (domain.Counterparty, error) {
	if accountLabel == "" {
		return domain.LabeledCounterparty(""), nil
	}

	account, err := s.financialAcctRepo.FindFinancialAccountByName(ctx, tenantID, accountLabel)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.LabeledCounterparty(accountLabel), nil
		}
		return domain.Counterparty{}, err
	}

	return domain.LinkedCounterparty(account.AccountID, account.Name), nil
}

// CreateTransaction persists a new transaction. When the row is settled and
// linked, the account balance moves in the same database transaction as the
// insert.
func (s *transactionService) CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	counterparty, err := s.resolveCounterparty(ctx, tenantID, req.AccountLabel)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		TenantID:       tenantID,
		Date:           req.Date,
		Amount:         req.Amount,
		Direction:      req.Direction,
		Status:         req.Status,
		Description:    req.Description,
		Counterparty:   counterparty,
		COAID:          req.COAID,
		CategoryLabel:  req.CategoryLabel,
		BusinessUnitID: req.BusinessUnitID,
		ContactName:    req.ContactName,
		DueDate:        req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", "transaction_id", txn.TransactionID)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", "transaction_id", txn.TransactionID, "amount", txn.Amount.String(), "direction", string(txn.Direction))
	return &txn, nil
}

// GetTransactionByID retrieves a transaction by its ID.
func (s *transactionService) GetTransactionByID(ctx context.Context, tenantID string, txnID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, tenantID, txnID)
}

// ListTransactions retrieves a filtered, cursor-paginated listing.
func (s *transactionService) ListTransactions(ctx context.Context, tenantID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// UpdateTransaction replaces every mutable field of a transaction. The
// repository reverses the old cash effect and applies the new one in a single
// database transaction, so the balance invariant holds even when the edit
// moves the row between accounts or flips its settlement status.
func (s *transactionService) UpdateTransaction(ctx context.Context, tenantID string, txnID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, tenantID, txnID)
	if err != nil {
		return nil, err
	}

	counterparty, err := s.resolveCounterparty(ctx, tenantID, req.AccountLabel)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:  existing.TransactionID,
		TenantID:       existing.TenantID,
		Date:           req.Date,
		Amount:         req.Amount,
		Direction:      req.Direction,
		Status:         req.Status,
		Description:    req.Description,
		Counterparty:   counterparty,
		COAID:          req.COAID,
		CategoryLabel:  req.CategoryLabel,
		BusinessUnitID: req.BusinessUnitID,
		ContactName:    req.ContactName,
		DueDate:        req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: time.Now().UTC(),
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", txnID)
		return nil, err
	}

	return &txn, nil
}

// DeleteTransaction removes a transaction and reverses its cash effect.
// Deleting a missing or foreign-tenant row reports ErrNotFound.
func (s *transactionService) DeleteTransaction(ctx context.Context, tenantID string, txnID string, requestingUserID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, tenantID, txnID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", "transaction_id", txnID)
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", "transaction_id", txnID)
	return nil
}

// ImportTransactions inserts a batch of externally parsed rows under one
// batch ID. Rows that duplicate an existing (account, amount, description,
// day) combination are skipped and reported, never errored; the check covers
// both rows already in the journal and earlier rows of the same batch. All
// inserted rows land in one database transaction.
func (s *transactionService) ImportTransactions(ctx context.Context, tenantID string, req dto.ImportTransactionsRequest, requestingUserID string) (*dto.ImportTransactionsResponse, error) {
	batchID, err := utils.NewImportBatchID()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate import batch ID", err)
	}

	now := time.Now().UTC()
	toInsert := make([]domain.Transaction, 0, len(req.Rows))
	duplicateIndexes := []int{}
	seenInBatch := map[string]struct{}{}

	for i, row := range req.Rows {
		if row.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: row %d: %s", apperrors.ErrValidation, i, ErrAmountNotPositive)
		}

		counterparty := domain.LabeledCounterparty(row.AccountLabel)
		if row.AccountID != nil {
			counterparty = domain.Counterparty{AccountID: row.AccountID, Label: row.AccountLabel}
		} else if row.AccountLabel != "" {
			counterparty, err = s.resolveCounterparty(ctx, tenantID, row.AccountLabel)
			if err != nil {
				return nil, err
			}
		}

		key := importDuplicateKey(counterparty.AccountID, row.Amount, row.Description, row.Date)
		if _, dupInBatch := seenInBatch[key]; dupInBatch {
			duplicateIndexes = append(duplicateIndexes, i)
			continue
		}

		isDup, err := s.txnRepo.HasDuplicate(ctx, tenantID, counterparty.AccountID, row.Amount, row.Description, row.Date)
		if err != nil {
			return nil, err
		}
		if isDup {
			duplicateIndexes = append(duplicateIndexes, i)
			continue
		}
		seenInBatch[key] = struct{}{}

		rowID, err := utils.NewImportRowID(batchID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to generate import row ID", err)
		}

		toInsert = append(toInsert, domain.Transaction{
			TransactionID:  rowID,
			TenantID:       tenantID,
			Date:           row.Date,
			Amount:         row.Amount,
			Direction:      row.Direction,
			Status:         row.Status,
			Description:    row.Description,
			Counterparty:   counterparty,
			COAID:          row.COAID,
			CategoryLabel:  row.CategoryLabel,
			BusinessUnitID: row.BusinessUnitID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     requestingUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: requestingUserID,
			},
		})
	}

	if err := s.txnRepo.SaveTransactionsBatch(ctx, toInsert); err != nil {
		s.LogError(ctx, err, "Failed to save import batch", "batch_id", batchID)
		return nil, err
	}

	s.LogInfo(ctx, "Import batch completed",
		"batch_id", batchID,
		"inserted", len(toInsert),
		"duplicates", len(duplicateIndexes),
	)

	return &dto.ImportTransactionsResponse{
		BatchID:          batchID,
		InsertedCount:    len(toInsert),
		DuplicateCount:   len(duplicateIndexes),
		DuplicateIndexes: duplicateIndexes,
	}, nil
}

// importDuplicateKey mirrors the repository's duplicate predicate: same
// account linkage (nil and empty collapse together), amount, description and
// calendar day.
func importDuplicateKey(accountID *string, amount decimal.Decimal, description string, date time.Time) string {
	account := ""
	if accountID != nil {
		account = *accountID
	}
	return fmt.Sprintf("%s|%s|%s|%s", account, amount.String(), description, date.UTC().Format("2006-01-02"))
}
