package services

import (
	"context"
	"errors"

	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/apperrors"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/domain"
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
	"github.com/suksessssq40-debug/erp-sdm-sub002/internal/dto"
)

// statementService generates statements of account from the journal.
type statementService struct {
	BaseService
	txnRepo           portsrepo.TransactionRepositoryFacade
	financialAcctRepo portsrepo.FinancialAccountRepositoryFacade
}

// NewStatementService creates a new statement service.
func NewStatementService(txnRepo portsrepo.TransactionRepositoryFacade, financialAcctRepo portsrepo.FinancialAccountRepositoryFacade) portssvc.StatementSvcFacade {
	return &statementService{
		txnRepo:           txnRepo,
		financialAcctRepo: financialAcctRepo,
	}
}

// Ensure statementService implements the portssvc.StatementSvcFacade interface
var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// GetStatement computes the opening balance as the signed sum of settled
// transactions dated strictly before the start date, then returns the period's
// transactions in chronological order. The queried label is also resolved
// against the tenant's financial accounts so rows linked by account id keep
// appearing after the account was renamed; their stored label is frozen at
// write time. An unknown account label is not an error; it yields a zero
// opening balance and an empty period.
func (s *statementService) GetStatement(ctx context.Context, tenantID string, params dto.StatementParams) (*domain.Statement, error) {
	accountID, err := s.resolveAccountID(ctx, tenantID, params.AccountLabel)
	if err != nil {
		return nil, err
	}

	opening, err := s.txnRepo.SumCashBefore(ctx, tenantID, params.AccountLabel, accountID, params.BusinessUnitID, params.StartDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance", "account_label", params.AccountLabel)
		return nil, err
	}

	txns, err := s.txnRepo.FindForStatement(ctx, tenantID, params.AccountLabel, accountID, params.BusinessUnitID, params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}

	return &domain.Statement{
		OpeningBalance: opening,
		Transactions:   txns,
	}, nil
}

// resolveAccountID matches the queried label against the tenant's financial
// accounts by name. No match is fine: the statement falls back to pure label
// matching.
func (s *statementService) resolveAccountID(ctx context.Context, tenantID, accountLabel string) (*string, error) {
	account, err := s.financialAcctRepo.FindFinancialAccountByName(ctx, tenantID, accountLabel)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account.AccountID, nil
}
