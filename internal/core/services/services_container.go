package services

import (
	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
	portssvc "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.COA = NewCOAService(repos.COARepo, repos.FinancialAcctRepo)
	container.FinancialAccount = NewFinancialAccountService(repos.FinancialAcctRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.FinancialAcctRepo)
	container.Posting = NewPostingService(repos.RentalRepo, repos.SettingsRepo, repos.COARepo, repos.FinancialAcctRepo)
	container.Statement = NewStatementService(repos.TransactionRepo, repos.FinancialAcctRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.COASvcFacade              = (*coaService)(nil)
	_ portssvc.FinancialAccountSvcFacade = (*financialAccountService)(nil)
	_ portssvc.TransactionSvcFacade      = (*transactionService)(nil)
	_ portssvc.PostingSvcFacade          = (*postingService)(nil)
	_ portssvc.StatementSvcFacade        = (*statementService)(nil)
)
