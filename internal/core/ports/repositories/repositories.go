package repositories

// RepositoryProvider bundles every repository facade the service layer needs.
type RepositoryProvider struct {
	TxManager          TransactionManager
	COARepo            COARepositoryFacade
	FinancialAcctRepo  FinancialAccountRepositoryFacade
	TransactionRepo    TransactionRepositoryFacade
	RentalRepo         RentalRepositoryFacade
	SettingsRepo       SettingsRepositoryFacade
}
