package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/suksessssq40-debug/erp-sdm-sub002/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	coaRepo := newPgxCOARepository(dbPool)
	financialAcctRepo := newPgxFinancialAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	rentalRepo := newPgxRentalRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:         &BaseRepository{Pool: dbPool},
		COARepo:           coaRepo,
		FinancialAcctRepo: financialAcctRepo,
		TransactionRepo:   transactionRepo,
		RentalRepo:        rentalRepo,
		SettingsRepo:      settingsRepo,
	}
}
