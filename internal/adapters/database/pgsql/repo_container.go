package pgsql

import (
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		PortfolioRepo:   newPgxPortfolioRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CashBalanceRepo: newPgxCashBalanceRepository(dbPool),
	}
}
