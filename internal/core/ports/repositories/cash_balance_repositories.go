package repositories

import (
	"context"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashBalanceReader defines read operations for cash balances
type CashBalanceReader interface {
	// ListCashBalancesByUser returns every balance row owned by the user.
	ListCashBalancesByUser(ctx context.Context, userID string) ([]domain.CashBalance, error)
}

// CashBalanceWriter defines the only mutation allowed on cash balances.
type CashBalanceWriter interface {
	// IncrementCashBalance adds amount to the (user, portfolio, currency) balance,
	// creating the row when missing. It is not idempotent.
	IncrementCashBalance(ctx context.Context, userID string, portfolioID string, currency domain.Currency, amount decimal.Decimal) error
}

// CashBalanceRepositoryFacade combines all cash balance repository interfaces
type CashBalanceRepositoryFacade interface {
	CashBalanceReader
	CashBalanceWriter
}
