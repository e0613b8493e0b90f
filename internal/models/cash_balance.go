package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBalance represents a row of the cash_balances table.
type CashBalance struct {
	UserID        string          `db:"user_id"`
	PortfolioID   string          `db:"portfolio_id"`
	Currency      string          `db:"currency"`
	Balance       decimal.Decimal `db:"balance"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
