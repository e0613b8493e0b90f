package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Portfolio represents a row of the portfolios table.
type Portfolio struct {
	PortfolioID   string          `db:"portfolio_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	AccountNumber sql.NullString  `db:"account_number"`
	BuyFee        decimal.Decimal `db:"buy_fee"`
	SellFee       decimal.Decimal `db:"sell_fee"`
	AuditFields
}
