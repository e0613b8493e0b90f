package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBalance is the aggregate cash held in one currency for a (user, portfolio) pair.
// It only changes through the balance-increment operation.
type CashBalance struct {
	UserID        string          `json:"userID"`
	PortfolioID   string          `json:"portfolioID"`
	Currency      Currency        `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// BalanceSummary is the per-currency total of a user's cash balances.
type BalanceSummary struct {
	Totals          map[Currency]decimal.Decimal `json:"totals"`
	DisplayCurrency Currency                     `json:"displayCurrency"`
	TotalValue      decimal.Decimal              `json:"totalValue"`
}

// SummarizeBalances sums rows per currency across all portfolios. TotalValue is the
// display currency's total; no conversion is performed.
func SummarizeBalances(rows []CashBalance, display Currency) BalanceSummary {
	totals := make(map[Currency]decimal.Decimal, len(SupportedCurrencies()))
	for _, c := range SupportedCurrencies() {
		totals[c] = decimal.Zero
	}
	for _, r := range rows {
		totals[r.Currency] = totals[r.Currency].Add(r.Balance)
	}
	return BalanceSummary{
		Totals:          totals,
		DisplayCurrency: display,
		TotalValue:      totals[display],
	}
}
