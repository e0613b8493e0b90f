package dto

import (
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSummaryParams selects the display currency of the summary.
type BalanceSummaryParams struct {
	Currency string `form:"currency" binding:"omitempty,portfolio_currency"`
}

// BalanceSummaryResponse is the per-currency cash total of the caller.
type BalanceSummaryResponse struct {
	Totals          map[domain.Currency]decimal.Decimal `json:"totals"`
	DisplayCurrency domain.Currency                     `json:"displayCurrency"`
	TotalValue      decimal.Decimal                     `json:"totalValue"`
}

// ToBalanceSummaryResponse converts a domain.BalanceSummary to its DTO.
func ToBalanceSummaryResponse(s domain.BalanceSummary) BalanceSummaryResponse {
	return BalanceSummaryResponse{
		Totals:          s.Totals,
		DisplayCurrency: s.DisplayCurrency,
		TotalValue:      s.TotalValue,
	}
}
