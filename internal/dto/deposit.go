package dto

import "github.com/shopspring/decimal"

// DepositRequest is the deposit form. Currency defaults to ILS and Date (YYYY-MM-DD) to today.
type DepositRequest struct {
	PortfolioID string          `json:"portfolioID"`
	Currency    string          `json:"currency" binding:"omitempty,portfolio_currency"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// DepositResponse reports a full or ledger-only deposit.
type DepositResponse struct {
	Success        bool                `json:"success"`
	BalanceUpdated bool                `json:"balanceUpdated"`
	Message        string              `json:"message"`
	Transaction    TransactionResponse `json:"transaction"`
}
