package services

import (
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/utils"
)

// EventTransactionAdded is the analytics event name for new ledger entries.
const EventTransactionAdded = "transaction_added"

// NewTransactionAnalytics returns a deposit observer that forwards each new ledger entry to PostHog.
func NewTransactionAnalytics(client *utils.PosthogClientWrapper) func(domain.TransactionAdded) {
	return func(ev domain.TransactionAdded) {
		props := map[string]any{
			"transaction_id":  ev.Transaction.TransactionID,
			"portfolio_id":    ev.Transaction.PortfolioID,
			"type":            string(ev.Transaction.Type),
			"balance_updated": ev.BalanceUpdated,
		}
		if p, ok := ev.Transaction.DepositPayload(); ok {
			props["currency"] = string(p.Currency)
		}
		client.Enqueue(ev.Transaction.UserID, EventTransactionAdded, props)
	}
}
