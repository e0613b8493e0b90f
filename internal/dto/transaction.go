package dto

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
)

// TransactionResponse is a ledger entry joined with its portfolio's display name.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	PortfolioID     string                 `json:"portfolioID"`
	PortfolioName   string                 `json:"portfolioName"`
	Date            string                 `json:"date"`
	Type            domain.TransactionType `json:"type"`
	Payload         json.RawMessage        `json:"payload"`
	FormattedAmount string                 `json:"formattedAmount"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for the ledger view.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of the ledger view.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse joins a ledger entry with its portfolio name (keyed by portfolio ID)
// and renders its amount in the caller's locale. Unresolved values become i18n.Placeholder.
func ToTransactionResponse(ctx context.Context, t domain.Transaction, names map[string]string) TransactionResponse {
	name, ok := names[t.PortfolioID]
	if !ok || name == "" {
		name = i18n.Placeholder
	}
	formatted := i18n.Placeholder
	if t.Type == domain.Deposit {
		if p, ok := t.DepositPayload(); ok {
			formatted = i18n.FormatAmount(ctx, p.Amount, p.Currency)
		}
	}
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		PortfolioID:     t.PortfolioID,
		PortfolioName:   name,
		Date:            t.Date.Format(domain.DateLayout),
		Type:            t.Type,
		Payload:         t.Payload,
		FormattedAmount: formatted,
		CreatedAt:       t.CreatedAt,
	}
}
