package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

var ErrInvalidPageToken = fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)

// TransactionType is the kind of ledger event.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Buy        TransactionType = "buy"
	Sell       TransactionType = "sell"
	Dividend   TransactionType = "dividend"
)

// TransactionTypes lists every ledger event kind in the order the action panel shows them.
func TransactionTypes() []TransactionType {
	return []TransactionType{Deposit, Withdrawal, Buy, Sell, Dividend}
}

// IsImplemented reports whether the type can be recorded yet. Only deposits are.
func (t TransactionType) IsImplemented() bool {
	return t == Deposit
}

// Transaction is an immutable ledger entry. Payload shape depends on Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	PortfolioID   string          `json:"portfolioID"`
	Date          time.Time       `json:"date"`
	Type          TransactionType `json:"type"`
	Payload       json.RawMessage `json:"payload"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// DepositPayload is the payload of a deposit entry.
type DepositPayload struct {
	Currency Currency        `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// Encode marshals the payload for storage.
func (p DepositPayload) Encode() (json.RawMessage, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

// DepositPayload decodes the payload when it carries both a currency and an amount.
// Any other shape reports false.
func (t Transaction) DepositPayload() (DepositPayload, bool) {
	if len(t.Payload) == 0 {
		return DepositPayload{}, false
	}
	var raw struct {
		Currency *Currency        `json:"currency"`
		Amount   *decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(t.Payload, &raw); err != nil {
		return DepositPayload{}, false
	}
	if raw.Currency == nil || raw.Amount == nil {
		return DepositPayload{}, false
	}
	return DepositPayload{Currency: *raw.Currency, Amount: *raw.Amount}, true
}
