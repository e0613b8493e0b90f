package models

import (
	"time"
)

// Transaction represents a row of the append-only transactions (ledger) table.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	UserID        string    `db:"user_id"`
	PortfolioID   string    `db:"portfolio_id"`
	Date          time.Time `db:"date"`
	Type          string    `db:"type"`
	Payload       []byte    `db:"payload"` // JSONB
	CreatedAt     time.Time `db:"created_at"`
}
