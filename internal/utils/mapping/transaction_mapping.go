package mapping

import (
	"encoding/json"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		PortfolioID:   d.PortfolioID,
		Date:          domain.CalendarDate(d.Date),
		Type:          string(d.Type),
		Payload:       []byte(d.Payload),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		PortfolioID:   m.PortfolioID,
		Date:          domain.CalendarDate(m.Date),
		Type:          domain.TransactionType(m.Type),
		Payload:       json.RawMessage(m.Payload),
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainCashBalance converts a model CashBalance to a domain CashBalance
func ToDomainCashBalance(m models.CashBalance) domain.CashBalance {
	return domain.CashBalance{
		UserID:        m.UserID,
		PortfolioID:   m.PortfolioID,
		Currency:      domain.Currency(m.Currency),
		Balance:       m.Balance,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}
