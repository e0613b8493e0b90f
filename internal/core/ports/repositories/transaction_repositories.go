package repositories

import (
	"context"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
)

// TransactionReader defines read operations for the ledger.
type TransactionReader interface {
	// ListTransactionsByUser returns the user's ledger entries ordered by date descending,
	// then creation time descending, using token-based pagination.
	// It returns the entries, a token for the next page (nil when exhausted), and an error.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for the ledger. Entries are append-only.
type TransactionWriter interface {
	// SaveTransaction appends a ledger entry. It returns apperrors.ErrNotFound when the
	// referenced portfolio is not owned by txn.UserID.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
