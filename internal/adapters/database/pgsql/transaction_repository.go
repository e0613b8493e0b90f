package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfolio_tracker/internal/models"
	"github.com/SscSPs/portfolio_tracker/internal/utils/mapping"
	"github.com/SscSPs/portfolio_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository stores the append-only ledger.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts only when the portfolio belongs to the same user.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, portfolio_id, date, type, payload, created_at)
        SELECT $1::text, $2::text, $3::text, $4::date, $5::text, $6::jsonb, $7::timestamptz
        WHERE EXISTS (SELECT 1 FROM portfolios WHERE portfolio_id = $3::text AND user_id = $2::text);
    `
	cmdTag, err := r.exec(ctx, query, m.TransactionID, m.UserID, m.PortfolioID, m.Date, m.Type, m.Payload, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("portfolio %s: %w", m.PortfolioID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 10
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	query := `
		SELECT transaction_id, user_id, portfolio_id, date, type, payload, created_at
		FROM transactions
		WHERE user_id = $1`
	args := []any{userID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		query += ` AND (date, created_at) < ($2::date, $3::timestamptz)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ORDER BY date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var m models.Transaction
		err := row.Scan(&m.TransactionID, &m.UserID, &m.PortfolioID, &m.Date, &m.Type, &m.Payload, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transaction rows: %w", err)
	}

	var next *string
	if len(modelTxns) > limit {
		last := modelTxns[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		next = &token
		modelTxns = modelTxns[:limit]
	}

	txns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainTransaction(m)
	}
	return txns, next, nil
}
