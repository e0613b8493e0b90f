package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfolio_tracker/internal/models"
	"github.com/SscSPs/portfolio_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxCashBalanceRepository reads balances and increments them through increment_cash_balance.
type PgxCashBalanceRepository struct {
	BaseRepository
}

func newPgxCashBalanceRepository(db *pgxpool.Pool) *PgxCashBalanceRepository {
	return &PgxCashBalanceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CashBalanceRepositoryFacade = (*PgxCashBalanceRepository)(nil)

func (r *PgxCashBalanceRepository) ListCashBalancesByUser(ctx context.Context, userID string) ([]domain.CashBalance, error) {
	query := `
		SELECT user_id, portfolio_id, currency, balance, last_updated_at
		FROM cash_balances
		WHERE user_id = $1
		ORDER BY portfolio_id, currency;`
	rows, err := r.query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash balances: %w", err)
	}
	modelBalances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CashBalance, error) {
		var m models.CashBalance
		err := row.Scan(&m.UserID, &m.PortfolioID, &m.Currency, &m.Balance, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash balance rows: %w", err)
	}

	balances := make([]domain.CashBalance, len(modelBalances))
	for i, m := range modelBalances {
		balances[i] = mapping.ToDomainCashBalance(m)
	}
	return balances, nil
}

func (r *PgxCashBalanceRepository) IncrementCashBalance(ctx context.Context, userID, portfolioID string, currency domain.Currency, amount decimal.Decimal) error {
	_, err := r.exec(ctx, `SELECT increment_cash_balance($1::text, $2::text, $3::text, $4::numeric);`,
		userID, portfolioID, string(currency), amount)
	if err != nil {
		return fmt.Errorf("failed to increment cash balance: %w", err)
	}
	return nil
}
