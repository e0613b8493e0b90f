package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfolio_tracker/internal/models"
	"github.com/SscSPs/portfolio_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPortfolioRepository scopes every statement by the owning user.
type PgxPortfolioRepository struct {
	BaseRepository
}

func newPgxPortfolioRepository(db *pgxpool.Pool) *PgxPortfolioRepository {
	return &PgxPortfolioRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PortfolioRepositoryFacade = (*PgxPortfolioRepository)(nil)

const portfolioColumns = `portfolio_id, user_id, name, account_number, buy_fee, sell_fee, created_at, last_updated_at`

func scanPortfolio(row pgx.CollectableRow) (models.Portfolio, error) {
	var m models.Portfolio
	err := row.Scan(
		&m.PortfolioID,
		&m.UserID,
		&m.Name,
		&m.AccountNumber,
		&m.BuyFee,
		&m.SellFee,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxPortfolioRepository) ListPortfoliosByUser(ctx context.Context, userID string) ([]domain.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE user_id = $1 ORDER BY created_at ASC, portfolio_id ASC;`
	rows, err := r.query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolios: %w", err)
	}
	modelPortfolios, err := pgx.CollectRows(rows, scanPortfolio)
	if err != nil {
		return nil, fmt.Errorf("failed to scan portfolio rows: %w", err)
	}
	return mapping.ToDomainPortfolioSlice(modelPortfolios), nil
}

func (r *PgxPortfolioRepository) FindPortfolioByID(ctx context.Context, userID, portfolioID string) (*domain.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE portfolio_id = $1 AND user_id = $2;`
	rows, err := r.query(ctx, query, portfolioID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio %s: %w", portfolioID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanPortfolio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find portfolio %s: %w", portfolioID, err)
	}
	p := mapping.ToDomainPortfolio(m)
	return &p, nil
}

func (r *PgxPortfolioRepository) SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error {
	m := mapping.ToModelPortfolio(portfolio)
	query := `
        INSERT INTO portfolios (portfolio_id, user_id, name, account_number, buy_fee, sell_fee, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.exec(ctx, query, m.PortfolioID, m.UserID, m.Name, m.AccountNumber, m.BuyFee, m.SellFee, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("portfolio %s: %w", m.PortfolioID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}

func (r *PgxPortfolioRepository) UpdatePortfolio(ctx context.Context, portfolio domain.Portfolio) error {
	m := mapping.ToModelPortfolio(portfolio)
	query := `
        UPDATE portfolios
        SET name = $1, account_number = $2, buy_fee = $3, sell_fee = $4, last_updated_at = $5
        WHERE portfolio_id = $6 AND user_id = $7;
    `
	cmdTag, err := r.exec(ctx, query, m.Name, m.AccountNumber, m.BuyFee, m.SellFee, m.LastUpdatedAt, m.PortfolioID, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to execute update portfolio query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("portfolio %s: %w", m.PortfolioID, apperrors.ErrNotFound)
	}
	return nil
}

// DeletePortfolio leaves ledger rows in place; transactions carry no foreign key to portfolios.
func (r *PgxPortfolioRepository) DeletePortfolio(ctx context.Context, userID, portfolioID string) error {
	cmdTag, err := r.exec(ctx, `DELETE FROM portfolios WHERE portfolio_id = $1 AND user_id = $2;`, portfolioID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("portfolio %s: %w", portfolioID, apperrors.ErrNotFound)
	}
	return nil
}
