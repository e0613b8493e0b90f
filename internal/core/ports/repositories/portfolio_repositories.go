package repositories

import (
	"context"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
)

// PortfolioReader defines read operations for portfolio data.
// Every method is scoped to the owning user.
type PortfolioReader interface {
	// ListPortfoliosByUser returns the user's portfolios ordered by creation time ascending.
	ListPortfoliosByUser(ctx context.Context, userID string) ([]domain.Portfolio, error)

	// FindPortfolioByID retrieves one of the user's portfolios.
	FindPortfolioByID(ctx context.Context, userID string, portfolioID string) (*domain.Portfolio, error)
}

// PortfolioWriter defines write operations for portfolio data
type PortfolioWriter interface {
	// SavePortfolio persists a new portfolio.
	SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error

	// UpdatePortfolio overwrites name, account number and fees. Returns apperrors.ErrNotFound
	// when the portfolio does not exist for portfolio.UserID.
	UpdatePortfolio(ctx context.Context, portfolio domain.Portfolio) error

	// DeletePortfolio hard-deletes the portfolio. Ledger rows are not touched.
	DeletePortfolio(ctx context.Context, userID string, portfolioID string) error
}

// PortfolioRepositoryFacade combines all portfolio-related repository interfaces
type PortfolioRepositoryFacade interface {
	PortfolioReader
	PortfolioWriter
}
