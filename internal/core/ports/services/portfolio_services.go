package services

import (
	"context"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
)

// PortfolioRegistry is the single owned store of the caller's portfolios.
// Mutations are validated before the identity check and before any repository call.
type PortfolioRegistry interface {
	// List returns the caller's portfolios oldest first; empty without an identity.
	List(ctx context.Context) ([]domain.Portfolio, error)
	Get(ctx context.Context, portfolioID string) (*domain.Portfolio, error)
	Create(ctx context.Context, req dto.PortfolioRequest) (*domain.Portfolio, error)
	// Update overwrites every mutable field.
	Update(ctx context.Context, portfolioID string, req dto.PortfolioRequest) (*domain.Portfolio, error)
	// Delete removes the portfolio. Its ledger entries are kept.
	Delete(ctx context.Context, portfolioID string) error
	// Refresh re-reads the caller's portfolios from storage.
	Refresh(ctx context.Context) ([]domain.Portfolio, error)
	// Evict drops any cached state for userID.
	Evict(userID string)
	Subscribe(fn func(domain.RegistryEvent)) (unsubscribe func())
}
