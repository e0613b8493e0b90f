package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/utils/pagination"
)

const (
	DefaultLedgerLimit = 10
	MaxLedgerLimit     = 100
)

type ledgerService struct {
	BaseService
	txRepo       portsrepo.TransactionRepositoryFacade
	registry     portssvc.PortfolioRegistry
	defaultLimit int
}

// NewLedgerService creates the recent-activity view. defaultLimit <= 0 means DefaultLedgerLimit.
func NewLedgerService(txRepo portsrepo.TransactionRepositoryFacade, registry portssvc.PortfolioRegistry, identity portssvc.IdentityResolver, defaultLimit int) portssvc.LedgerSvc {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLedgerLimit
	}
	return &ledgerService{
		BaseService:  BaseService{Identity: identity},
		txRepo:       txRepo,
		registry:     registry,
		defaultLimit: min(defaultLimit, MaxLedgerLimit),
	}
}

func (s *ledgerService) Recent(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	userID, ok := s.CurrentIdentity(ctx)
	if !ok {
		return &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil
	}

	limit := params.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	limit = min(limit, MaxLedgerLimit)

	if params.NextToken != nil && *params.NextToken != "" {
		if _, _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			s.LogDebug(ctx, "Rejected page token", slog.String("error", err.Error()))
			return nil, domain.ErrInvalidPageToken
		}
	} else {
		params.NextToken = nil
	}

	txns, next, err := s.txRepo.ListTransactionsByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, domain.ErrInvalidPageToken
		}
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// An unavailable registry degrades names to the placeholder instead of failing the view.
	names := make(map[string]string)
	portfolios, err := s.registry.List(ctx)
	if err != nil {
		s.GetLogger(ctx).Warn("Portfolio names unavailable for ledger view", slog.String("error", err.Error()))
	}
	for _, p := range portfolios {
		names[p.PortfolioID] = p.Name
	}

	res := make([]dto.TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = dto.ToTransactionResponse(ctx, t, names)
	}
	return &dto.ListTransactionsResponse{Transactions: res, NextToken: next}, nil
}
