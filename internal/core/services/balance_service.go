package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
)

type balanceService struct {
	BaseService
	balanceRepo portsrepo.CashBalanceRepositoryFacade
}

// NewBalanceService creates the balance summary service.
func NewBalanceService(balanceRepo portsrepo.CashBalanceRepositoryFacade, identity portssvc.IdentityResolver) portssvc.BalanceSvc {
	return &balanceService{BaseService: BaseService{Identity: identity}, balanceRepo: balanceRepo}
}

// Summary pools every balance row of the caller per currency. An unsupported or empty
// display currency falls back to ILS.
func (s *balanceService) Summary(ctx context.Context, displayCurrency domain.Currency) (domain.BalanceSummary, error) {
	if !displayCurrency.IsValid() {
		displayCurrency = domain.DefaultDisplayCurrency
	}
	userID, ok := s.CurrentIdentity(ctx)
	if !ok {
		return domain.SummarizeBalances(nil, displayCurrency), nil
	}

	rows, err := s.balanceRepo.ListCashBalancesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash balances")
		return domain.BalanceSummary{}, fmt.Errorf("failed to list cash balances: %w", err)
	}
	return domain.SummarizeBalances(rows, displayCurrency), nil
}
