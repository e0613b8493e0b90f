package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
	"github.com/SscSPs/portfolio_tracker/internal/platform/config"
	"github.com/SscSPs/portfolio_tracker/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// analytics may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, analytics *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Identity = NewContextIdentityResolver()

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.Auth = NewAuthService(container.User, container.TokenService, container.GoogleOAuthHandler)

	container.Portfolios = NewPortfolioRegistryWithCache(repos.PortfolioRepo, container.Identity, cfg.RegistryCacheSize, cfg.RegistryCacheTTL)
	container.Deposits = NewDepositService(repos.TransactionRepo, repos.CashBalanceRepo, container.Identity)
	container.Ledger = NewLedgerService(repos.TransactionRepo, container.Portfolios, container.Identity, cfg.LedgerPageSize)
	container.Balances = NewBalanceService(repos.CashBalanceRepo, container.Identity)

	container.Auth.SubscribeIdentity(RegistryIdentitySync(container.Portfolios))
	if analytics.IsInitialized() {
		container.Deposits.Subscribe(NewTransactionAnalytics(analytics))
	}

	return container
}

// RegistryIdentitySync reloads a user's portfolios on sign-in and drops them on sign-out.
func RegistryIdentitySync(registry portssvc.PortfolioRegistry) func(domain.IdentityChange) {
	return func(ev domain.IdentityChange) {
		if !ev.SignedIn {
			registry.Evict(ev.UserID)
			return
		}
		ctx := middleware.WithUserID(context.Background(), ev.UserID)
		if _, err := registry.Refresh(ctx); err != nil {
			slog.Default().Warn("Failed to refresh portfolios after sign-in",
				slog.String("user_id", ev.UserID), slog.String("error", err.Error()))
		}
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.AuthSvcFacade     = (*authService)(nil)
	_ portssvc.PortfolioRegistry = (*portfolioRegistry)(nil)
	_ portssvc.DepositSvcFacade  = (*depositService)(nil)
	_ portssvc.LedgerSvc         = (*ledgerService)(nil)
	_ portssvc.BalanceSvc        = (*balanceService)(nil)
)
