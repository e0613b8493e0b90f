package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the handlers.
type ServiceContainer struct {
	Identity           IdentityResolver
	User               UserSvcFacade
	Auth               AuthSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	Portfolios         PortfolioRegistry
	Deposits           DepositSvcFacade
	Ledger             LedgerSvc
	Balances           BalanceSvc
}
