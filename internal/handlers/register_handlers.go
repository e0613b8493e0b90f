package handlers

import (
	"net/http"

	"github.com/SscSPs/portfolio_tracker/cmd/docs"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
	"github.com/SscSPs/portfolio_tracker/internal/platform/config"
	"github.com/SscSPs/portfolio_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// analytics may be nil or uninitialized.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *i18n.Catalog,
	analytics *utils.PosthogClientWrapper,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	auth := r.Group("/api/v1/auth", middleware.LocaleMiddleware(catalog), middleware.PosthogMiddleware(analytics))
	registerAuthRoutes(auth, cfg, services)

	setupAPIV1Routes(r, cfg, services, catalog, analytics)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Authentication is optional there:
// anonymous callers read empty results and are refused writes by the services.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *i18n.Catalog,
	analytics *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.LocaleMiddleware(catalog),
		middleware.OptionalAuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(analytics),
	)

	registerUserRoutes(v1, services.User)
	registerPortfolioRoutes(v1, services.Portfolios)
	registerDepositRoutes(v1, services.Deposits, services.Portfolios)
	registerTransactionRoutes(v1, services.Ledger)
	registerBalanceRoutes(v1, services.Balances)
	registerActionRoutes(v1)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
