package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// portfolioHandler exposes the portfolio registry.
type portfolioHandler struct {
	registry portssvc.PortfolioRegistry
}

func newPortfolioHandler(registry portssvc.PortfolioRegistry) *portfolioHandler {
	return &portfolioHandler{registry: registry}
}

func registerPortfolioRoutes(rg *gin.RouterGroup, registry portssvc.PortfolioRegistry) {
	h := newPortfolioHandler(registry)

	portfolios := rg.Group("/portfolios")
	{
		portfolios.GET("", h.listPortfolios)
		portfolios.POST("", h.createPortfolio)
		portfolios.POST("/refresh", h.refreshPortfolios)
		portfolios.GET("/:portfolioID", h.getPortfolio)
		portfolios.PUT("/:portfolioID", h.updatePortfolio)
		portfolios.DELETE("/:portfolioID", h.deletePortfolio)
	}
}

// listPortfolios godoc
// @Summary List portfolios
// @Description Lists the caller's portfolios, oldest first. Anonymous callers get an empty list.
// @Tags portfolios
// @Produce json
// @Success 200 {object} dto.ListPortfoliosResponse
// @Failure 500 {object} ErrorResponse "Failed to load portfolios"
// @Security BearerAuth
// @Router /portfolios [get]
func (h *portfolioHandler) listPortfolios(c *gin.Context) {
	portfolios, err := h.registry.List(c.Request.Context())
	if err != nil {
		respondError(c, err, i18n.MsgPortfolioLoadError)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPortfoliosResponse(portfolios))
}

// refreshPortfolios godoc
// @Summary Reload portfolios
// @Description Re-reads the caller's portfolios from storage.
// @Tags portfolios
// @Produce json
// @Success 200 {object} dto.ListPortfoliosResponse
// @Failure 500 {object} ErrorResponse "Failed to load portfolios"
// @Security BearerAuth
// @Router /portfolios/refresh [post]
func (h *portfolioHandler) refreshPortfolios(c *gin.Context) {
	portfolios, err := h.registry.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, err, i18n.MsgPortfolioLoadError)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPortfoliosResponse(portfolios))
}

// getPortfolio godoc
// @Summary Get a portfolio
// @Tags portfolios
// @Produce json
// @Param portfolioID path string true "Portfolio ID"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 404 {object} ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{portfolioID} [get]
func (h *portfolioHandler) getPortfolio(c *gin.Context) {
	portfolio, err := h.registry.Get(c.Request.Context(), c.Param("portfolioID"))
	if err != nil {
		respondError(c, err, i18n.MsgPortfolioLoadError)
		return
	}
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(portfolio))
}

// createPortfolio godoc
// @Summary Create a portfolio
// @Description Fees default to 2.5 when omitted.
// @Tags portfolios
// @Accept json
// @Produce json
// @Param portfolio body dto.PortfolioRequest true "Portfolio details"
// @Success 201 {object} dto.PortfolioMutationResponse
// @Failure 400 {object} ErrorResponse "Missing name or negative fee"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 500 {object} ErrorResponse "Failed to add the portfolio"
// @Security BearerAuth
// @Router /portfolios [post]
func (h *portfolioHandler) createPortfolio(c *gin.Context) {
	var req dto.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	portfolio, err := h.registry.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, i18n.MsgPortfolioAddError)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Portfolio created", slog.String("portfolio_id", portfolio.PortfolioID))
	resp := dto.ToPortfolioResponse(portfolio)
	c.JSON(http.StatusCreated, dto.PortfolioMutationResponse{
		Success:   true,
		Message:   i18n.T(c.Request.Context(), i18n.MsgPortfolioCreated),
		Portfolio: &resp,
	})
}

// updatePortfolio godoc
// @Summary Update a portfolio
// @Description Overwrites name, account number and both fees.
// @Tags portfolios
// @Accept json
// @Produce json
// @Param portfolioID path string true "Portfolio ID"
// @Param portfolio body dto.PortfolioRequest true "Portfolio details"
// @Success 200 {object} dto.PortfolioMutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to update the portfolio"
// @Security BearerAuth
// @Router /portfolios/{portfolioID} [put]
func (h *portfolioHandler) updatePortfolio(c *gin.Context) {
	var req dto.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	portfolio, err := h.registry.Update(c.Request.Context(), c.Param("portfolioID"), req)
	if err != nil {
		respondError(c, err, i18n.MsgPortfolioUpdateError)
		return
	}

	resp := dto.ToPortfolioResponse(portfolio)
	c.JSON(http.StatusOK, dto.PortfolioMutationResponse{
		Success:   true,
		Message:   i18n.T(c.Request.Context(), i18n.MsgPortfolioUpdated),
		Portfolio: &resp,
	})
}

// deletePortfolio godoc
// @Summary Delete a portfolio
// @Description Ledger entries of the portfolio are kept.
// @Tags portfolios
// @Produce json
// @Param portfolioID path string true "Portfolio ID"
// @Success 200 {object} dto.PortfolioMutationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to delete the portfolio"
// @Security BearerAuth
// @Router /portfolios/{portfolioID} [delete]
func (h *portfolioHandler) deletePortfolio(c *gin.Context) {
	portfolioID := c.Param("portfolioID")
	if err := h.registry.Delete(c.Request.Context(), portfolioID); err != nil {
		respondError(c, err, i18n.MsgPortfolioDeleteError)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Portfolio deleted", slog.String("portfolio_id", portfolioID))
	c.JSON(http.StatusOK, dto.PortfolioMutationResponse{
		Success: true,
		Message: i18n.T(c.Request.Context(), i18n.MsgPortfolioDeleted),
	})
}
