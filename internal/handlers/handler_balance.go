package handlers

import (
	"net/http"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balances portssvc.BalanceSvc
}

func registerBalanceRoutes(rg *gin.RouterGroup, balances portssvc.BalanceSvc) {
	h := &balanceHandler{balances: balances}
	rg.GET("/balances", h.getBalanceSummary)
}

// getBalanceSummary godoc
// @Summary Cash balance summary
// @Description Totals the caller's cash per currency across all portfolios. No currency conversion is applied.
// @Tags balances
// @Produce json
// @Param currency query string false "Display currency (ILS or USD, default ILS)"
// @Success 200 {object} dto.BalanceSummaryResponse
// @Failure 400 {object} ErrorResponse "Unsupported currency"
// @Failure 500 {object} ErrorResponse "Failed to load balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) getBalanceSummary(c *gin.Context) {
	var params dto.BalanceSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	display, ok := domain.ParseCurrency(params.Currency)
	if !ok {
		display = domain.DefaultDisplayCurrency
	}

	summary, err := h.balances.Summary(c.Request.Context(), display)
	if err != nil {
		respondError(c, err, i18n.MsgBalancesLoadError)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSummaryResponse(summary))
}
