package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	ledger portssvc.LedgerSvc
}

func registerTransactionRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvc) {
	h := &transactionHandler{ledger: ledger}
	rg.GET("/transactions", h.listTransactions)
}

// listTransactions godoc
// @Summary Recent activity
// @Description Lists the caller's ledger entries, newest date first, then newest creation time.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (default 10, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid limit or page token"
// @Failure 500 {object} ErrorResponse "Failed to load transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.ledger.Recent(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, i18n.MsgTransactionsLoadError)
		return
	}
	c.JSON(http.StatusOK, resp)
}
