package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// depositHandler records deposits.
type depositHandler struct {
	deposits portssvc.DepositRecorderSvc
	registry portssvc.PortfolioRegistry
}

func registerDepositRoutes(rg *gin.RouterGroup, deposits portssvc.DepositRecorderSvc, registry portssvc.PortfolioRegistry) {
	h := &depositHandler{deposits: deposits, registry: registry}
	rg.POST("/deposits", h.recordDeposit)
}

// recordDeposit godoc
// @Summary Record a deposit
// @Description Appends a deposit to the ledger and increments the portfolio's cash balance.
// @Description When only the ledger write succeeds the response is 207 with balanceUpdated=false.
// @Tags deposits
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Deposit form"
// @Success 201 {object} dto.DepositResponse "Deposit saved"
// @Success 207 {object} dto.DepositResponse "Deposit saved, balance not updated"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 404 {object} ErrorResponse "Portfolio not found"
// @Failure 500 {object} ErrorResponse "Deposit not saved"
// @Security BearerAuth
// @Router /deposits [post]
func (h *depositHandler) recordDeposit(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.deposits.RecordDeposit(ctx, req)
	switch {
	case err == nil:
		logger.Info("Deposit recorded", slog.String("transaction_id", result.Transaction.TransactionID))
		c.JSON(http.StatusCreated, h.toResponse(c, result, i18n.MsgDepositSaved))
	case result != nil && errors.Is(err, domain.ErrBalanceNotUpdated):
		logger.Warn("Deposit recorded without balance update", slog.String("transaction_id", result.Transaction.TransactionID))
		c.JSON(http.StatusMultiStatus, h.toResponse(c, result, i18n.MsgDepositPartial))
	case errors.Is(err, domain.ErrDepositNotSaved):
		logger.Error("Deposit not saved", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: i18n.T(ctx, i18n.MsgDepositSaveError)})
	default:
		respondError(c, err, i18n.MsgDepositSaveError)
	}
}

func (h *depositHandler) toResponse(c *gin.Context, result *domain.DepositResult, messageKey string) dto.DepositResponse {
	ctx := c.Request.Context()
	names := map[string]string{}
	if p, err := h.registry.Get(ctx, result.Transaction.PortfolioID); err == nil {
		names[p.PortfolioID] = p.Name
	}
	return dto.DepositResponse{
		Success:        true,
		BalanceUpdated: result.BalanceUpdated(),
		Message:        i18n.T(ctx, messageKey),
		Transaction:    dto.ToTransactionResponse(ctx, result.Transaction, names),
	}
}
