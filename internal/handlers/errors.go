package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type errorMapping struct {
	target error
	status int
	key    string
}

// errorMappings is checked in order; specific sentinels precede the generic ones they wrap.
var errorMappings = []errorMapping{
	{apperrors.ErrUnauthenticated, http.StatusUnauthorized, i18n.MsgMustSignIn},

	{domain.ErrNameRequired, http.StatusBadRequest, i18n.MsgPortfolioNameRequired},
	{domain.ErrNegativeFee, http.StatusBadRequest, i18n.MsgNegativeFee},
	{domain.ErrPortfolioNotFound, http.StatusNotFound, i18n.MsgPortfolioNotFound},

	{domain.ErrPortfolioRequired, http.StatusBadRequest, i18n.MsgSelectPortfolio},
	{domain.ErrAmountNotPositive, http.StatusBadRequest, i18n.MsgPositiveAmount},
	{domain.ErrAmountPrecision, http.StatusBadRequest, i18n.MsgAmountPrecision},
	{domain.ErrAmountTooLarge, http.StatusBadRequest, i18n.MsgAmountTooLarge},
	{domain.ErrUnsupportedCurrency, http.StatusBadRequest, i18n.MsgUnsupportedCurrency},
	{domain.ErrInvalidDate, http.StatusBadRequest, i18n.MsgInvalidDate},
	{domain.ErrInvalidPageToken, http.StatusBadRequest, i18n.MsgInvalidPageToken},

	{domain.ErrFillAllFields, http.StatusBadRequest, i18n.MsgFillAllFields},
	{domain.ErrPasswordsMismatch, http.StatusBadRequest, i18n.MsgPasswordsMismatch},
	{domain.ErrPasswordTooShort, http.StatusBadRequest, i18n.MsgPasswordTooShort},
	{domain.ErrEmailTaken, http.StatusConflict, i18n.MsgEmailTaken},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, i18n.MsgInvalidCredentials},
	{apperrors.ErrRefreshTokenExpired, http.StatusUnauthorized, i18n.MsgSessionExpired},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, i18n.MsgSessionExpired},

	{apperrors.ErrValidation, http.StatusBadRequest, i18n.MsgInvalidRequest},
	{apperrors.ErrNotFound, http.StatusNotFound, i18n.MsgPortfolioNotFound},
}

// respondError logs err and writes a localized error body. Errors that match no known
// sentinel are reported as 500 with the fallbackKey message.
func respondError(c *gin.Context, err error, fallbackKey string) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		logger.Warn("Request failed", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			logger.Warn("Request rejected", slog.Int("status", m.status), slog.String("error", err.Error()))
			c.JSON(m.status, ErrorResponse{Error: i18n.T(ctx, m.key)})
			return
		}
	}

	logger.Error("Request failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: i18n.T(ctx, fallbackKey)})
}

// respondBindError maps binding failures of the custom currency and date tags to their
// own messages; anything else is a generic invalid request.
func respondBindError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	middleware.GetLoggerFromCtx(ctx).Warn("Failed to bind request", slog.String("error", err.Error()))

	key := i18n.MsgInvalidRequest
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case currencyTag:
			key = i18n.MsgUnsupportedCurrency
		case "datetime":
			key = i18n.MsgInvalidDate
		}
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: i18n.T(ctx, key)})
}
