package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewMemoryLimiter builds an in-process limiter from a formatted rate such as "5-M".
func NewMemoryLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit limits requests by client IP. Rejections carry a localized message.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return limitergin.NewMiddleware(limiterInstance,
		limitergin.WithErrorHandler(func(c *gin.Context, err error) {
			ctx := c.Request.Context()
			GetLoggerFromCtx(ctx).Error("Failed to get rate limit context", slog.String("ip", c.ClientIP()), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(ctx, i18n.MsgInternalError)})
		}),
		limitergin.WithLimitReachedHandler(func(c *gin.Context) {
			ctx := c.Request.Context()
			GetLoggerFromCtx(ctx).Warn("Rate limit exceeded", slog.String("ip", c.ClientIP()))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": i18n.T(ctx, i18n.MsgTooManyRequests)})
		}),
	)
}
