package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OptionalAuthMiddleware validates a bearer token when one is presented.
// Requests without an Authorization header continue anonymously; a header that
// is malformed or carries an invalid token is rejected with 401.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.T(ctx, i18n.MsgInvalidToken)})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := i18n.MsgInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = i18n.MsgTokenExpired
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.T(ctx, msg)})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.T(ctx, i18n.MsgInvalidToken)})
			return
		}

		ctx = WithUserID(ctx, userID)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests. It must run after OptionalAuthMiddleware.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserIDFromContext(c); !ok {
			ctx := c.Request.Context()
			GetLoggerFromCtx(ctx).Warn("Anonymous request to protected route")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.T(ctx, i18n.MsgMustSignIn)})
			return
		}
		c.Next()
	}
}
