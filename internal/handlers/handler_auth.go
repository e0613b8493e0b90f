package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
	"github.com/SscSPs/portfolio_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const defaultAuthRateLimit = "5-M"

// authHandler handles sign-up, sign-in and session rotation.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	cookieName   string
	cookiePath   string
	secureCookie bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:  as,
		cookieName:   cfg.RefreshTokenCookieName,
		cookiePath:   cfg.RefreshTokenCookiePath,
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication. They sit outside the
// optional-auth group so an expired access token cannot block a refresh.
func registerAuthRoutes(auth *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, cfg)

	ipLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		slog.Warn("Invalid AUTH_RATE_LIMIT, using default", slog.String("error", err.Error()), slog.String("default", defaultAuthRateLimit))
		ipLimiter, _ = middleware.NewMemoryLimiter(defaultAuthRateLimit)
	}

	auth.POST("/register", h.register)
	auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	auth.POST("/refresh", h.refresh)
	auth.POST("/logout", middleware.OptionalAuthMiddleware(cfg.JWTSecret), middleware.RequireAuth(), h.logout)
	auth.POST("/google/exchange-code", middleware.RateLimit(ipLimiter), h.exchangeCodeGoogle)
}

// register godoc
// @Summary Register new user
// @Description Creates a local account and signs it in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Sign-up form"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Missing fields, mismatched or short password"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, i18n.MsgRegisterError)
		return
	}
	h.writeSession(c, http.StatusCreated, session)
}

// login godoc
// @Summary User login
// @Description Authenticates with email and password. Returns an access token and sets the refresh cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, i18n.MsgLoginError)
		return
	}
	h.writeSession(c, http.StatusOK, session)
}

// refresh godoc
// @Summary Refresh the session
// @Description Rotates the refresh cookie and issues a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} ErrorResponse "Missing, invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie == "" {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Refresh attempted without cookie")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: i18n.T(c.Request.Context(), i18n.MsgSessionExpired)})
		return
	}

	session, err := h.authService.Refresh(c.Request.Context(), cookie)
	if err != nil {
		h.clearCookie(c)
		respondError(c, err, i18n.MsgSessionExpired)
		return
	}
	h.writeSession(c, http.StatusOK, session)
}

// logout godoc
// @Summary Sign out
// @Description Revokes the stored refresh token and clears the cookie.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err, i18n.MsgInternalError)
		return
	}
	h.clearCookie(c)
	c.Status(http.StatusNoContent)
}

// exchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a session
// @Description Validates Google's ID token, links or creates the user and signs it in.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Failure 504 {object} ErrorResponse "Google unreachable"
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeCodeGoogle(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.SignInWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, i18n.MsgGoogleSignInError)
		return
	}
	h.writeSession(c, http.StatusOK, session)
}

func (h *authHandler) writeSession(c *gin.Context, status int, session *domain.Session) {
	maxAge := int(time.Until(session.RefreshTokenExpiry).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, session.RefreshToken, maxAge, h.cookiePath, "", h.secureCookie, true)
	c.JSON(status, dto.AuthResponse{
		Token:     session.AccessToken,
		ExpiresAt: session.AccessTokenExpiry,
		User:      dto.ToUserResponse(session.User),
	})
}

func (h *authHandler) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, "", -1, h.cookiePath, "", h.secureCookie, true)
}
