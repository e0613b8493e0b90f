package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/platform/config"
	"github.com/SscSPs/portfolio_tracker/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserReaderSvc
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserReaderSvc) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userService: userService}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	return utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// GenerateRefreshToken creates a new refresh token for the given user.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, string, time.Time, error) {
	raw, hash, err := utils.NewRefreshToken()
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return raw, hash, time.Now().Add(s.cfg.RefreshTokenExpiryDuration), nil
}

// ValidateAndParseRefreshToken validates a refresh token string and returns the associated user.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshTokenString, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// refreshCookieSep separates the user ID from the raw token in the refresh cookie.
const refreshCookieSep = ":"

func encodeRefreshCookie(userID, raw string) string {
	return userID + refreshCookieSep + raw
}

func decodeRefreshCookie(value string) (userID, raw string, ok bool) {
	userID, raw, ok = strings.Cut(value, refreshCookieSep)
	return userID, raw, ok && userID != "" && raw != ""
}

// authService issues sessions and announces identity changes.
type authService struct {
	BaseService
	users    portssvc.UserSvcFacade
	tokens   portssvc.TokenSvcFacade
	google   portssvc.GoogleOAuthHandlerSvcFacade
	identity observers[domain.IdentityChange]
}

// NewAuthService creates the session service.
func NewAuthService(users portssvc.UserSvcFacade, tokens portssvc.TokenSvcFacade, google portssvc.GoogleOAuthHandlerSvcFacade) portssvc.AuthSvcFacade {
	return &authService{users: users, tokens: tokens, google: google}
}

func (s *authService) SubscribeIdentity(fn func(domain.IdentityChange)) func() {
	return s.identity.subscribe(fn)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Session, error) {
	user, err := s.users.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.signIn(ctx, user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error) {
	user, err := s.users.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.signIn(ctx, user)
}

// SignInWithGoogle exchanges the authorization code, validates Google's ID token and
// signs in the matching user. Failures are returned as *apperrors.AppError.
func (s *authService) SignInWithGoogle(ctx context.Context, code string) (*domain.Session, error) {
	oauth2Token, err := s.google.ExchangeCodeForToken(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange authorization code with Google")
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			return nil, apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		return nil, apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		s.LogError(ctx, errors.New("missing id_token"), "ID token not found in Google's token response")
		return nil, apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
	}

	payload, err := s.google.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		s.LogError(ctx, err, "Google ID token validation failed")
		return nil, apperrors.NewUnauthorizedError("Invalid Google ID token.")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		return nil, apperrors.NewInternalServerError("Essential user information missing from Google token.")
	}

	user, err := s.users.CreateOAuthUser(ctx, name, email, domain.ProviderGoogle, payload.Subject, emailVerified)
	if err != nil {
		s.LogError(ctx, err, "Failed to create or get OAuth user", slog.String("google_user_id", payload.Subject))
		return nil, err
	}
	return s.signIn(ctx, user)
}

// Refresh rotates the refresh token: the presented one stops working.
func (s *authService) Refresh(ctx context.Context, cookieValue string) (*domain.Session, error) {
	userID, raw, ok := decodeRefreshCookie(cookieValue)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.tokens.ValidateAndParseRefreshToken(ctx, userID, raw)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.users.ClearRefreshToken(ctx, userID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	s.LogInfo(ctx, "User signed out", slog.String("user_id", userID))
	s.identity.notify(domain.IdentityChange{UserID: userID, SignedIn: false})
	return nil
}

func (s *authService) signIn(ctx context.Context, user *domain.User) (*domain.Session, error) {
	session, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User signed in", slog.String("user_id", user.UserID))
	s.identity.notify(domain.IdentityChange{UserID: user.UserID, SignedIn: true})
	return session, nil
}

func (s *authService) issue(ctx context.Context, user *domain.User) (*domain.Session, error) {
	access, accessExpiry, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	raw, hash, refreshExpiry, err := s.tokens.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshToken(ctx, user.UserID, hash, refreshExpiry); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}
	return &domain.Session{
		User:               user,
		AccessToken:        access,
		AccessTokenExpiry:  accessExpiry,
		RefreshToken:       encodeRefreshCookie(user.UserID, raw),
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}
