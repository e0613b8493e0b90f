package services

import (
	"context"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// GenerateRefreshToken returns a raw refresh token, its hash for storage and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (raw string, hash string, expiry time.Time, err error)
	// ValidateAndParseRefreshToken validates a refresh token string against a user's stored token details.
	// It returns the user if the token is valid and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

// AuthSvcFacade issues and revokes sessions and announces identity changes.
type AuthSvcFacade interface {
	IdentityNotifier

	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Session, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error)
	SignInWithGoogle(ctx context.Context, code string) (*domain.Session, error)
	// Refresh rotates the session identified by a refresh cookie value.
	Refresh(ctx context.Context, cookieValue string) (*domain.Session, error)
	Logout(ctx context.Context, userID string) error
}
