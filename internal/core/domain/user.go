package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
)

var (
	ErrFillAllFields      = fmt.Errorf("%w: fill in all fields", apperrors.ErrValidation)
	ErrPasswordsMismatch  = fmt.Errorf("%w: passwords do not match", apperrors.ErrValidation)
	ErrPasswordTooShort   = fmt.Errorf("%w: password is too short", apperrors.ErrValidation)
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
)

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is an identity on whose behalf portfolios and transactions are scoped.
type User struct {
	UserID                 string       `json:"userID"`
	Email                  string       `json:"email"`
	Name                   string       `json:"name"`
	PasswordHash           string       `json:"-"`
	AuthProvider           AuthProvider `json:"authProvider"`
	ProviderUserID         string       `json:"-"`
	EmailVerified          bool         `json:"emailVerified"`
	RefreshTokenHash       string       `json:"-"`
	RefreshTokenExpiryTime *time.Time   `json:"-"`
	AuditFields
}

// GoogleUserInfo holds the subset of Google's userinfo response we use.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
