package models

import (
	"database/sql"
)

// User represents a row of the users table.
type User struct {
	UserID         string         `db:"user_id"`
	Email          string         `db:"email"`
	Name           string         `db:"name"`
	PasswordHash   sql.NullString `db:"password_hash"` // NULL for OAuth-only users
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	EmailVerified  bool           `db:"email_verified"`
	AuditFields

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Store hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token
}
