package mapping

import (
	"database/sql"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
	"github.com/SscSPs/portfolio_tracker/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:           d.UserID,
		Email:            d.Email,
		Name:             d.Name,
		PasswordHash:     nullString(d.PasswordHash),
		AuthProvider:     string(d.AuthProvider),
		ProviderUserID:   nullString(d.ProviderUserID),
		EmailVerified:    d.EmailVerified,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		RefreshTokenHash: nullString(d.RefreshTokenHash),
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:           m.UserID,
		Email:            m.Email,
		Name:             m.Name,
		PasswordHash:     m.PasswordHash.String,
		AuthProvider:     domain.AuthProvider(m.AuthProvider),
		ProviderUserID:   m.ProviderUserID.String,
		EmailVerified:    m.EmailVerified,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		RefreshTokenHash: m.RefreshTokenHash.String,
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
