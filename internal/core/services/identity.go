package services

import (
	"context"

	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
)

// contextIdentity resolves the caller from the user ID stored by the auth middleware.
type contextIdentity struct{}

// NewContextIdentityResolver returns the request-context backed IdentityResolver.
func NewContextIdentityResolver() portssvc.IdentityResolver {
	return contextIdentity{}
}

func (contextIdentity) CurrentIdentity(ctx context.Context) (string, bool) {
	return middleware.GetUserIDFromCtx(ctx)
}
