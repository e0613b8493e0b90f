package services

import (
	"context"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
)

// IdentityResolver answers "who is the caller". Every identity-scoped
// operation asks it first: reads without an identity return empty results and
// writes fail with apperrors.ErrUnauthenticated.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context) (string, bool)
}

// IdentityNotifier pushes sign-in and sign-out events to subscribers.
type IdentityNotifier interface {
	SubscribeIdentity(fn func(domain.IdentityChange)) (unsubscribe func())
}
