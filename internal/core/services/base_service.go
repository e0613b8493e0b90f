package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Identity portssvc.IdentityResolver
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CurrentIdentity returns the signed-in user, if any.
func (s *BaseService) CurrentIdentity(ctx context.Context) (string, bool) {
	if s.Identity == nil {
		return "", false
	}
	return s.Identity.CurrentIdentity(ctx)
}

// RequireIdentity returns the signed-in user or apperrors.ErrUnauthenticated.
func (s *BaseService) RequireIdentity(ctx context.Context) (string, error) {
	userID, ok := s.CurrentIdentity(ctx)
	if !ok {
		s.LogDebug(ctx, "Write attempted without identity")
		return "", apperrors.ErrUnauthenticated
	}
	return userID, nil
}
