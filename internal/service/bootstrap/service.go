// Package bootstrap lets the first authenticated caller grant themselves
// administrator access, once, while the administrators map is still empty.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/domain"
	"github.com/propertypasalo/backend/pkg/ctxutil"
)

// adminsRepo defines the administrators map interface needed by bootstrap.
type adminsRepo interface {
	Any(ctx context.Context) (bool, error)
	Grant(ctx context.Context, uid uuid.UUID) error
}

// Service implements the one-time self-elevation.
type Service struct {
	log    *slog.Logger
	admins adminsRepo
}

// NewService creates a new bootstrap service instance.
func NewService(logger *slog.Logger, admins adminsRepo) *Service {
	return &Service{
		log:    logger.With("service", "bootstrap"),
		admins: admins,
	}
}

// GrantSelfAdmin makes the caller an administrator if none exists yet.
//
// The emptiness check and the grant are two separate store calls, not a
// compare-and-set: two concurrent first callers can both pass the check
// and both become administrators. That race is accepted as a one-time
// operational risk of initial setup.
func (s *Service) GrantSelfAdmin(ctx context.Context) (uuid.UUID, error) {
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	any, err := s.admins.Any(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("bootstrap.GrantSelfAdmin: %w", err)
	}
	if any {
		return uuid.Nil, domain.ErrForbidden
	}

	if err := s.admins.Grant(ctx, uid); err != nil {
		return uuid.Nil, fmt.Errorf("bootstrap.GrantSelfAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "first administrator bootstrapped",
		slog.String("uid", uid.String()),
	)

	return uid, nil
}
