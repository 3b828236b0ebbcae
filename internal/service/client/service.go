// Package client implements administrator edits to Client records. A
// status change and its STATUS_CHANGE audit record commit in the same
// transaction, so a client never changes status without a trail.
package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/domain"
	"github.com/propertypasalo/backend/pkg/ctxutil"
)

// clientRepo defines the client repository interface needed by this service.
type clientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, c domain.Client) (*domain.Client, error)
}

// activityRepo defines the audit repository interface needed by this service.
type activityRepo interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements client reads and administrator edits.
type Service struct {
	log        *slog.Logger
	clients    clientRepo
	activities activityRepo
	tx         txManager
}

// NewService creates a new client service instance.
func NewService(logger *slog.Logger, clients clientRepo, activities activityRepo, tx txManager) *Service {
	return &Service{
		log:        logger.With("service", "client"),
		clients:    clients,
		activities: activities,
		tx:         tx,
	}
}

// Get returns one client.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}
	return c, nil
}

// List returns all clients, most recently promoted first.
func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.List: %w", err)
	}
	return clients, nil
}

// Update applies an administrator's edits. When the edit changes the
// status, the update and its STATUS_CHANGE activity apply atomically.
// HOMEOWNER never moves back to ACTIVE_CLIENT.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Client, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Client
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.clients.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		next := *current
		input.apply(&next)
		next.UpdatedBy = &adminID

		if next.Status != current.Status && !current.Status.CanTransitionTo(next.Status) {
			return domain.NewValidationError("status",
				fmt.Sprintf("cannot transition from %s to %s", current.Status, next.Status))
		}

		updated, err = s.clients.Update(ctx, next)
		if err != nil {
			return fmt.Errorf("update client: %w", err)
		}

		if next.Status != current.Status {
			activity := domain.NewStatusChangeActivity(*updated, current.Status, next.Status, adminID)
			if _, err := s.activities.Create(ctx, activity); err != nil {
				return fmt.Errorf("status change activity: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("client.Update: %w", err)
	}

	s.log.InfoContext(ctx, "client updated",
		slog.String("client_id", id.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
