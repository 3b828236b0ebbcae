// Package confirmation processes the automation system's callback: it
// marks an inquiry CONFIRMED, announces it on the feed, bumps the live
// viewings counter, and emails the operator.
package confirmation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/adapter/postgres/livestatus"
	"github.com/propertypasalo/backend/internal/domain"
)

// inquiryRepo defines the inquiry repository interface needed by confirmation.
type inquiryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error)
}

// eventRepo defines the feed repository interface needed by confirmation.
type eventRepo interface {
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
}

// counterRepo defines the live counter interface needed by confirmation.
type counterRepo interface {
	Increment(ctx context.Context, name string) (int64, error)
}

// Notifier dispatches the operator email. Implementations own their
// timeout; a failure here must never fail the confirmation.
type Notifier interface {
	ConfirmationReceived(ctx context.Context, inq domain.Inquiry) error
}

// Service implements the confirmation webhook operation.
//
// The caller is the external automation system, trusted by network
// boundary; there is deliberately no caller authentication and no replay
// guard — confirming the same inquiry twice appends a second feed entry
// and increments the counter again, matching the observed behavior.
type Service struct {
	log       *slog.Logger
	inquiries inquiryRepo
	events    eventRepo
	counters  counterRepo
	notify    Notifier
}

// NewService creates a new confirmation service instance.
func NewService(
	logger *slog.Logger,
	inquiries inquiryRepo,
	events eventRepo,
	counters counterRepo,
	notify Notifier,
) *Service {
	return &Service{
		log:       logger.With("service", "confirmation"),
		inquiries: inquiries,
		events:    events,
		counters:  counters,
		notify:    notify,
	}
}

// Confirm transitions the inquiry to CONFIRMED, appends the feed entry,
// and increments the viewings counter. The call succeeds once those three
// writes have applied; the operator email is best-effort on top.
func (s *Service) Confirm(ctx context.Context, inquiryID uuid.UUID) error {
	inq, err := s.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return fmt.Errorf("confirmation.Confirm: %w", err)
	}

	if _, err := s.inquiries.UpdateStatus(ctx, inquiryID, domain.InquiryStatusConfirmed); err != nil {
		return fmt.Errorf("confirmation.Confirm: update status: %w", err)
	}

	// The feed message flavor comes from the inquiry's pre-update type.
	if _, err := s.events.Create(ctx, domain.NewConfirmationEvent(*inq)); err != nil {
		return fmt.Errorf("confirmation.Confirm: feed event: %w", err)
	}

	count, err := s.counters.Increment(ctx, livestatus.ViewingsBookedCounter)
	if err != nil {
		return fmt.Errorf("confirmation.Confirm: increment counter: %w", err)
	}

	s.log.InfoContext(ctx, "inquiry confirmed",
		slog.String("inquiry_id", inquiryID.String()),
		slog.String("type", inq.Status.String()),
		slog.Int64("viewings_booked", count),
	)

	if err := s.notify.ConfirmationReceived(ctx, *inq); err != nil {
		s.log.WarnContext(ctx, "operator notification failed",
			slog.String("inquiry_id", inquiryID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
