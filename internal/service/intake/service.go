// Package intake accepts public inquiry submissions: it validates the
// form payload, persists a new Inquiry, and announces it on the feed.
package intake

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/domain"
)

// inquiryRepo defines the inquiry repository interface needed by intake.
type inquiryRepo interface {
	Create(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error)
}

// eventRepo defines the feed repository interface needed by intake.
type eventRepo interface {
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
}

// Service implements the public intake operation.
type Service struct {
	log       *slog.Logger
	inquiries inquiryRepo
	events    eventRepo
}

// NewService creates a new intake service instance.
func NewService(logger *slog.Logger, inquiries inquiryRepo, events eventRepo) *Service {
	return &Service{
		log:       logger.With("service", "intake"),
		inquiries: inquiries,
		events:    events,
	}
}

// Submit validates the payload and creates the inquiry plus its feed
// announcement. The two writes are deliberately independent: losing the
// feed entry is cosmetic and only logged, losing the inquiry fails the
// whole call.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	inq := domain.Inquiry{
		ID:                 uuid.New(),
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		Phone:              input.Phone,
		BusinessPage:       input.BusinessPage,
		InterestedProperty: input.InterestedProperty,
		ListingID:          input.ListingID,
		Status:             domain.InquiryStatus(input.Type),
		Notes:              domain.DefaultInquiryNotes,
	}

	created, err := s.inquiries.Create(ctx, inq)
	if err != nil {
		return uuid.Nil, fmt.Errorf("intake.Submit: %w", err)
	}

	if _, err := s.events.Create(ctx, domain.NewInquiryReceivedEvent(created)); err != nil {
		s.log.WarnContext(ctx, "inquiry saved but feed event failed",
			slog.String("inquiry_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "inquiry created",
		slog.String("inquiry_id", created.ID.String()),
		slog.String("type", created.Status.String()),
	)

	return created.ID, nil
}
