// Package promotion converts an Inquiry into a Client. The client insert,
// the inquiry delete, and the feed announcement commit as one transaction:
// readers never observe a client without the inquiry gone, or vice versa.
package promotion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/domain"
	"github.com/propertypasalo/backend/pkg/ctxutil"
)

// defaultNotes is stamped on clients promoted from inquiries with no notes.
const defaultNotes = "Promoted from inquiry to active client"

// inquiryRepo defines the inquiry repository interface needed by promotion.
type inquiryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// clientRepo defines the client repository interface needed by promotion.
type clientRepo interface {
	Create(ctx context.Context, c domain.Client) (domain.Client, error)
}

// eventRepo defines the feed repository interface needed by promotion.
type eventRepo interface {
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
}

// txManager defines the transaction manager interface needed by promotion.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the administrator-initiated promotion operation.
type Service struct {
	log       *slog.Logger
	inquiries inquiryRepo
	clients   clientRepo
	events    eventRepo
	tx        txManager
}

// NewService creates a new promotion service instance.
func NewService(
	logger *slog.Logger,
	inquiries inquiryRepo,
	clients clientRepo,
	events eventRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "promotion"),
		inquiries: inquiries,
		clients:   clients,
		events:    events,
		tx:        tx,
	}
}

// Promote converts the inquiry into an ACTIVE_CLIENT client. The new
// client keeps the inquiry's id, so for every id exactly one of the two
// records exists at any moment.
func (s *Service) Promote(ctx context.Context, inquiryID uuid.UUID) (*domain.Client, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	inq, err := s.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("promotion.Promote: %w", err)
	}

	client := buildClient(*inq, adminID)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.clients.Create(ctx, client)
		if err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		client = created

		if err := s.inquiries.Delete(ctx, inquiryID); err != nil {
			return fmt.Errorf("delete inquiry: %w", err)
		}

		if _, err := s.events.Create(ctx, domain.NewClientPromotedEvent(client)); err != nil {
			return fmt.Errorf("feed event: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("promotion.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "inquiry promoted to client",
		slog.String("client_id", client.ID.String()),
		slog.String("original_type", client.OriginalInquiryType.String()),
	)

	return &client, nil
}

func buildClient(inq domain.Inquiry, adminID uuid.UUID) domain.Client {
	notes := inq.Notes
	if notes == "" {
		notes = defaultNotes
	}
	return domain.Client{
		ID:                  inq.ID,
		FirstName:           inq.FirstName,
		LastName:            inq.LastName,
		Email:               inq.Email,
		Phone:               inq.Phone,
		BusinessPage:        inq.BusinessPage,
		InterestedProperty:  inq.InterestedProperty,
		OriginalInquiryType: inq.Status,
		Status:              domain.ClientStatusActive,
		Notes:               notes,
		PromotedAt:          time.Now().UTC(),
		UpdatedBy:           &adminID,
	}
}
