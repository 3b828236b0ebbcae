// Package feed serves the read side of the pipeline: the public event
// feed and live counters for the status page and the social-proof widget,
// plus the admin portal's inquiry and activity listings.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/adapter/postgres/livestatus"
	"github.com/propertypasalo/backend/internal/config"
	"github.com/propertypasalo/backend/internal/domain"
	"github.com/propertypasalo/backend/pkg/ctxutil"
)

// eventRepo defines the feed repository interface needed here.
type eventRepo interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Event, error)
}

// counterRepo defines the live counter interface needed here.
type counterRepo interface {
	Get(ctx context.Context, name string) (int64, error)
}

// inquiryRepo defines the inquiry repository interface needed here.
type inquiryRepo interface {
	List(ctx context.Context) ([]domain.Inquiry, error)
}

// activityRepo defines the audit repository interface needed here.
type activityRepo interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.Activity, error)
}

// LiveStatus is the public counters snapshot.
type LiveStatus struct {
	ViewingsBooked int64 `json:"viewingsBookedCount"`
}

// Service implements feed and listing reads.
type Service struct {
	log        *slog.Logger
	cfg        config.FeedConfig
	events     eventRepo
	counters   counterRepo
	inquiries  inquiryRepo
	activities activityRepo
}

// NewService creates a new feed service instance.
func NewService(
	logger *slog.Logger,
	cfg config.FeedConfig,
	events eventRepo,
	counters counterRepo,
	inquiries inquiryRepo,
	activities activityRepo,
) *Service {
	return &Service{
		log:        logger.With("service", "feed"),
		cfg:        cfg,
		events:     events,
		counters:   counters,
		inquiries:  inquiries,
		activities: activities,
	}
}

// RecentEvents returns the newest feed entries. Public.
func (s *Service) RecentEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	events, err := s.events.ListRecent(ctx, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("feed.RecentEvents: %w", err)
	}
	return events, nil
}

// LiveStatus returns the public counters. Public.
func (s *Service) LiveStatus(ctx context.Context) (LiveStatus, error) {
	viewings, err := s.counters.Get(ctx, livestatus.ViewingsBookedCounter)
	if err != nil {
		return LiveStatus{}, fmt.Errorf("feed.LiveStatus: %w", err)
	}
	return LiveStatus{ViewingsBooked: viewings}, nil
}

// ListInquiries returns all open inquiries for the admin portal.
func (s *Service) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	inquiries, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed.ListInquiries: %w", err)
	}
	return inquiries, nil
}

// RecentActivities returns the newest audit records for the admin portal.
func (s *Service) RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	activities, err := s.activities.ListRecent(ctx, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("feed.RecentActivities: %w", err)
	}
	return activities, nil
}

// ClientActivities returns one client's audit trail for the admin portal.
func (s *Service) ClientActivities(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.Activity, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	activities, err := s.activities.ListByClient(ctx, clientID, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("feed.ClientActivities: %w", err)
	}
	return activities, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}
