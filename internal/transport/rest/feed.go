package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/propertypasalo/backend/internal/domain"
	"github.com/propertypasalo/backend/internal/service/feed"
)

// feedService defines the public read interface needed by FeedHandler.
type feedService interface {
	RecentEvents(ctx context.Context, limit int) ([]domain.Event, error)
	LiveStatus(ctx context.Context) (feed.LiveStatus, error)
}

// FeedHandler serves the public status page reads: the activity ticker
// and the live counters.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

// Events handles GET /api/v1/feed/events?limit=20.
func (h *FeedHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.RecentEvents(r.Context(), queryLimit(r))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// LiveStatus handles GET /api/v1/feed/live-status.
func (h *FeedHandler) LiveStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.LiveStatus(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
