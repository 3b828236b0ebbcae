package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// confirmationService defines the minimal interface needed by WebhookHandler.
type confirmationService interface {
	Confirm(ctx context.Context, inquiryID uuid.UUID) error
}

// WebhookHandler serves the automation system's callback. The caller is
// trusted by network boundary: there is no authentication on this route,
// and repeated deliveries are applied repeatedly.
type WebhookHandler struct {
	svc confirmationService
	log *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(svc confirmationService, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, log: logger.With("handler", "webhook")}
}

// Confirm handles POST /webhooks/confirmations/{inquiryID}.
func (h *WebhookHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("inquiryID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid inquiry id")
		return
	}

	if err := h.svc.Confirm(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Lead confirmed and notifications sent.",
	})
}
