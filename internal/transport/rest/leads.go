package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/propertypasalo/backend/internal/service/intake"
)

// intakeService defines the minimal interface needed by LeadHandler.
type intakeService interface {
	Submit(ctx context.Context, input intake.SubmitInput) (uuid.UUID, error)
}

// LeadHandler serves the public inquiry intake endpoint.
type LeadHandler struct {
	svc intakeService
	log *slog.Logger
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc intakeService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{svc: svc, log: logger.With("handler", "leads")}
}

type submitLeadRequest struct {
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	Type               string  `json:"type"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	BusinessPage       *string `json:"businessPage"`
	InterestedProperty *string `json:"interestedProperty"`
	ListingID          *string `json:"listingId"`
}

type submitLeadResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Submit handles POST /api/v1/inquiries. No authentication: this is the
// website's lead capture form.
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.svc.Submit(r.Context(), intake.SubmitInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Type:               req.Type,
		Email:              req.Email,
		Phone:              req.Phone,
		BusinessPage:       req.BusinessPage,
		InterestedProperty: req.InterestedProperty,
		ListingID:          req.ListingID,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitLeadResponse{
		ID:      id.String(),
		Message: "Inquiry received successfully.",
	})
}
