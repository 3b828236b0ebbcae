package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/propertypasalo/backend/internal/domain"
	"github.com/propertypasalo/backend/internal/service/client"
)

// promotionService defines the minimal interface needed for promotions.
type promotionService interface {
	Promote(ctx context.Context, inquiryID uuid.UUID) (*domain.Client, error)
}

// clientService defines the minimal interface needed for client management.
type clientService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, input client.UpdateInput) (*domain.Client, error)
}

// adminFeedService defines the admin-gated listing interface.
type adminFeedService interface {
	ListInquiries(ctx context.Context) ([]domain.Inquiry, error)
	RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)
	ClientActivities(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.Activity, error)
}

// bootstrapService defines the first-admin claim interface.
type bootstrapService interface {
	GrantSelfAdmin(ctx context.Context) (uuid.UUID, error)
}

// AdminHandler serves the admin portal REST endpoints.
type AdminHandler struct {
	promotion promotionService
	clients   clientService
	feed      adminFeedService
	bootstrap bootstrapService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(
	promotion promotionService,
	clients clientService,
	feed adminFeedService,
	bootstrap bootstrapService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		promotion: promotion,
		clients:   clients,
		feed:      feed,
		bootstrap: bootstrap,
		log:       logger.With("handler", "admin"),
	}
}

// ListInquiries handles GET /api/v1/admin/inquiries.
func (h *AdminHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.feed.ListInquiries(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inquiries)
}

// Promote handles POST /api/v1/admin/inquiries/{inquiryID}/promote.
func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("inquiryID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid inquiry id")
		return
	}

	promoted, err := h.promotion.Promote(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, promoted)
}

// ListClients handles GET /api/v1/admin/clients.
func (h *AdminHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// GetClient handles GET /api/v1/admin/clients/{clientID}.
func (h *AdminHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("clientID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	c, err := h.clients.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type updateClientRequest struct {
	FirstName          *string `json:"firstName"`
	LastName           *string `json:"lastName"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	BusinessPage       *string `json:"businessPage"`
	InterestedProperty *string `json:"interestedProperty"`
	Location           *string `json:"location"`
	Status             *string `json:"status"`
	Notes              *string `json:"notes"`
	ProfilePictureURL  *string `json:"profilePictureUrl"`
}

// UpdateClient handles PATCH /api/v1/admin/clients/{clientID}.
func (h *AdminHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("clientID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.clients.Update(r.Context(), id, client.UpdateInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		BusinessPage:       req.BusinessPage,
		InterestedProperty: req.InterestedProperty,
		Location:           req.Location,
		Status:             req.Status,
		Notes:              req.Notes,
		ProfilePictureURL:  req.ProfilePictureURL,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// RecentActivities handles GET /api/v1/admin/activities?limit=50.
func (h *AdminHandler) RecentActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.feed.RecentActivities(r.Context(), queryLimit(r))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// ClientActivities handles GET /api/v1/admin/clients/{clientID}/activities.
func (h *AdminHandler) ClientActivities(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("clientID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	activities, err := h.feed.ClientActivities(r.Context(), id, queryLimit(r))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// Bootstrap handles POST /api/v1/admin/bootstrap: the authenticated
// caller claims the first admin seat.
func (h *AdminHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	uid, err := h.bootstrap.GrantSelfAdmin(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"uid":     uid.String(),
		"message": "admin access granted",
	})
}

// queryLimit parses the optional limit parameter. Zero means "use the
// configured default"; the feed service clamps it.
func queryLimit(r *http.Request) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0
	}
	limit, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return limit
}
