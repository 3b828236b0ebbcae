package rest

import "net/http"

// NewRouter assembles the HTTP mux. Authentication and admin marking
// happen in the middleware chain around the mux; the webhook and intake
// routes are public by design.
func NewRouter(
	health *HealthHandler,
	leads *LeadHandler,
	webhook *WebhookHandler,
	feed *FeedHandler,
	admin *AdminHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/inquiries", leads.Submit)

	mux.HandleFunc("POST /webhooks/confirmations/{inquiryID}", webhook.Confirm)

	mux.HandleFunc("GET /api/v1/feed/events", feed.Events)
	mux.HandleFunc("GET /api/v1/feed/live-status", feed.LiveStatus)

	mux.HandleFunc("POST /api/v1/admin/bootstrap", admin.Bootstrap)
	mux.HandleFunc("GET /api/v1/admin/inquiries", admin.ListInquiries)
	mux.HandleFunc("POST /api/v1/admin/inquiries/{inquiryID}/promote", admin.Promote)
	mux.HandleFunc("GET /api/v1/admin/clients", admin.ListClients)
	mux.HandleFunc("GET /api/v1/admin/clients/{clientID}", admin.GetClient)
	mux.HandleFunc("PATCH /api/v1/admin/clients/{clientID}", admin.UpdateClient)
	mux.HandleFunc("GET /api/v1/admin/clients/{clientID}/activities", admin.ClientActivities)
	mux.HandleFunc("GET /api/v1/admin/activities", admin.RecentActivities)

	return mux
}
