//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertypasalo/backend/internal/adapter/postgres"
	activityrepo "github.com/propertypasalo/backend/internal/adapter/postgres/activity"
	adminsrepo "github.com/propertypasalo/backend/internal/adapter/postgres/admins"
	clientrepo "github.com/propertypasalo/backend/internal/adapter/postgres/client"
	eventrepo "github.com/propertypasalo/backend/internal/adapter/postgres/event"
	inquiryrepo "github.com/propertypasalo/backend/internal/adapter/postgres/inquiry"
	"github.com/propertypasalo/backend/internal/adapter/postgres/livestatus"
	"github.com/propertypasalo/backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/propertypasalo/backend/internal/auth"
	"github.com/propertypasalo/backend/internal/config"
	"github.com/propertypasalo/backend/internal/notify"
	"github.com/propertypasalo/backend/internal/service/bootstrap"
	clientsvc "github.com/propertypasalo/backend/internal/service/client"
	"github.com/propertypasalo/backend/internal/service/confirmation"
	"github.com/propertypasalo/backend/internal/service/feed"
	"github.com/propertypasalo/backend/internal/service/intake"
	"github.com/propertypasalo/backend/internal/service/promotion"
	"github.com/propertypasalo/backend/internal/transport/middleware"
	"github.com/propertypasalo/backend/internal/transport/rest"
	"github.com/propertypasalo/backend/internal/watcher"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper), including the
// LISTEN-based client status watcher.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	inquiries := inquiryrepo.New(pool)
	clients := clientrepo.New(pool)
	events := eventrepo.New(pool)
	activities := activityrepo.New(pool)
	counters := livestatus.New(pool)
	admins := adminsrepo.New(pool)

	// 4. No SMTP in tests.
	notifier := notify.NewNoop(logger)

	// 5. Services.
	intakeService := intake.NewService(logger, inquiries, events)
	confirmationService := confirmation.NewService(logger, inquiries, events, counters, notifier)
	promotionService := promotion.NewService(logger, inquiries, clients, events, txm)
	clientService := clientsvc.NewService(logger, clients, activities, txm)
	bootstrapService := bootstrap.NewService(logger, admins)
	feedService := feed.NewService(logger, config.FeedConfig{DefaultLimit: 20, MaxLimit: 100}, events, counters, inquiries, activities)

	// 6. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 7. Handlers + router.
	healthHandler := rest.NewHealthHandler(pool, "test-version")
	leadHandler := rest.NewLeadHandler(intakeService, logger)
	webhookHandler := rest.NewWebhookHandler(confirmationService, logger)
	feedHandler := rest.NewFeedHandler(feedService, logger)
	adminHandler := rest.NewAdminHandler(promotionService, clientService, feedService, bootstrapService, logger)

	mux := rest.NewRouter(healthHandler, leadHandler, webhookHandler, feedHandler, adminHandler)

	// 8. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
		middleware.Admin(logger, admins),
	)(mux)

	// 9. Client status watcher on the shared database.
	w := watcher.New(logger, events)
	listener := watcher.NewListener(logger, pool, w, config.WatcherConfig{
		Channel:          "client_status_changed",
		ReconnectBackoff: time.Second,
	})
	listenerCtx, stopListener := context.WithCancel(context.Background())
	listenerDone := make(chan struct{})
	go func() {
		defer close(listenerDone)
		if err := listener.Run(listenerCtx); err != nil {
			t.Logf("watcher listener stopped: %v", err)
		}
	}()
	t.Cleanup(func() {
		stopListener()
		select {
		case <-listenerDone:
		case <-time.After(5 * time.Second):
			t.Log("watcher listener did not stop in time")
		}
	})

	// 10. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// doJSON sends a request with an optional JSON body and bearer token and
// returns the status code plus raw response body.
// ---------------------------------------------------------------------------

func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func decodeJSON[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return v
}

// ---------------------------------------------------------------------------
// userToken mints a JWT for a fresh caller. adminToken additionally
// registers the caller as a site admin directly in the database.
// ---------------------------------------------------------------------------

func userToken(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok, userID
}

func adminToken(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	tok, userID := userToken(t, ts)
	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO site_admins (uid) VALUES ($1) ON CONFLICT (uid) DO NOTHING`, userID)
	if err != nil {
		t.Fatalf("insert test admin: %v", err)
	}
	return tok, userID
}
