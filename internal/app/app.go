// Package app wires configuration, storage, services, and transport into
// a running server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/propertypasalo/backend/internal/adapter/postgres"
	activityrepo "github.com/propertypasalo/backend/internal/adapter/postgres/activity"
	adminsrepo "github.com/propertypasalo/backend/internal/adapter/postgres/admins"
	clientrepo "github.com/propertypasalo/backend/internal/adapter/postgres/client"
	eventrepo "github.com/propertypasalo/backend/internal/adapter/postgres/event"
	inquiryrepo "github.com/propertypasalo/backend/internal/adapter/postgres/inquiry"
	"github.com/propertypasalo/backend/internal/adapter/postgres/livestatus"
	"github.com/propertypasalo/backend/internal/auth"
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
	"github.com/propertypasalo/backend/migrations"
)

// Run is the application entry point. It loads configuration, connects
// to the database, assembles the services and HTTP server, starts the
// client status listener, and blocks until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txm := postgres.NewTxManager(pool)

	inquiries := inquiryrepo.New(pool)
	clients := clientrepo.New(pool)
	activities := activityrepo.New(pool)
	events := eventrepo.New(pool)
	counters := livestatus.New(pool)
	admins := adminsrepo.New(pool)

	var notifier confirmation.Notifier
	if cfg.SMTP.Enabled() {
		notifier = notify.NewMailer(logger, cfg.SMTP)
	} else {
		notifier = notify.NewNoop(logger)
	}

	intakeService := intake.NewService(logger, inquiries, events)
	confirmationService := confirmation.NewService(logger, inquiries, events, counters, notifier)
	promotionService := promotion.NewService(logger, inquiries, clients, events, txm)
	clientService := clientsvc.NewService(logger, clients, activities, txm)
	bootstrapService := bootstrap.NewService(logger, admins)
	feedService := feed.NewService(logger, cfg.Feed, events, counters, inquiries, activities)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	leadHandler := rest.NewLeadHandler(intakeService, logger)
	webhookHandler := rest.NewWebhookHandler(confirmationService, logger)
	feedHandler := rest.NewFeedHandler(feedService, logger)
	adminHandler := rest.NewAdminHandler(promotionService, clientService, feedService, bootstrapService, logger)

	mux := rest.NewRouter(healthHandler, leadHandler, webhookHandler, feedHandler, adminHandler)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
		middleware.Admin(logger, admins),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	w := watcher.New(logger, events)
	listener := watcher.NewListener(logger, pool, w, cfg.Watcher)

	listenerCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()

	listenerDone := make(chan struct{})
	go func() {
		defer close(listenerDone)
		if err := listener.Run(listenerCtx); err != nil {
			logger.Error("client status listener stopped", slog.Any("error", err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	stopListener()
	select {
	case <-listenerDone:
	case <-shutdownCtx.Done():
	}

	return nil
}

// migrate applies the embedded goose migrations. goose requires a
// *sql.DB, so it gets its own short-lived stdlib connection.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
