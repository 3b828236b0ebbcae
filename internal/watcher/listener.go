package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertypasalo/backend/internal/config"
)

// Listener holds a dedicated connection on a LISTEN channel and feeds
// each notification to the Watcher.
type Listener struct {
	log     *slog.Logger
	pool    *pgxpool.Pool
	watcher *Watcher
	channel string
	backoff time.Duration
}

// NewListener creates a Listener bound to the configured channel.
func NewListener(logger *slog.Logger, pool *pgxpool.Pool, w *Watcher, cfg config.WatcherConfig) *Listener {
	return &Listener{
		log:     logger.With("component", "watcher_listener"),
		pool:    pool,
		watcher: w,
		channel: cfg.Channel,
		backoff: cfg.ReconnectBackoff,
	}
}

// Run blocks until ctx is cancelled, reconnecting after connection
// failures with a fixed backoff.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.log.ErrorContext(ctx, "listener disconnected", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.backoff):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	// The connection is dedicated to LISTEN; hijacking keeps the pool
	// from handing it to queries.
	raw := conn.Hijack()
	defer raw.Close(context.Background())

	if _, err := raw.Exec(ctx, "LISTEN "+l.channel); err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}

	l.log.InfoContext(ctx, "listening for client changes", slog.String("channel", l.channel))

	for {
		n, err := raw.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}

		if err := l.watcher.HandleNotification(ctx, n.Payload); err != nil {
			l.log.ErrorContext(ctx, "handle client change failed",
				slog.String("payload", n.Payload),
				slog.Any("error", err),
			)
		}
	}
}
