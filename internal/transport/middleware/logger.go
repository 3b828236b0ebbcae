package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/propertypasalo/backend/pkg/ctxutil"
)

// Logger emits one structured line per request once the handler returns.
// Server errors are logged at error level so they stand out in the feed
// of routine traffic.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logRequest(logger, r, sw.status, time.Since(start))
		})
	}
}

func logRequest(logger *slog.Logger, r *http.Request, status int, took time.Duration) {
	ctx := r.Context()

	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Duration("duration", took),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok && userID != uuid.Nil {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}

	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.LogAttrs(ctx, level, "http.request", attrs...)
}

// statusWriter records the first status code written so the log line can
// report it. Later WriteHeader calls pass through but don't overwrite it.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
	}
	w.ResponseWriter.WriteHeader(code)
}
