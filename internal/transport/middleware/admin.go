package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/propertypasalo/backend/pkg/ctxutil"
)

type adminChecker interface {
	IsAdmin(ctx context.Context, uid uuid.UUID) (bool, error)
}

// Admin marks authenticated requests from registered site admins. It
// only annotates the context; rejection happens in the services so the
// same rule applies to every transport.
func Admin(logger *slog.Logger, checker adminChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			isAdmin, err := checker.IsAdmin(r.Context(), userID)
			if err != nil {
				logger.ErrorContext(r.Context(), "admin lookup failed",
					slog.String("user_id", userID.String()),
					slog.Any("error", err),
				)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if isAdmin {
				r = r.WithContext(ctxutil.WithAdmin(r.Context()))
			}
			next.ServeHTTP(w, r)
		})
	}
}
