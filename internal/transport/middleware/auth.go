package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/propertypasalo/backend/pkg/ctxutil"
)

const bearerPrefix = "Bearer "

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Auth resolves a Bearer token into the caller's id on the context. A
// request without a token continues anonymous — the intake form and the
// confirmation webhook carry none — and the per-operation admin checks
// decide whether anonymous is acceptable. A token that is present but
// invalid is rejected outright.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := validator.ValidateAccessToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}
