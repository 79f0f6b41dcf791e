package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/services/session"
	"github.com/auralabs/aura/pkg/httpext"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireSession validates the session cookie and places the bound user id in
// the request context. A missing or invalid session is 401; business-level
// auth failures (unknown email, bad password) stay 400 in the handlers.
func RequireSession(sessions *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := sessions.ValidateSession(r)
			if err != nil {
				log.Warn().Err(err).Msg("Session validation failed")
				httpext.JsonError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if claims == nil || claims.UserID == "" {
				httpext.JsonError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID returns a context carrying the session-bound user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the session-bound user id
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
