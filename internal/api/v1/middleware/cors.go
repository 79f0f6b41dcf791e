package middleware

import (
	"net/http"

	"github.com/auralabs/aura/internal/config"
)

// CORS allows the configured browser origin to call the API with credentials.
// Cookie auth rules out a wildcard origin, so the origin is echoed only when
// it matches the configured one.
func CORS() func(http.Handler) http.Handler {
	allowed := config.GetAllowedOrigin()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin == allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
