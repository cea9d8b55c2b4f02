package middleware

import (
	"net/http"
	"slices"
)

const wildcardOrigin = "*"

// Cors libera as origens configuradas. A origem "*" libera qualquer origem.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, wildcardOrigin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && (allowAny || slices.Contains(allowedOrigins, origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Expose-Headers", CorrelationIDHeader)
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
