package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// Probe endpoints stay reachable without credentials.
func authExempt(path string) bool {
	return path == "/health" || path == "/metrics"
}

// BearerAuthMiddleware validates Bearer tokens against the configured API
// keys. An empty key list disables authentication entirely.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make([]string, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, http.StatusUnauthorized, codeBadRequest, "missing authorization header")
				return
			}
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized, codeBadRequest, "authorization header must use Bearer scheme")
				return
			}

			token := auth[len(bearerPrefix):]
			for _, k := range keys {
				if subtle.ConstantTimeCompare([]byte(token), []byte(k)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusUnauthorized, codeBadRequest, "invalid api key")
		})
	}
}
