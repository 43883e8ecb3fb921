package middleware

import (
	"net/http"
	"slices"
	"strconv"

	"dreamshoots/pkg/logger"
)

// CORSConfig describes the cross-origin policy. An empty AllowedOrigins list
// means wildcard mode: any origin is allowed but credentials never are.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
	MaxAge           int
}

func CORS(cfg CORSConfig, log *logger.Logger) func(http.Handler) http.Handler {
	wildcard := len(cfg.AllowedOrigins) == 0
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			headers := w.Header()
			switch {
			case wildcard:
				headers.Set("Access-Control-Allow-Origin", "*")
			case slices.Contains(cfg.AllowedOrigins, origin):
				headers.Set("Access-Control-Allow-Origin", origin)
				headers.Add("Vary", "Origin")
				if cfg.AllowCredentials {
					headers.Set("Access-Control-Allow-Credentials", "true")
				}
			default:
				log.Warn("Rejected cross-origin request", "origin", origin, "path", r.URL.Path)
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			headers.Set("Access-Control-Expose-Headers", "*")

			if r.Method == http.MethodOptions {
				headers.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
					headers.Set("Access-Control-Allow-Headers", requested)
				} else {
					headers.Set("Access-Control-Allow-Headers", "*")
				}
				headers.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
