package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/studydeck-backend/internal/config"
)

// CORS answers preflight requests with 204 and decorates the rest.
// The request Origin is echoed back, never "*", so credentials keep working
// with a wildcard allow-list.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny := false
	allowed := make(map[string]struct{})
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			allowAny = true
		default:
			allowed[o] = struct{}{}
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok || allowAny {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Expose-Headers", requestIDHeader)
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
