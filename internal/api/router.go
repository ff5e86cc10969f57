package api

import (
	"net/http"
	"strings"
)

// NewRouter registers the API routes and wraps them with CORS handling
// for the comma separated allowedOrigins list.
func NewRouter(h *Handler, allowedOrigins string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/convert", h.Convert)
	mux.HandleFunc("/healthz", h.Health)

	return CORSMiddleware(allowedOrigins, mux)
}

// CORSMiddleware answers preflight requests and rejects origins that are
// not in the allow list. Requests without an Origin header pass through.
func CORSMiddleware(allowedOrigins string, next http.Handler) http.Handler {
	origins := map[string]struct{}{}
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins[o] = struct{}{}
		}
	}
	_, allowAll := origins["*"]

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := origins[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			} else {
				http.Error(w, "CORS origin denied", http.StatusForbidden)
				return
			}
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
