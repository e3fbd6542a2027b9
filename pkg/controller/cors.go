package controller

import (
	"net/http"
	"slices"
)

// OriginAllowed reports whether origin may call the API. A "*" entry in
// allowed admits every origin. Requests without an Origin header are always
// allowed since they do not come from a browser page.
func OriginAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}

	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

// WithCORS returns a middleware that sets CORS headers for allowed origins
// and short-circuits OPTIONS preflight requests with 204 No Content.
// Disallowed origins get no CORS headers, so browsers block the response.
func WithCORS(allowed []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if OriginAllowed(allowed, origin) {
				allowOrigin := "*"
				if origin != "" && !slices.Contains(allowed, "*") {
					allowOrigin = origin
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-Id, accept, origin, Cache-Control")
				w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")
			}

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
