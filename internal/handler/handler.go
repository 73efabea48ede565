package handler

import (
	"context"
	"net/http"
)

// DB is the minimal database surface the base handler needs.
// *pgxpool.Pool satisfies it; tests use a stub. A nil DB means the
// deployment runs without a store.
type DB interface {
	Ping(ctx context.Context) error
}

// Handler carries shared dependencies for the top-level endpoints and
// middleware.
type Handler struct {
	db             DB
	allowedOrigins []string
}

// New creates the base handler. allowedOrigins is the CORS allow-list,
// in production the deployed frontend plus the local development origin.
func New(db DB, allowedOrigins ...string) *Handler {
	return &Handler{db: db, allowedOrigins: allowedOrigins}
}

// CORS restricts cross-origin access to the configured origin allow-list.
// Only GET, POST and OPTIONS are permitted; credentials are allowed for
// listed origins. Preflight requests are answered directly.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); h.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Add("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range h.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
