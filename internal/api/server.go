package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DeVyAN2006/honeypot-scam-api/internal/engine"
)

type Server struct {
	router   *chi.Mux
	srv      *http.Server
	engine   *engine.Engine
	apiToken string
}

func NewServer(port int, apiToken string, eng *engine.Engine) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		srv:      &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: router},
		engine:   eng,
		apiToken: apiToken,
	}

	router.Get("/", s.root)
	router.Post("/", s.root)
	router.Get("/health", s.health)
	router.Head("/health", s.health)
	router.Get("/api/v1/honeypot/status", s.status)

	router.Group(func(r chi.Router) {
		if apiToken != "" {
			r.Use(BearerAuthMiddleware(apiToken))
		}
		r.Post("/api/honeypot", s.honeypot)
	})

	return s
}

func (s *Server) Start() error {
	slog.Info("API server starting", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// BearerAuthMiddleware rejects requests whose Authorization header does not
// carry the configured bearer token.
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != token {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, envelope{Status: "success", Reply: "Honeypot API is running."})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, envelope{Status: "success", Reply: "OK"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"agent":    "honeypot",
		"status":   "active",
		"sessions": s.engine.Sessions(),
	})
}
