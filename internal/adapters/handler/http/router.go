package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

func NewHandler(
	authHandler *AuthHandler,
	candidateHandler *CandidateHandler,
	voteHandler *VoteHandler,
	statsHandler *StatsHandler,
	healthHandler *HealthHandler,
	authService ports.AuthService,
	log zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))

	if healthHandler != nil {
		r.Get("/health", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.With(SessionAuth(authService)).Get("/me", authHandler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(SessionAuth(authService))

			r.Get("/candidates", candidateHandler.List)

			r.With(RequireRole(domain.RoleVoter)).Post("/votes", voteHandler.Cast)

			r.Route("/admin", func(r chi.Router) {
				r.Use(RequireRole(domain.RoleAdmin))
				r.Post("/candidates", candidateHandler.Create)
				r.Get("/stats", statsHandler.Stats)
			})
		})
	})

	return r
}
