package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

func NewHandler(authHandler *AuthHandler, leadHandler *LeadHandler, tokens ports.TokenService, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Route("/leads", func(r chi.Router) {
			r.Use(RequireAuth(tokens))
			r.Get("/", leadHandler.ListLeads)
			r.Post("/", leadHandler.CreateLead)
			r.Put("/{id}", leadHandler.UpdateLead)
			r.Delete("/{id}", leadHandler.DeleteLead)
		})
	})

	return r
}
