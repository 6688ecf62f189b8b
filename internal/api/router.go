package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avikds/careerpath-be/internal/api/handlers"
	"github.com/avikds/careerpath-be/internal/auth"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(authHandler *handlers.AuthHandler, careerHandler *handlers.CareerHandler, issuer *auth.Issuer) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the SPA frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Generation routes (protected)
		r.Group(func(r chi.Router) {
			r.Use(issuer.Middleware())
			r.Post("/analyze-career", careerHandler.Analyze)
			r.Post("/generate-cover-letter", careerHandler.CoverLetter)
			r.Post("/generate-interview", careerHandler.Interview)
			r.Post("/generate-roadmap", careerHandler.Roadmap)
			r.Get("/history", careerHandler.History)
		})
	})

	return r
}
