package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/mw"
)

func init() { Register(registerSessions) }

func registerSessions(r chi.Router, d deps.Deps) {
	// One limiter shared by every mutation route.
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateBurst,
		RefillPerIPPerMin: d.RateRefillPerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))

		r.With(limit).Post("/", handlers.CreateSession(d))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetSession(d))

			r.Group(func(r chi.Router) {
				r.Use(limit)
				r.Put("/search", handlers.SetSearch(d))
				r.Put("/category", handlers.SetCategory(d))
				r.Put("/tab", handlers.SelectTab(d))
				r.Post("/favorites/{listingID}", handlers.ToggleFavorite(d))
				r.Delete("/", handlers.DeleteSession(d))
			})
		})
	})
}
