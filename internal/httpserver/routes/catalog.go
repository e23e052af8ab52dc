package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/mw"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	api := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	api.Get("/api/categories", handlers.Categories(d))
	api.Get("/api/listings", handlers.Listings(d))
	api.Get("/api/listings/{listingID}", handlers.Listing(d))
	api.Get("/api/profile", handlers.Profile(d))
}
