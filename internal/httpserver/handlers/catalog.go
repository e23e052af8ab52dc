package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

// Categories lists the category bar. ?active= marks one chip as active.
func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := domain.CategoryID(r.URL.Query().Get("active"))
		if active == "" {
			active = domain.CategoryAll
		}
		if !active.Valid() {
			writeError(w, r, d, domain.ErrUnknownCategory)
			return
		}
		writeJSON(w, http.StatusOK, view.Chips(active))
	}
}

// Listings filters the catalog without a session: ?q= is the search text,
// ?category= the category id.
func Listings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		state, err := domain.RestoreViewState(q.Get("q"), domain.CategoryID(q.Get("category")), nil)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, d.Pages.ListingsGrid(d.Catalog.All(), state))
	}
}

// Listing returns one catalog card by id. No session is involved, so the
// card is never marked as favorite.
func Listing(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "listingID")
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, d, fmt.Errorf("%w: invalid listing id %q", errBadRequest, raw))
			return
		}
		l, ok := d.Catalog.Get(domain.ListingID(id))
		if !ok {
			writeError(w, r, d, fmt.Errorf("%w: %d", domain.ErrUnknownListing, id))
			return
		}
		writeJSON(w, http.StatusOK, view.NewCard(l, false))
	}
}

func Profile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, view.Profile())
	}
}
