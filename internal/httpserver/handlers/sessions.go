package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/session"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

// sessionResponse is the page of the session's active tab plus its id.
type sessionResponse struct {
	ID string `json:"id"`
	view.Page
}

type searchRequest struct {
	Text string `json:"text"`
}

type categoryRequest struct {
	ID domain.CategoryID `json:"id"`
}

type tabRequest struct {
	Tab domain.Tab `json:"tab"`
}

func render(d deps.Deps, id string, st session.State) sessionResponse {
	return sessionResponse{ID: id, Page: d.Pages.Page(d.Catalog.All(), st.View, st.Tab)}
}

func CreateSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, st, err := d.Sessions.Create(r.Context())
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		w.Header().Set("Location", "/api/sessions/"+id)
		writeJSON(w, http.StatusCreated, render(d, id, st))
	}
}

func GetSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		st, err := d.Sessions.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, render(d, id, st))
	}
}

func DeleteSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func SetSearch(d deps.Deps) http.HandlerFunc {
	return mutate(d, func(r *http.Request, w http.ResponseWriter, id string) (session.State, error) {
		var req searchRequest
		if err := decodeBody(w, r, &req); err != nil {
			return session.State{}, err
		}
		return d.Sessions.SetSearch(r.Context(), id, req.Text)
	})
}

func SetCategory(d deps.Deps) http.HandlerFunc {
	return mutate(d, func(r *http.Request, w http.ResponseWriter, id string) (session.State, error) {
		var req categoryRequest
		if err := decodeBody(w, r, &req); err != nil {
			return session.State{}, err
		}
		return d.Sessions.SetCategory(r.Context(), id, req.ID)
	})
}

func SelectTab(d deps.Deps) http.HandlerFunc {
	return mutate(d, func(r *http.Request, w http.ResponseWriter, id string) (session.State, error) {
		var req tabRequest
		if err := decodeBody(w, r, &req); err != nil {
			return session.State{}, err
		}
		return d.Sessions.SelectTab(r.Context(), id, req.Tab)
	})
}

func ToggleFavorite(d deps.Deps) http.HandlerFunc {
	return mutate(d, func(r *http.Request, _ http.ResponseWriter, id string) (session.State, error) {
		raw := chi.URLParam(r, "listingID")
		listing, err := strconv.Atoi(raw)
		if err != nil {
			return session.State{}, fmt.Errorf("%w: invalid listing id %q", errBadRequest, raw)
		}
		return d.Sessions.ToggleFavorite(r.Context(), id, domain.ListingID(listing))
	})
}

type mutation func(r *http.Request, w http.ResponseWriter, id string) (session.State, error)

// mutate runs fn against the session in the URL and answers with the new page.
func mutate(d deps.Deps, fn mutation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		st, err := fn(r, w, id)
		if err != nil {
			d.Logger.Debug("session mutation rejected",
				logger.String("session_id", id),
				logger.String("path", r.URL.Path),
				logger.Error(err))
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, render(d, id, st))
	}
}
