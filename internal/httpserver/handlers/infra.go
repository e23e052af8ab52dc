package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/deps"
)

type componentStatus struct {
	OK             bool   `json:"ok"`
	ListingsLoaded *int   `json:"listings_loaded,omitempty"`
	LoadedAt       string `json:"loaded_at,omitempty"`
	Backend        string `json:"backend,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"catalog":  checkCatalog(d),
			"sessions": checkSessions(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	// Nothing to browse without listings
	if c, ok := components["catalog"]; ok && !c.OK {
		return "critical"
	}
	// Stateless browsing still works without sessions
	if s, ok := components["sessions"]; ok && !s.OK {
		return "degraded"
	}
	return "operational"
}

func checkCatalog(d deps.Deps) componentStatus {
	if d.Catalog == nil {
		return componentStatus{OK: false, Error: "catalog not loaded"}
	}
	count := d.Catalog.Count()
	return componentStatus{
		OK:             count > 0,
		ListingsLoaded: &count,
		LoadedAt:       d.Catalog.LoadedAt().Format("2006-01-02 15:04:05"),
	}
}

func checkSessions(ctx context.Context, d deps.Deps) componentStatus {
	if d.Sessions == nil {
		return componentStatus{OK: false, Impact: "sessions-disabled", Error: "service not initialized"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Sessions.Ping(ctx); err != nil {
		return componentStatus{
			OK:      false,
			Backend: d.Sessions.Backend(),
			Impact:  "sessions-disabled",
			Error:   err.Error(),
		}
	}
	return componentStatus{OK: true, Backend: d.Sessions.Backend()}
}
