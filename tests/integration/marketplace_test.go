package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/marketmarket/internal/catalog"
	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/session"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

type sessionPage struct {
	ID        string      `json:"id"`
	ActiveTab domain.Tab  `json:"active_tab"`
	Grid      *view.Grid  `json:"grid"`
	Header    view.Header `json:"header"`
}

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := catalog.Open("")
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}
	log := logger.New("error", false)

	srv := httptest.NewServer(httpserver.NewRouter(log, deps.Deps{
		Logger:           log,
		StartTime:        time.Now(),
		RateBurst:        100,
		RateRefillPerMin: 100,
		Catalog:          store,
		Sessions:         session.NewService(session.NewMemoryStore(), store, time.Hour, log, nil),
		Pages:            view.NewBuilder(nil),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any) sessionPage {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		t.Fatalf("%s %s: status %d", method, path, resp.StatusCode)
	}
	var p sessionPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return p
}

func ids(cards []view.Card) []domain.ListingID {
	out := make([]domain.ListingID, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

// TestBrowsingScenarios walks one session through the marketplace the way a
// visitor would, checking the grid after every step.
func TestBrowsingScenarios(t *testing.T) {
	srv := startServer(t)

	created := call(t, srv, http.MethodPost, "/api/sessions", nil)
	base := "/api/sessions/" + created.ID

	steps := []struct {
		name      string
		method    string
		path      string
		body      any
		wantTab   domain.Tab
		wantCards []domain.ListingID
		wantEmpty bool
	}{
		{"all listings", http.MethodGet, "", nil, domain.TabAllListings, []domain.ListingID{1, 2, 3, 4, 5, 6}, false},
		{"auto category", http.MethodPut, "/category", map[string]string{"id": "auto"}, domain.TabAllListings, []domain.ListingID{3}, false},
		{"search outside category", http.MethodPut, "/search", map[string]string{"text": "iphone"}, domain.TabAllListings, nil, true},
		{"back to all categories", http.MethodPut, "/category", map[string]string{"id": "all"}, domain.TabAllListings, []domain.ListingID{1}, false},
		{"clear search", http.MethodPut, "/search", map[string]string{"text": ""}, domain.TabAllListings, []domain.ListingID{1, 2, 3, 4, 5, 6}, false},
		{"favorites empty", http.MethodPut, "/tab", map[string]string{"tab": "favorites"}, domain.TabFavorites, nil, true},
		{"favorite 6", http.MethodPost, "/favorites/6", nil, domain.TabFavorites, []domain.ListingID{6}, false},
		{"favorite 2", http.MethodPost, "/favorites/2", nil, domain.TabFavorites, []domain.ListingID{2, 6}, false},
		{"unfavorite 6", http.MethodPost, "/favorites/6", nil, domain.TabFavorites, []domain.ListingID{2}, false},
		{"search does not filter favorites", http.MethodPut, "/search", map[string]string{"text": "nothing"}, domain.TabFavorites, []domain.ListingID{2}, false},
	}

	for _, step := range steps {
		p := call(t, srv, step.method, base+step.path, step.body)

		if p.ActiveTab != step.wantTab {
			t.Fatalf("%s: tab = %s, want %s", step.name, p.ActiveTab, step.wantTab)
		}
		if p.Grid == nil {
			t.Fatalf("%s: no grid", step.name)
		}
		if step.wantEmpty != (p.Grid.Empty != nil) {
			t.Fatalf("%s: empty state = %v, want %v", step.name, p.Grid.Empty != nil, step.wantEmpty)
		}
		got := ids(p.Grid.Cards)
		if len(got) != len(step.wantCards) {
			t.Fatalf("%s: cards = %v, want %v", step.name, got, step.wantCards)
		}
		for i := range got {
			if got[i] != step.wantCards[i] {
				t.Fatalf("%s: cards = %v, want %v", step.name, got, step.wantCards)
			}
		}
	}
}

// TestSessionsAreIsolated checks that two visitors never see each other's state.
func TestSessionsAreIsolated(t *testing.T) {
	srv := startServer(t)

	a := call(t, srv, http.MethodPost, "/api/sessions", nil)
	b := call(t, srv, http.MethodPost, "/api/sessions", nil)
	if a.ID == b.ID {
		t.Fatal("sessions share an id")
	}

	call(t, srv, http.MethodPost, "/api/sessions/"+a.ID+"/favorites/1", nil)
	call(t, srv, http.MethodPut, "/api/sessions/"+a.ID+"/category", map[string]string{"id": "home"})

	pb := call(t, srv, http.MethodGet, "/api/sessions/"+b.ID, nil)
	if pb.Header.FavoriteCount != 0 {
		t.Fatalf("session b sees %d favorites", pb.Header.FavoriteCount)
	}
	if len(pb.Grid.Cards) != 6 {
		t.Fatalf("session b sees a filtered grid: %v", ids(pb.Grid.Cards))
	}
}
