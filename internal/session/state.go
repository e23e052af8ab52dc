package session

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
)

// State is everything one client has selected: the view state feeding the
// filter engine and the tab being displayed.
type State struct {
	View      domain.ViewState
	Tab       domain.Tab
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewState returns the initial state of a fresh session.
func NewState(now time.Time) State {
	return State{
		View:      domain.NewViewState(),
		Tab:       domain.InitialTab,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Snapshot is the serialized form of a State, used by the session stores.
type Snapshot struct {
	Search    string             `json:"search"`
	Category  domain.CategoryID  `json:"category"`
	Favorites []domain.ListingID `json:"favorites"`
	Tab       domain.Tab         `json:"tab"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Snapshot captures s for storage.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Search:    s.View.Search(),
		Category:  s.View.Category(),
		Favorites: s.View.Favorites(),
		Tab:       s.Tab,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// State rebuilds the live state, rejecting snapshots that do not satisfy
// the view state invariants.
func (sn Snapshot) State() (State, error) {
	view, err := domain.RestoreViewState(sn.Search, sn.Category, sn.Favorites)
	if err != nil {
		return State{}, fmt.Errorf("corrupt session snapshot: %w", err)
	}
	tab := sn.Tab
	if tab == "" {
		tab = domain.InitialTab
	}
	if _, err := domain.ParseTab(string(tab)); err != nil {
		return State{}, fmt.Errorf("corrupt session snapshot: %w", err)
	}
	return State{
		View:      view,
		Tab:       tab,
		CreatedAt: sn.CreatedAt,
		UpdatedAt: sn.UpdatedAt,
	}, nil
}

// Catalog is the part of the catalog store a dispatcher needs.
type Catalog interface {
	Has(id domain.ListingID) bool
}

// withoutStale drops favorites the catalog no longer carries. A snapshot
// written against an older catalog file would otherwise hold ids that can
// neither be rendered nor toggled off.
func (sn Snapshot) withoutStale(catalog Catalog) (Snapshot, []domain.ListingID) {
	var stale []domain.ListingID
	kept := make([]domain.ListingID, 0, len(sn.Favorites))
	for _, id := range sn.Favorites {
		if catalog.Has(id) {
			kept = append(kept, id)
			continue
		}
		stale = append(stale, id)
	}
	sn.Favorites = kept
	return sn, stale
}

// Dispatch applies cmd to st after checking it against the catalog.
//
// Favorites must stay a subset of the catalog, so toggling an id the
// catalog does not know fails with domain.ErrUnknownListing and leaves st
// unchanged.
func Dispatch(st State, cmd domain.Command, catalog Catalog) (State, error) {
	if toggle, ok := cmd.(domain.ToggleFavorite); ok && !catalog.Has(toggle.ID) {
		return st, fmt.Errorf("%w: %d", domain.ErrUnknownListing, toggle.ID)
	}

	view, err := st.View.Apply(cmd)
	if err != nil {
		return st, err
	}
	st.View = view
	return st, nil
}

// SelectTab switches the displayed surface. It never touches the view state.
func SelectTab(st State, tab domain.Tab) (State, error) {
	if _, err := domain.ParseTab(string(tab)); err != nil {
		return st, err
	}
	st.Tab = tab
	return st, nil
}
