package domain

import (
	"fmt"
	"slices"
)

// ViewState is the user's current selection: search text, active category
// and favorited listings.
//
// It is a value type. Transitions never modify the receiver; they return a
// new ViewState, so a snapshot can be handed to the filter engine or a
// renderer while the owner keeps applying commands. The zero value is the
// initial state (empty search, wildcard category, no favorites).
type ViewState struct {
	search    string
	category  CategoryID
	favorites map[ListingID]struct{}
}

// NewViewState returns the initial state.
func NewViewState() ViewState {
	return ViewState{category: CategoryAll}
}

// RestoreViewState rebuilds a state from its serialized parts.
// Duplicate favorite ids collapse into one.
func RestoreViewState(search string, category CategoryID, favorites []ListingID) (ViewState, error) {
	if category == "" {
		category = CategoryAll
	}
	if !category.Valid() {
		return ViewState{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	s := ViewState{search: search, category: category}
	if len(favorites) > 0 {
		s.favorites = make(map[ListingID]struct{}, len(favorites))
		for _, id := range favorites {
			s.favorites[id] = struct{}{}
		}
	}
	return s, nil
}

func (s ViewState) Search() string { return s.search }

// Category returns the active category, defaulting to the wildcard.
func (s ViewState) Category() CategoryID {
	if s.category == "" {
		return CategoryAll
	}
	return s.category
}

// IsFavorite reports whether id is in the favorites set.
func (s ViewState) IsFavorite(id ListingID) bool {
	_, ok := s.favorites[id]
	return ok
}

// FavoriteCount is the size of the favorites set.
func (s ViewState) FavoriteCount() int { return len(s.favorites) }

// Favorites returns the favorites set in ascending id order.
func (s ViewState) Favorites() []ListingID {
	ids := make([]ListingID, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Apply runs cmd against the state and returns the resulting state.
// On error the receiver is returned unchanged.
func (s ViewState) Apply(cmd Command) (ViewState, error) {
	next, err := cmd.Apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}

// withFavorites returns a copy of s owning a fresh favorites map.
func (s ViewState) withFavorites() ViewState {
	fav := make(map[ListingID]struct{}, len(s.favorites)+1)
	for id := range s.favorites {
		fav[id] = struct{}{}
	}
	s.favorites = fav
	return s
}

// ─────────────────────────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────────────────────────

// Command is a named transition of the ViewState.
type Command interface {
	Name() string
	Apply(ViewState) (ViewState, error)
}

// SetSearch replaces the search text. Any text is accepted.
type SetSearch struct {
	Text string
}

func (SetSearch) Name() string { return "set_search" }

func (c SetSearch) Apply(s ViewState) (ViewState, error) {
	s.search = c.Text
	return s, nil
}

// SetCategory switches the active category.
type SetCategory struct {
	ID CategoryID
}

func (SetCategory) Name() string { return "set_category" }

func (c SetCategory) Apply(s ViewState) (ViewState, error) {
	if !c.ID.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownCategory, c.ID)
	}
	s.category = c.ID
	return s, nil
}

// ToggleFavorite removes ID from the favorites when present and inserts it
// otherwise. Applying it twice is the identity.
//
// The command does not know the catalog; callers that own one check
// membership before dispatching (see session.Service).
type ToggleFavorite struct {
	ID ListingID
}

func (ToggleFavorite) Name() string { return "toggle_favorite" }

func (c ToggleFavorite) Apply(s ViewState) (ViewState, error) {
	s = s.withFavorites()
	if _, ok := s.favorites[c.ID]; ok {
		delete(s.favorites, c.ID)
	} else {
		s.favorites[c.ID] = struct{}{}
	}
	return s, nil
}
