package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedListings() []Listing {
	return []Listing{
		{ID: 1, Title: "iPhone 14 Pro 256GB Space Black", Price: 89990, Category: CategoryElectronics},
		{ID: 2, Title: "Диван угловой с оттоманкой", Price: 45000, Category: CategoryHome},
		{ID: 3, Title: "Toyota Camry 2020", Price: 2100000, Category: CategoryAuto},
		{ID: 4, Title: "Квартира 2-комнатная, 55м²", Price: 8500000, Category: CategoryRealty},
		{ID: 5, Title: "Кроссовки Nike Air Max", Price: 7500, Category: CategoryFashion},
		{ID: 6, Title: "Ремонт квартир под ключ", Price: 50000, Category: CategoryServices},
	}
}

func ids(listings []Listing) []ListingID {
	out := make([]ListingID, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func mustState(t *testing.T, search string, category CategoryID, favorites ...ListingID) ViewState {
	t.Helper()
	s, err := RestoreViewState(search, category, favorites)
	require.NoError(t, err)
	return s
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category CategoryID
		want     []ListingID
	}{
		{name: "initial state shows everything", search: "", category: CategoryAll, want: []ListingID{1, 2, 3, 4, 5, 6}},
		{name: "category only", search: "", category: CategoryAuto, want: []ListingID{3}},
		{name: "search is case insensitive", search: "IPHONE", category: CategoryAll, want: []ListingID{1}},
		{name: "cyrillic case folding", search: "КВАРТИР", category: CategoryAll, want: []ListingID{4, 6}},
		{name: "search and category combine", search: "квартир", category: CategoryServices, want: []ListingID{6}},
		{name: "substring is unanchored", search: "camry 20", category: CategoryAll, want: []ListingID{3}},
		{name: "no match", search: "macbook", category: CategoryAll, want: []ListingID{}},
		{name: "category excludes search hit", search: "iphone", category: CategoryHome, want: []ListingID{}},
		{name: "whitespace is significant", search: " camry", category: CategoryAll, want: []ListingID{3}},
		{name: "leading whitespace mismatch", search: "  toyota", category: CategoryAll, want: []ListingID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(seedListings(), mustState(t, tt.search, tt.category))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestVisibleMatchesPredicateForEveryListing(t *testing.T) {
	searches := []string{"", "a", "кв", "PRO", "2020", "ключ", "zzz", "IPHONE", "ДИВАН", "м²"}
	listings := seedListings()

	for _, c := range Categories() {
		for _, q := range searches {
			s := mustState(t, q, c.ID)
			visible := Visible(listings, s)

			kept := make(map[ListingID]bool, len(visible))
			for _, l := range visible {
				kept[l.ID] = true
			}
			for _, l := range listings {
				titleOK := strings.Contains(strings.ToLower(l.Title), strings.ToLower(q))
				want := (c.ID == CategoryAll || l.Category == c.ID) && titleOK
				assert.Equalf(t, want, kept[l.ID], "category=%s search=%q listing=%d", c.ID, q, l.ID)
			}
		}
	}
}

func TestVisiblePreservesCatalogOrder(t *testing.T) {
	listings := []Listing{
		{ID: 9, Title: "b phone", Category: CategoryElectronics},
		{ID: 2, Title: "a phone", Category: CategoryElectronics},
		{ID: 5, Title: "c phone", Category: CategoryElectronics},
	}
	got := Visible(listings, mustState(t, "phone", CategoryAll))
	assert.Equal(t, []ListingID{9, 2, 5}, ids(got))
}

func TestVisibleWildcardIgnoresListingCategory(t *testing.T) {
	listings := []Listing{
		{ID: 1, Title: "x", Category: "something-else"},
		{ID: 2, Title: "y", Category: CategoryAuto},
	}
	got := Visible(listings, NewViewState())
	assert.Equal(t, []ListingID{1, 2}, ids(got))
}

func TestVisibleTwoItemScenario(t *testing.T) {
	listings := []Listing{
		{ID: 1, Title: "iPhone 14 Pro", Category: CategoryElectronics},
		{ID: 2, Title: "Диван", Category: CategoryHome},
	}
	got := Visible(listings, mustState(t, "iphone", CategoryAll))
	require.Len(t, got, 1)
	assert.Equal(t, ListingID(1), got[0].ID)
}

func TestVisibleOnZeroValueState(t *testing.T) {
	var s ViewState
	assert.Len(t, Visible(seedListings(), s), 6)
}

func TestFavoriteListings(t *testing.T) {
	listings := seedListings()

	t.Run("catalog order, not insertion order", func(t *testing.T) {
		s := NewViewState()
		for _, id := range []ListingID{5, 1, 3} {
			var err error
			s, err = s.Apply(ToggleFavorite{ID: id})
			require.NoError(t, err)
		}
		assert.Equal(t, []ListingID{1, 3, 5}, ids(FavoriteListings(listings, s)))
	})

	t.Run("ignores search and category", func(t *testing.T) {
		s := mustState(t, "nothing matches this", CategoryAuto, 2, 4)
		assert.Equal(t, []ListingID{2, 4}, ids(FavoriteListings(listings, s)))
	})

	t.Run("ids outside the catalog are skipped", func(t *testing.T) {
		s := mustState(t, "", CategoryAll, 42, 6)
		assert.Equal(t, []ListingID{6}, ids(FavoriteListings(listings, s)))
	})

	t.Run("empty favorites", func(t *testing.T) {
		got := FavoriteListings(listings, NewViewState())
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
