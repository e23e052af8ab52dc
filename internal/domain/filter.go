package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Visible returns the listings selected by the state's category and search
// text, in catalog order.
//
// A listing is kept when the active category is the wildcard or equals the
// listing's category, and the search text is a case-insensitive substring
// of the title. An empty search matches every title.
func Visible(listings []Listing, s ViewState) []Listing {
	needle := fold(s.Search())
	category := s.Category()

	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if matchesCategory(l, category) && matchesTitle(l, needle) {
			out = append(out, l)
		}
	}
	return out
}

// FavoriteListings returns the favorited listings in catalog order, not in
// the order they were favorited. Category and search do not apply.
func FavoriteListings(listings []Listing, s ViewState) []Listing {
	out := make([]Listing, 0, s.FavoriteCount())
	if s.FavoriteCount() == 0 {
		return out
	}
	for _, l := range listings {
		if s.IsFavorite(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

func matchesCategory(l Listing, category CategoryID) bool {
	return category == CategoryAll || l.Category == category
}

func matchesTitle(l Listing, foldedNeedle string) bool {
	if foldedNeedle == "" {
		return true
	}
	return strings.Contains(fold(l.Title), foldedNeedle)
}

// fold lower-cases s with Unicode rules. Only case is normalized:
// diacritics and width are left alone.
func fold(s string) string {
	if s == "" {
		return s
	}
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Lower(language.Und).String(s)
}
