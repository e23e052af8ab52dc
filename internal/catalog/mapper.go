package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
)

// ErrInvalidCatalog wraps every validation failure of a catalog file.
var ErrInvalidCatalog = errors.New("invalid catalog")

// MapListings converts catalog entries into domain listings, keeping file
// order. The whole file is rejected on the first invalid entry: a catalog
// is loaded once and must be trustworthy afterwards.
func MapListings(f File) ([]domain.Listing, error) {
	if len(f.Listings) == 0 {
		return nil, fmt.Errorf("%w: no listings found", ErrInvalidCatalog)
	}

	listings := make([]domain.Listing, 0, len(f.Listings))
	seen := make(map[int]bool, len(f.Listings))

	for i, e := range f.Listings {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("%w: listing #%d (id %d): %v", ErrInvalidCatalog, i+1, e.ID, err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: duplicate listing id %d", ErrInvalidCatalog, e.ID)
		}
		seen[e.ID] = true

		listings = append(listings, domain.Listing{
			ID:       domain.ListingID(e.ID),
			Title:    strings.TrimSpace(e.Title),
			Price:    e.Price,
			Location: e.Location,
			Image:    e.Image,
			Category: domain.CategoryID(e.Category),
			Seller: domain.Seller{
				Name:   e.Seller.Name,
				Rating: e.Seller.Rating,
				Avatar: e.Seller.Avatar,
			},
		})
	}

	return listings, nil
}

func validateEntry(e ListingEntry) error {
	switch {
	case e.ID <= 0:
		return errors.New("id must be positive")
	case strings.TrimSpace(e.Title) == "":
		return errors.New("title is empty")
	case e.Price < 0:
		return fmt.Errorf("price %d is negative", e.Price)
	case !domain.CategoryID(e.Category).Assignable():
		return fmt.Errorf("category %q is not assignable", e.Category)
	// Written negated so NaN fails too.
	case !(e.Seller.Rating >= domain.MinRating && e.Seller.Rating <= domain.MaxRating):
		return fmt.Errorf("seller rating %.1f outside [%.0f, %.0f]", e.Seller.Rating, domain.MinRating, domain.MaxRating)
	}
	return nil
}
