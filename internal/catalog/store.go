package catalog

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
)

// Store holds the catalog listings in their original order.
//
// A Store is built once and never changes afterwards, so it is safe for
// concurrent readers without locking. Accessors return copies.
type Store struct {
	listings []domain.Listing                    // catalog order
	byID     map[domain.ListingID]domain.Listing // ID -> Listing
	loadedAt time.Time
}

// NewStore builds a store from already validated listings.
func NewStore(listings []domain.Listing) (*Store, error) {
	s := &Store{
		listings: make([]domain.Listing, len(listings)),
		byID:     make(map[domain.ListingID]domain.Listing, len(listings)),
		loadedAt: time.Now(),
	}
	copy(s.listings, listings)

	for _, l := range listings {
		if _, dup := s.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate listing id %d", ErrInvalidCatalog, l.ID)
		}
		s.byID[l.ID] = l
	}
	return s, nil
}

// Open loads, validates and indexes the catalog at path
// (embedded seed when path is empty).
func Open(path string) (*Store, error) {
	f, err := NewLoader(path).Load()
	if err != nil {
		return nil, err
	}
	listings, err := MapListings(f)
	if err != nil {
		return nil, err
	}
	return NewStore(listings)
}

// All returns every listing in catalog order.
func (s *Store) All() []domain.Listing {
	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Get retrieves a listing by ID
func (s *Store) Get(id domain.ListingID) (domain.Listing, bool) {
	l, ok := s.byID[id]
	return l, ok
}

// Has reports whether id belongs to the catalog.
func (s *Store) Has(id domain.ListingID) bool {
	_, ok := s.byID[id]
	return ok
}

// Count returns the number of listings
func (s *Store) Count() int {
	return len(s.listings)
}

// LoadedAt returns when the store was built.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}
