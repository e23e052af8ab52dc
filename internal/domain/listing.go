package domain

// ListingID is the unique identifier of a listing in the catalog.
type ListingID int

// Listing represents one item or service offered on the marketplace.
//
// Listings are built once when the catalog is loaded and are never
// mutated afterwards; every consumer receives them by value.
type Listing struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is unique within the catalog and strictly positive.
	ID ListingID `json:"id"`

	// ─────────────────────────────
	// Description
	// ─────────────────────────────

	Title string `json:"title"`

	// Price is expressed in whole roubles and is never negative.
	Price int64 `json:"price"`

	Location string `json:"location"`

	// Image is an opaque reference handed to the renderer as is.
	Image string `json:"image"`

	// Category is always an assignable member of the enumeration
	// (never the wildcard).
	Category CategoryID `json:"category"`

	// ─────────────────────────────
	// Seller
	// ─────────────────────────────

	Seller Seller `json:"seller"`
}

// Seller is the person behind a listing.
type Seller struct {
	Name string `json:"name"`

	// Rating lies in [MinRating, MaxRating].
	Rating float64 `json:"rating"`

	Avatar string `json:"avatar"`
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)
