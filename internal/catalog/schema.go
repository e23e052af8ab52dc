package catalog

// File is the root structure of a catalog YAML file.
type File struct {
	Listings []ListingEntry `yaml:"listings"`
}

// ListingEntry is a listing as written in the catalog file.
type ListingEntry struct {
	ID       int         `yaml:"id"`
	Title    string      `yaml:"title"`
	Price    int64       `yaml:"price"`
	Location string      `yaml:"location"`
	Image    string      `yaml:"image,omitempty"`
	Category string      `yaml:"category"`
	Seller   SellerEntry `yaml:"seller"`
}

// SellerEntry is the seller block of a listing entry.
type SellerEntry struct {
	Name   string  `yaml:"name"`
	Rating float64 `yaml:"rating"`
	Avatar string  `yaml:"avatar,omitempty"`
}
