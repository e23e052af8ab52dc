package view

import (
	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/metrics"
)

// Page is everything a host needs to draw one screen: the header, the
// category bar, the tab strip and the body of the active tab.
type Page struct {
	Header     Header       `json:"header"`
	Categories []Chip       `json:"categories"`
	Tabs       []TabItem    `json:"tabs"`
	ActiveTab  domain.Tab   `json:"active_tab"`
	Grid       *Grid        `json:"grid,omitempty"`
	Profile    *ProfilePage `json:"profile,omitempty"`
}

type Header struct {
	Search        string `json:"search"`
	FavoriteCount int    `json:"favorite_count"`
}

// Chip is one entry of the category bar.
type Chip struct {
	ID     domain.CategoryID `json:"id"`
	Name   string            `json:"name"`
	Icon   string            `json:"icon"`
	Active bool              `json:"active"`
}

type TabItem struct {
	ID     domain.Tab `json:"id"`
	Title  string     `json:"title"`
	Badge  int        `json:"badge,omitempty"` // favorites count, shown only when > 0
	Active bool       `json:"active"`
}

// Grid is the listing surface. Exactly one of Cards and Empty is meaningful:
// an empty result renders the empty state instead of the grid.
type Grid struct {
	Cards []Card      `json:"cards"`
	Empty *EmptyState `json:"empty,omitempty"`
}

type Card struct {
	ID            domain.ListingID  `json:"id"`
	Title         string            `json:"title"`
	Price         int64             `json:"price"`
	PriceText     string            `json:"price_text"`
	Location      string            `json:"location"`
	Image         string            `json:"image"`
	Category      domain.CategoryID `json:"category"`
	SellerName    string            `json:"seller_name"`
	SellerAvatar  string            `json:"seller_avatar,omitempty"`
	SellerInitial string            `json:"seller_initial"`
	SellerRating  float64           `json:"seller_rating"`
	Favorite      bool              `json:"favorite"`
}

type EmptyState struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

var (
	// NoResults is shown when the listing grid has nothing to display.
	NoResults = EmptyState{
		Title: "Ничего не найдено",
		Hint:  "Попробуйте изменить параметры поиска",
	}
	// NoFavorites is shown on the favorites tab when nothing is favorited.
	NoFavorites = EmptyState{
		Title: "Избранное пусто",
		Hint:  "Добавляйте понравившиеся объявления в избранное",
	}
)

type ProfilePage struct {
	domain.Profile
	Listings []ProfileListing `json:"listings"`
}

type ProfileListing struct {
	domain.ProfileListing
	PriceText string `json:"price_text"`
}

// Builder derives pages from the catalog and a view state.
type Builder struct {
	metrics *metrics.Metrics
}

// NewBuilder creates a page builder. m may be nil.
func NewBuilder(m *metrics.Metrics) *Builder {
	return &Builder{metrics: m}
}

// Page builds the screen for tab. Tabs outside the enumeration render as
// the initial tab.
func (b *Builder) Page(listings []domain.Listing, s domain.ViewState, tab domain.Tab) Page {
	if _, err := domain.ParseTab(string(tab)); err != nil {
		tab = domain.InitialTab
	}

	p := Page{
		Header: Header{
			Search:        s.Search(),
			FavoriteCount: s.FavoriteCount(),
		},
		Categories: Chips(s.Category()),
		Tabs:       tabItems(tab, s.FavoriteCount()),
		ActiveTab:  tab,
	}

	switch tab {
	case domain.TabFavorites:
		g := FavoritesGrid(listings, s)
		p.Grid = &g
	case domain.TabProfile:
		pp := Profile()
		p.Profile = &pp
	default:
		g := b.ListingsGrid(listings, s)
		p.Grid = &g
	}
	return p
}

// ListingsGrid is the all-listings surface: the filter engine's visible set.
func (b *Builder) ListingsGrid(listings []domain.Listing, s domain.ViewState) Grid {
	visible := domain.Visible(listings, s)
	b.metrics.Visible(len(visible))
	if len(visible) == 0 {
		empty := NoResults
		return Grid{Cards: []Card{}, Empty: &empty}
	}
	return Grid{Cards: Cards(visible, s)}
}

// FavoritesGrid is the favorites surface. It ignores search and category.
func FavoritesGrid(listings []domain.Listing, s domain.ViewState) Grid {
	favs := domain.FavoriteListings(listings, s)
	if len(favs) == 0 {
		empty := NoFavorites
		return Grid{Cards: []Card{}, Empty: &empty}
	}
	return Grid{Cards: Cards(favs, s)}
}

// Cards maps listings to cards, keeping their order.
func Cards(listings []domain.Listing, s domain.ViewState) []Card {
	cards := make([]Card, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, NewCard(l, s.IsFavorite(l.ID)))
	}
	return cards
}

func NewCard(l domain.Listing, favorite bool) Card {
	return Card{
		ID:            l.ID,
		Title:         l.Title,
		Price:         l.Price,
		PriceText:     FormatPrice(l.Price),
		Location:      l.Location,
		Image:         l.Image,
		Category:      l.Category,
		SellerName:    l.Seller.Name,
		SellerAvatar:  l.Seller.Avatar,
		SellerInitial: Initial(l.Seller.Name),
		SellerRating:  l.Seller.Rating,
		Favorite:      favorite,
	}
}

// Chips returns the category bar with active highlighted.
func Chips(active domain.CategoryID) []Chip {
	cats := domain.Categories()
	chips := make([]Chip, 0, len(cats))
	for _, c := range cats {
		chips = append(chips, Chip{ID: c.ID, Name: c.Name, Icon: c.Icon, Active: c.ID == active})
	}
	return chips
}

func tabItems(active domain.Tab, favorites int) []TabItem {
	tabs := domain.Tabs()
	items := make([]TabItem, 0, len(tabs))
	for _, t := range tabs {
		item := TabItem{ID: t, Title: t.Title(), Active: t == active}
		if t == domain.TabFavorites {
			item.Badge = favorites
		}
		items = append(items, item)
	}
	return items
}

// Profile is the static profile surface.
func Profile() ProfilePage {
	p := domain.DemoProfile()
	listings := make([]ProfileListing, 0, len(p.Listings))
	for _, l := range p.Listings {
		listings = append(listings, ProfileListing{ProfileListing: l, PriceText: FormatPrice(l.Price)})
	}
	return ProfilePage{Profile: p, Listings: listings}
}
