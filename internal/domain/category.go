package domain

// CategoryID identifies a catalog category. The set of valid ids is closed.
type CategoryID string

const (
	// CategoryAll is the wildcard: it matches every listing.
	CategoryAll         CategoryID = "all"
	CategoryElectronics CategoryID = "electronics"
	CategoryFashion     CategoryID = "fashion"
	CategoryHome        CategoryID = "home"
	CategoryAuto        CategoryID = "auto"
	CategoryRealty      CategoryID = "realty"
	CategoryServices    CategoryID = "services"
)

// Category is one entry of the category filter bar.
type Category struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`
	Icon string     `json:"icon"`
}

// categories is ordered the way the filter bar shows them, wildcard first.
var categories = []Category{
	{ID: CategoryAll, Name: "Все категории", Icon: "Grid3x3"},
	{ID: CategoryElectronics, Name: "Электроника", Icon: "Smartphone"},
	{ID: CategoryFashion, Name: "Одежда и обувь", Icon: "Shirt"},
	{ID: CategoryHome, Name: "Для дома", Icon: "Home"},
	{ID: CategoryAuto, Name: "Авто", Icon: "Car"},
	{ID: CategoryRealty, Name: "Недвижимость", Icon: "Building"},
	{ID: CategoryServices, Name: "Услуги", Icon: "Briefcase"},
}

// Categories returns a copy of the category enumeration in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory returns the category with the given id.
func LookupCategory(id CategoryID) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Valid reports whether id belongs to the enumeration (wildcard included).
func (id CategoryID) Valid() bool {
	_, ok := LookupCategory(id)
	return ok
}

// Assignable reports whether a listing may carry this category.
// The wildcard is a filter value only.
func (id CategoryID) Assignable() bool {
	return id != CategoryAll && id.Valid()
}
