package domain

// Profile is the demo account shown on the profile tab.
//
// It is static and intentionally not connected to the catalog or to the
// view state: its listings are not catalog entries and favorites do not
// affect it.
type Profile struct {
	Name        string           `json:"name"`
	Initials    string           `json:"initials"`
	MemberSince string           `json:"member_since"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"review_count"`
	Listings    []ProfileListing `json:"listings"`
	Settings    []ProfileSetting `json:"settings"`
}

// ProfileListing is one of the demo account's own listings.
type ProfileListing struct {
	Title  string `json:"title"`
	Price  int64  `json:"price"`
	Image  string `json:"image"`
	Status string `json:"status"`
}

// ProfileSetting is an entry of the settings menu.
type ProfileSetting struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DemoProfile returns the static profile data.
func DemoProfile() Profile {
	return Profile{
		Name:        "Иван Иванов",
		Initials:    "ИИ",
		MemberSince: "На сервисе с января 2024",
		Rating:      4.9,
		ReviewCount: 42,
		Listings: []ProfileListing{
			{Title: "iPhone 14 Pro 256GB", Price: 89990, Image: "/placeholder.svg", Status: "Активно"},
			{Title: `MacBook Pro 16"`, Price: 145000, Image: "/placeholder.svg", Status: "Активно"},
		},
		Settings: []ProfileSetting{
			{Name: "Уведомления", Icon: "Bell"},
			{Name: "Безопасность", Icon: "Shield"},
			{Name: "Способы оплаты", Icon: "CreditCard"},
		},
	}
}
