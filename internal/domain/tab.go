package domain

import "fmt"

// Tab is one of the mutually exclusive render surfaces.
type Tab string

const (
	TabAllListings Tab = "all"
	TabFavorites   Tab = "favorites"
	TabProfile     Tab = "profile"
)

// InitialTab is the surface shown before any tab selection.
const InitialTab = TabAllListings

var tabs = []Tab{TabAllListings, TabFavorites, TabProfile}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	for _, t := range tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return tabs[(t.index()+1)%len(tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return tabs[(t.index()+len(tabs)-1)%len(tabs)]
}

func (t Tab) index() int {
	for i, v := range tabs {
		if v == t {
			return i
		}
	}
	return 0
}

// Title is the label shown on the tab trigger.
func (t Tab) Title() string {
	switch t {
	case TabFavorites:
		return "Избранное"
	case TabProfile:
		return "Профиль"
	default:
		return "Все объявления"
	}
}
