package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#00AAFF")
	muted  = lipgloss.Color("#888888")
	heart  = lipgloss.Color("#E53935")
	star   = lipgloss.Color("#FFC107")
)

// Styles holds every lipgloss style the browser draws with.
type Styles struct {
	Brand       lipgloss.Style
	Badge       lipgloss.Style
	Chip        lipgloss.Style
	ActiveChip  lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Card        lipgloss.Style
	Selected    lipgloss.Style
	Title       lipgloss.Style
	Price       lipgloss.Style
	Muted       lipgloss.Style
	Heart       lipgloss.Style
	Star        lipgloss.Style
	EmptyTitle  lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	ProfileName lipgloss.Style
}

func DefaultStyles() Styles {
	chip := lipgloss.NewStyle().Padding(0, 1)
	tab := lipgloss.NewStyle().Padding(0, 2)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return Styles{
		Brand:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(heart).Padding(0, 1),
		Chip:        chip.Foreground(muted),
		ActiveChip:  chip.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent),
		Tab:         tab.Foreground(muted),
		ActiveTab:   tab.Bold(true).Underline(true).Foreground(accent),
		Card:        card,
		Selected:    card.BorderForeground(accent),
		Title:       lipgloss.NewStyle().Bold(true),
		Price:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Heart:       lipgloss.NewStyle().Foreground(heart),
		Star:        lipgloss.NewStyle().Foreground(star),
		EmptyTitle:  lipgloss.NewStyle().Bold(true).MarginTop(1),
		Status:      lipgloss.NewStyle().Foreground(heart),
		Help:        lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		ProfileName: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}
