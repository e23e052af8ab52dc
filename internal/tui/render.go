package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

const helpLine = "/ поиск • ←/→ категория • ↑/↓ выбор • пробел избранное • tab/1-3 вкладки • q выход"

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	if m.page.Grid != nil && m.page.ActiveTab == domain.TabAllListings {
		sb.WriteString(m.renderChips())
		sb.WriteString("\n")
	}
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch {
	case m.page.Profile != nil:
		sb.WriteString(m.renderProfile(*m.page.Profile))
	case m.page.Grid != nil:
		sb.WriteString(m.renderGrid(*m.page.Grid))
	}

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Status.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render(helpLine))
	return sb.String()
}

func (m Model) renderHeader() string {
	parts := []string{m.styles.Brand.Render("МаркетМаркет"), m.search.View()}
	if n := m.page.Header.FavoriteCount; n > 0 {
		parts = append(parts, m.styles.Heart.Render("♥")+" "+m.styles.Badge.Render(fmt.Sprint(n)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderChips() string {
	chips := make([]string, 0, len(m.page.Categories))
	for _, c := range m.page.Categories {
		style := m.styles.Chip
		if c.Active {
			style = m.styles.ActiveChip
		}
		chips = append(chips, style.Render(c.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.page.Tabs))
	for _, t := range m.page.Tabs {
		label := t.Title
		if t.Badge > 0 {
			label += fmt.Sprintf(" (%d)", t.Badge)
		}
		style := m.styles.Tab
		if t.Active {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderGrid(g view.Grid) string {
	if g.Empty != nil {
		return m.styles.EmptyTitle.Render(g.Empty.Title) + "\n" + m.styles.Muted.Render(g.Empty.Hint)
	}

	cards := make([]string, 0, len(g.Cards))
	for i, c := range g.Cards {
		cards = append(cards, m.renderCard(c, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderCard(c view.Card, selected bool) string {
	fav := m.styles.Muted.Render("♡")
	if c.Favorite {
		fav = m.styles.Heart.Render("♥")
	}

	body := strings.Join([]string{
		m.styles.Title.Render(c.Title) + "  " + fav,
		m.styles.Price.Render(c.PriceText),
		m.styles.Muted.Render("📍 " + c.Location),
		fmt.Sprintf("(%s) %s  %s %.1f", c.SellerInitial, c.SellerName, m.styles.Star.Render("★"), c.SellerRating),
	}, "\n")

	style := m.styles.Card
	if selected {
		style = m.styles.Selected
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(body)
}

func (m Model) renderProfile(p view.ProfilePage) string {
	var sb strings.Builder

	sb.WriteString(m.styles.ProfileName.Render(fmt.Sprintf("[%s] %s", p.Initials, p.Name)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(p.MemberSince))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %.1f (%d отзывов)\n\n", m.styles.Star.Render("★"), p.Rating, p.ReviewCount))

	sb.WriteString(m.styles.Title.Render("Мои объявления"))
	sb.WriteString("\n")
	for _, l := range p.Listings {
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", l.Title, m.styles.Price.Render(l.PriceText), m.styles.Muted.Render(l.Status)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("Настройки"))
	sb.WriteString("\n")
	for _, s := range p.Settings {
		sb.WriteString("  " + s.Name + "\n")
	}
	return sb.String()
}
