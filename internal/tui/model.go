// Package tui is the interactive terminal host of the marketplace view.
// One bubbletea model owns one session state; every key press is turned
// into a command, applied, and the page is derived again.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrSnakeDoc/marketmarket/internal/catalog"
	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/session"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

// Model is the marketplace browser.
type Model struct {
	catalog *catalog.Store
	pages   *view.Builder
	logger  logger.Logger

	state  session.State
	page   view.Page
	search textinput.Model

	searchFocused bool
	cursor        int
	status        string // last rejected command, cleared on the next key
	width         int
	height        int

	styles Styles
}

// New creates a browser over the catalog, starting from the initial state.
func New(store *catalog.Store, pages *view.Builder, log logger.Logger, st session.State) Model {
	ti := textinput.New()
	ti.Placeholder = "Поиск объявлений..."
	ti.Prompt = "🔍 "
	ti.Width = 40
	ti.SetValue(st.View.Search())

	m := Model{
		catalog: store,
		pages:   pages,
		logger:  log,
		state:   st,
		search:  ti,
		styles:  DefaultStyles(),
	}
	m.refresh()
	return m
}

// State returns the current session state.
func (m Model) State() session.State { return m.state }

// Page returns the page currently displayed.
func (m Model) Page() view.Page { return m.page }

// Cursor is the index of the selected card.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.status = ""
		if m.searchFocused {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searchFocused = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.View.Search() {
		m.dispatch(domain.SetSearch{Text: m.search.Value()})
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		return m, m.search.Focus()
	case "tab":
		m.selectTab(m.state.Tab.Next())
	case "shift+tab":
		m.selectTab(m.state.Tab.Prev())
	case "1", "2", "3":
		m.selectTab(domain.Tabs()[msg.String()[0]-'1'])
	case "right", "l":
		m.shiftCategory(1)
	case "left", "h":
		m.shiftCategory(-1)
	case "down", "j":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-1)
	case " ", "f":
		m.toggleSelected()
	}
	return m, nil
}

func (m *Model) dispatch(cmd domain.Command) {
	next, err := session.Dispatch(m.state, cmd, m.catalog)
	if err != nil {
		m.status = err.Error()
		m.logger.Warn("command rejected",
			logger.String("command", cmd.Name()),
			logger.Error(err))
		return
	}
	m.state = next
	m.logger.Debug("command applied",
		logger.String("command", cmd.Name()),
		logger.String("category", string(next.View.Category())),
		logger.Int("favorites", next.View.FavoriteCount()))
	m.refresh()
}

func (m *Model) selectTab(tab domain.Tab) {
	next, err := session.SelectTab(m.state, tab)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.state = next
	m.cursor = 0
	m.refresh()
}

func (m *Model) shiftCategory(delta int) {
	if m.state.Tab != domain.TabAllListings {
		return
	}
	cats := domain.Categories()
	current := 0
	for i, c := range cats {
		if c.ID == m.state.View.Category() {
			current = i
			break
		}
	}
	next := cats[(current+delta+len(cats))%len(cats)]
	m.cursor = 0
	m.dispatch(domain.SetCategory{ID: next.ID})
}

func (m *Model) moveCursor(delta int) {
	n := m.cardCount()
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

func (m *Model) toggleSelected() {
	if m.cardCount() == 0 {
		return
	}
	m.dispatch(domain.ToggleFavorite{ID: m.page.Grid.Cards[m.cursor].ID})
}

func (m Model) cardCount() int {
	if m.page.Grid == nil {
		return 0
	}
	return len(m.page.Grid.Cards)
}

// refresh derives the page again and keeps the cursor on a card.
func (m *Model) refresh() {
	m.page = m.pages.Page(m.catalog.All(), m.state.View, m.state.Tab)
	if n := m.cardCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// Run starts the browser full screen and returns the final state.
func Run(ctx context.Context, m Model) (session.State, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return m.state, err
	}
	if fm, ok := final.(Model); ok {
		return fm.state, nil
	}
	return m.state, nil
}
