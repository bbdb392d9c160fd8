package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/marshallshelly/catalog/pkg/catalog"
	"github.com/marshallshelly/catalog/pkg/source"
	"github.com/marshallshelly/catalog/pkg/view"
)

// BrowseMode represents the current mode of the browser
type BrowseMode int

const (
	ModeLoading BrowseMode = iota
	ModeBrowse
	ModeError
)

// Focus is the panel receiving key presses
type Focus int

const (
	FocusOwners Focus = iota
	FocusSearch
	FocusCategories
	FocusTable
	focusCount
)

// BrowseOptions configures a BrowseModel
type BrowseOptions struct {
	Source      string
	TableHeight int
	Logger      *zap.Logger
}

// BrowseModel is the Bubbletea model for the interactive catalog browser
type BrowseModel struct {
	mode   BrowseMode
	focus  Focus
	err    error
	width  int
	height int

	dsn    string
	logger *zap.Logger

	users      []catalog.User
	categories []catalog.Category
	state      view.State

	owners       TabBar
	categoryTabs TabBar
	search       textinput.Model
	table        ProductTable
	history      LogView
}

// NewBrowseModel creates a new browser model
func NewBrowseModel(opts BrowseOptions) BrowseModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.TableHeight <= 0 {
		opts.TableHeight = 12
	}

	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "🔍 "
	search.Width = 40

	return BrowseModel{
		mode:    ModeLoading,
		focus:   FocusOwners,
		dsn:     opts.Source,
		logger:  opts.Logger,
		search:  search,
		table:   ProductTable{Height: opts.TableHeight},
		history: NewLogView(5),
	}
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(
		loadCatalogCmd(m.dsn, m.logger),
		tea.EnterAltScreen,
	)
}

// Messages
type catalogLoadedMsg struct {
	dataset catalog.Dataset
}

type errorMsg struct {
	err error
}

// Commands
func loadCatalogCmd(dsn string, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		ds, err := source.LoadDataset(context.Background(), dsn, logger)
		if err != nil {
			return errorMsg{err: fmt.Errorf("failed to load catalog: %w", err)}
		}
		return catalogLoadedMsg{dataset: ds}
	}
}

// State returns the current view state
func (m BrowseModel) State() view.State { return m.state }

// Mode returns the current mode
func (m BrowseModel) Mode() BrowseMode { return m.mode }

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.Width = msg.Width - 2
		return m, nil

	case catalogLoadedMsg:
		m.users = msg.dataset.Users
		m.categories = msg.dataset.Categories
		m.state = view.FromDataset(msg.dataset)

		ownerLabels := []string{"All"}
		for _, u := range m.users {
			ownerLabels = append(ownerLabels, u.Name)
		}
		m.owners = NewTabBar("Owners", ownerLabels)

		categoryLabels := make([]string, 0, len(m.categories))
		for _, c := range m.categories {
			categoryLabels = append(categoryLabels, c.Title)
		}
		m.categoryTabs = NewTabBar("Categories", categoryLabels)

		m.mode = ModeBrowse
		m.refresh()
		return m, nil

	case errorMsg:
		m.mode = ModeError
		m.err = msg.err
		m.logger.Error("Catalog browser failed", zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeLoading:
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil

		case ModeError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
			return m, nil

		case ModeBrowse:
			return m.handleKey(msg)
		}
	}

	if m.focus == FocusSearch {
		return m.updateSearch(msg)
	}

	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus == FocusSearch {
		switch msg.String() {
		case "esc":
			m.search.SetValue("")
			m.dispatch(view.ClearSearch{})
			return m, nil
		case "enter":
			return m.setFocus(FocusTable)
		}
		return m.updateSearch(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		return m.setFocus(FocusSearch)
	case "r":
		m.search.SetValue("")
		m.owners.Cursor = 0
		m.categoryTabs.Cursor = 0
		m.dispatch(view.ResetAll{})
		return m, nil
	}

	switch m.focus {
	case FocusOwners:
		switch msg.String() {
		case "left", "h":
			m.owners.Left()
		case "right", "l":
			m.owners.Right()
		case "enter", " ":
			m.dispatch(view.SelectOwner{ID: m.ownerAt(m.owners.Cursor)})
		}

	case FocusCategories:
		switch msg.String() {
		case "left", "h":
			m.categoryTabs.Left()
		case "right", "l":
			m.categoryTabs.Right()
		case "enter", " ":
			if len(m.categories) > 0 {
				m.dispatch(view.PickCategory{Title: m.categories[m.categoryTabs.Cursor].Title})
			}
		}

	case FocusTable:
		switch msg.String() {
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		case "pgup":
			m.scroll(-m.table.Height)
		case "pgdown":
			m.scroll(m.table.Height)
		}
	}

	return m, nil
}

func (m BrowseModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.Query() {
		m.dispatch(view.Search{Query: m.search.Value()})
	}
	return m, cmd
}

func (m BrowseModel) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == FocusSearch {
		return m, m.search.Focus()
	}
	m.search.Blur()
	return m, nil
}

// dispatch applies an intent to the view state and refreshes the table
func (m *BrowseModel) dispatch(intent view.Intent) {
	m.state = intent.Apply(m.state)
	m.history.AddLog(intent.String())
	m.refresh()
	m.logger.Debug("Applied filter",
		zap.Stringer("intent", intent),
		zap.Int("visible", len(m.table.Products)))
}

func (m *BrowseModel) refresh() {
	m.table.Products = m.state.Visible()
	m.table.Offset = 0
}

func (m *BrowseModel) scroll(delta int) {
	maxOffset := len(m.table.Products) - m.table.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.table.Offset += delta
	if m.table.Offset > maxOffset {
		m.table.Offset = maxOffset
	}
	if m.table.Offset < 0 {
		m.table.Offset = 0
	}
}

// ownerAt maps an owner tab index to a user id; tab 0 is "All"
func (m BrowseModel) ownerAt(i int) int {
	if i <= 0 || i > len(m.users) {
		return catalog.AllOwners
	}
	return m.users[i-1].ID
}

// View renders the UI
func (m BrowseModel) View() string {
	switch m.mode {
	case ModeLoading:
		return infoStyle.Render("Loading catalog...")

	case ModeError:
		msg := titleStyle.Render("Catalog Unavailable") + "\n\n" +
			errorStyle.Render(m.err.Error()) + "\n\n" +
			helpStyle.Render(FormatKey("enter/q", "exit"))

		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			boxStyle.Render(msg),
		)
	}

	owners := m.owners.View(m.focus == FocusOwners, func(i int) bool {
		return m.ownerAt(i) == m.state.Owner()
	})

	applied := make(map[string]bool)
	for _, title := range m.state.Categories() {
		applied[title] = true
	}
	categoryTabs := m.categoryTabs
	if m.state.CategoryEngaged() {
		categoryTabs.Title += " (narrowed, r to reset)"
	}
	categories := categoryTabs.View(m.focus == FocusCategories, func(i int) bool {
		return applied[m.categories[i].Title]
	})

	searchBox := boxStyle
	if m.focus == FocusSearch {
		searchBox = activeBoxStyle
	}

	tableBox := emptyTableView()
	if !m.state.Empty() {
		tableBox = m.table.View()
	}
	if m.focus == FocusTable {
		tableBox = lipgloss.JoinVertical(lipgloss.Left, tableBox, infoStyle.Render("↑/↓ scroll"))
	}

	status := mutedStyle.Render(fmt.Sprintf("%d of %d products", len(m.table.Products), len(m.state.Products())))
	if m.state.Filtered() {
		status = successStyle.Render("Filtered") + " " + status
	}

	help := helpStyle.Render(
		FormatKey("tab", "switch panel") + " • " +
			FormatKey("←/→", "move") + " • " +
			FormatKey("enter", "apply") + " • " +
			FormatKey("/", "search") + " • " +
			FormatKey("esc", "clear search") + " • " +
			FormatKey("r", "reset all filters") + " • " +
			FormatKey("q", "quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Product Categories"),
		owners,
		searchBox.Render(m.search.View()),
		categories,
		status,
		tableBox,
		mutedStyle.Render("Recent filters"),
		m.history.View(),
		help,
	)
}

// RunBrowseUI starts the interactive catalog browser
func RunBrowseUI(opts BrowseOptions) error {
	p := tea.NewProgram(NewBrowseModel(opts))
	_, err := p.Run()
	return err
}
