package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

// TabBar is a horizontal row of selectable labels
type TabBar struct {
	Title  string
	Labels []string
	Cursor int
}

// NewTabBar creates a tab bar with the cursor on the first label
func NewTabBar(title string, labels []string) TabBar {
	return TabBar{Title: title, Labels: labels}
}

// Left moves the cursor one tab to the left, wrapping around
func (t *TabBar) Left() {
	if len(t.Labels) == 0 {
		return
	}
	t.Cursor = (t.Cursor - 1 + len(t.Labels)) % len(t.Labels)
}

// Right moves the cursor one tab to the right, wrapping around
func (t *TabBar) Right() {
	if len(t.Labels) == 0 {
		return
	}
	t.Cursor = (t.Cursor + 1) % len(t.Labels)
}

// View renders the tab bar. active marks the tabs that are currently applied.
func (t TabBar) View(focused bool, active func(i int) bool) string {
	tabs := make([]string, 0, len(t.Labels)*2)
	for i, label := range t.Labels {
		if focused && i == t.Cursor {
			label = cursorTabStyle.Render(label)
		}
		if active != nil && active(i) {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
		tabs = append(tabs, " ")
	}

	box := boxStyle
	if focused {
		box = activeBoxStyle
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(t.Title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	))
}

// Sort markers are drawn on every header; no column is sortable.
var productHeaders = []string{"ID ↕", "Product ↓", "Category ↑", "User ↕"}

// ProductTable renders a window of products starting at offset
type ProductTable struct {
	Products []catalog.EnrichedProduct
	Offset   int
	Height   int
	Width    int
}

// Window returns the products inside the visible window
func (t ProductTable) Window() []catalog.EnrichedProduct {
	start := t.Offset
	if start > len(t.Products) {
		start = len(t.Products)
	}
	if start < 0 {
		start = 0
	}
	end := len(t.Products)
	if t.Height > 0 && start+t.Height < end {
		end = start + t.Height
	}
	return t.Products[start:end]
}

// emptyTableView replaces the table when no product matches the filters
func emptyTableView() string {
	return boxStyle.Render(subtitleStyle.Render(catalog.NoMatchesMessage))
}

// View renders the window of products as a table
func (t ProductTable) View() string {
	window := t.Window()
	rows := make([][]string, 0, len(window))
	for _, p := range window {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			catalog.CategoryLabel(p),
			catalog.OwnerName(p),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(productHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCellStyle
			case col == 0:
				return idCellStyle
			case col == 3:
				return OwnerStyle(catalog.OwnerSex(window[row]))
			case row%2 == 1:
				return stripedCellStyle
			default:
				return cellStyle
			}
		})
	if t.Width > 0 {
		tbl = tbl.Width(t.Width)
	}

	footer := mutedStyle.Render(rangeLabel(t.Offset, len(window), len(t.Products)))
	return lipgloss.JoinVertical(lipgloss.Left, tbl.String(), footer)
}

func rangeLabel(offset, shown, total int) string {
	if shown == 0 {
		return "0 of " + strconv.Itoa(total)
	}
	return strconv.Itoa(offset+1) + "–" + strconv.Itoa(offset+shown) + " of " + strconv.Itoa(total)
}

// LogView displays the most recent filter actions
type LogView struct {
	Logs   []string
	MaxLen int
}

// NewLogView creates a new log view
func NewLogView(maxLen int) LogView {
	return LogView{
		Logs:   make([]string, 0),
		MaxLen: maxLen,
	}
}

// AddLog adds a log entry
func (l *LogView) AddLog(entry string) {
	l.Logs = append(l.Logs, entry)
	if len(l.Logs) > l.MaxLen {
		l.Logs = l.Logs[1:]
	}
}

// View renders the log view
func (l LogView) View() string {
	if len(l.Logs) == 0 {
		return mutedStyle.Render("No filters applied")
	}

	var b strings.Builder
	for i, log := range l.Logs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render("• "))
		b.WriteString(log)
	}

	return b.String()
}
