package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagerkit/internal/demo"
	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

const simpleTitle = "Paginated Table"

// SimpleTableModel is the plain paginated table with First/Previous/Next/Last
// buttons around "Page X of Y".
type SimpleTableModel struct {
	items     []demo.Item
	ctrl      *pager.Controller
	paginator paginator.Model
	theme     Theme
	keys      KeyMap
	help      help.Model
	quitting  bool
}

// NewSimpleTableModel builds the simple table over items. cfg.TotalItems is replaced
// by the item count.
func NewSimpleTableModel(items []demo.Item, cfg pager.Config, opts ...pager.Option) (*SimpleTableModel, error) {
	cfg.TotalItems = len(items)
	ctrl, err := pager.NewController(cfg, pager.Callbacks{}, opts...)
	if err != nil {
		return nil, err
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "Page %d of %d"

	m := &SimpleTableModel{
		items:     items,
		ctrl:      ctrl,
		paginator: p,
		theme:     ThemeFor(cfg.Theme),
		keys:      DefaultKeyMap().forWidget(cfg.ShowFirstLastButtons, false, false),
		help:      help.New(),
	}
	m.syncPaginator()
	return m, nil
}

// State returns the current pagination state.
func (m *SimpleTableModel) State() pagination.State { return m.ctrl.State() }

// PageRows returns the items on the current page.
func (m *SimpleTableModel) PageRows() []demo.Item {
	s := m.ctrl.State()
	return pagination.Slice(m.items, s.CurrentPage, s.RowsPerPage)
}

// PageIndicator renders the paginator's "Page X of Y".
func (m *SimpleTableModel) PageIndicator() string { return m.paginator.View() }

// syncPaginator mirrors the controller state into the paginator's zero-based page.
func (m *SimpleTableModel) syncPaginator() {
	view := m.ctrl.View()
	m.paginator.PerPage = view.RowsPerPage
	m.paginator.TotalPages = view.DisplayPages()
	m.paginator.Page = view.CurrentPage - 1
}

// Init implements tea.Model.
func (m *SimpleTableModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *SimpleTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.First):
			m.ctrl.First()
		case key.Matches(msg, m.keys.Previous):
			m.ctrl.Previous()
		case key.Matches(msg, m.keys.Next):
			m.ctrl.Next()
		case key.Matches(msg, m.keys.Last):
			m.ctrl.Last()
		}
		m.syncPaginator()
	}
	return m, nil
}

// View implements tea.Model.
func (m *SimpleTableModel) View() string {
	if m.quitting {
		return ""
	}
	return m.render() + "\n" + m.help.View(m.keys)
}

// RenderStatic renders the table once for non-interactive output.
func (m *SimpleTableModel) RenderStatic() string {
	return m.render()
}

func (m *SimpleTableModel) render() string {
	pageRows := m.PageRows()
	rows := make([]table.Row, len(pageRows))
	for i, it := range pageRows {
		rows[i] = table.Row{strconv.Itoa(it.ID), it.Name, it.Description}
	}

	columns := []table.Column{
		{Title: "ID", Width: 4},           //nolint:mnd // Column width.
		{Title: "Name", Width: 10},        //nolint:mnd // Column width.
		{Title: "Description", Width: 26}, //nolint:mnd // Column width.
	}
	t := newStyledTable(columns, rows, max(len(rows), 1)+1, false, m.theme)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(simpleTitle))
	b.WriteString("\n")
	b.WriteString(t.View())
	b.WriteString("\n\n")
	b.WriteString(renderSimpleFooter(m.ctrl.Config(), m.ctrl.View(), m.paginator.View(), m.theme))
	b.WriteString("\n")
	return b.String()
}
