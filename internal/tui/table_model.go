package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

// contextRows caps the mock rows shown above the table footer.
const contextRows = 5

// TableModel hosts a controlled table footer: the model owns the state and
// applies the callbacks the dispatcher fires.
type TableModel struct {
	dispatcher *pager.Dispatcher
	state      pagination.State
	external   pager.Callbacks
	theme      Theme
	keys       KeyMap
	help       help.Model
	quitting   bool

	contextColumns []table.Column
	contextRow     func(item int) table.Row
}

// NewTableModel builds a table footer host for cfg. The external callbacks are
// invoked after the host has applied each change.
func NewTableModel(cfg pager.Config, external pager.Callbacks, opts ...pager.Option) (*TableModel, error) {
	m := &TableModel{
		state:    cfg.InitialState(),
		external: external,
		theme:    ThemeFor(cfg.Theme),
		keys:     DefaultKeyMap().forWidget(cfg.ShowFirstLastButtons, cfg.ShowRowsPerPageSelector, false),
		help:     help.New(),
	}

	d, err := pager.NewDispatcher(cfg, pager.Callbacks{
		OnPageChange:        m.handlePageChange,
		OnRowsPerPageChange: m.handleRowsPerPageChange,
	}, opts...)
	if err != nil {
		return nil, err
	}
	m.dispatcher = d
	m.SetContext([]table.Column{
		{Title: "ID", Width: 6},      //nolint:mnd // Column width.
		{Title: "Name", Width: 20},   //nolint:mnd // Column width.
		{Title: "Status", Width: 10}, //nolint:mnd // Column width.
	}, func(item int) table.Row {
		return table.Row{strconv.Itoa(item), fmt.Sprintf("Item %d", item), "Active"}
	})
	return m, nil
}

// SetContext replaces the sample table drawn above the footer. row receives the
// 1-based item number.
func (m *TableModel) SetContext(columns []table.Column, row func(item int) table.Row) {
	m.contextColumns = columns
	m.contextRow = row
}

func (m *TableModel) handlePageChange(page, rowsPerPage int) {
	m.state.CurrentPage = page
	if m.external.OnPageChange != nil {
		m.external.OnPageChange(page, rowsPerPage)
	}
}

func (m *TableModel) handleRowsPerPageChange(rowsPerPage int) {
	m.state.RowsPerPage = rowsPerPage
	if m.external.OnRowsPerPageChange != nil {
		m.external.OnRowsPerPageChange(rowsPerPage)
	}
}

// State returns the host-owned state.
func (m *TableModel) State() pagination.State { return m.state }

// Init implements tea.Model.
func (m *TableModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *TableModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.First):
		m.dispatcher.Navigate(m.state, pagination.ActionFirst)
	case key.Matches(msg, m.keys.Previous):
		m.dispatcher.Navigate(m.state, pagination.ActionPrevious)
	case key.Matches(msg, m.keys.Next):
		m.dispatcher.Navigate(m.state, pagination.ActionNext)
	case key.Matches(msg, m.keys.Last):
		m.dispatcher.Navigate(m.state, pagination.ActionLast)
	case key.Matches(msg, m.keys.MoreRows):
		m.changeRows(m.dispatcher.Config().RowsPerPageOptions.Next(m.state.RowsPerPage))
	case key.Matches(msg, m.keys.FewerRows):
		m.changeRows(m.dispatcher.Config().RowsPerPageOptions.Previous(m.state.RowsPerPage))
	}
	return nil
}

func (m *TableModel) changeRows(n int) {
	if n == m.state.RowsPerPage {
		return
	}
	// n comes from the configured options.
	_ = m.dispatcher.ChangeRowsPerPage(n)
}

// View implements tea.Model.
func (m *TableModel) View() string {
	if m.quitting {
		return ""
	}
	return m.render() + "\n" + m.help.View(m.keys)
}

// RenderStatic renders the widget once for non-interactive output.
func (m *TableModel) RenderStatic() string {
	return m.render()
}

func (m *TableModel) render() string {
	var b strings.Builder
	b.WriteString(m.contextTable().View())
	b.WriteString("\n")
	b.WriteString(RenderFooter(m.dispatcher.Config(), m.state, m.theme))
	b.WriteString("\n")
	return m.theme.Box.Render(b.String())
}

// contextTable shows the first rows of the current page as sample context.
func (m *TableModel) contextTable() table.Model {
	view := m.state.View()
	rows := make([]table.Row, 0, contextRows)
	if !view.IsEmpty() {
		for i := view.StartItem; i <= view.EndItem && len(rows) < contextRows; i++ {
			rows = append(rows, m.contextRow(i))
		}
	}

	return newStyledTable(m.contextColumns, rows, contextRows+1, false, m.theme)
}

// newStyledTable builds a bubbles table with the theme's header and selection styles.
// height counts the header line plus the visible rows.
func newStyledTable(columns []table.Column, rows []table.Row, height int, focused bool, theme Theme) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = theme.TableHeader
	if focused {
		s.Selected = theme.TableSelected
	} else {
		s.Selected = s.Cell
	}
	t.SetStyles(s)
	return t
}
