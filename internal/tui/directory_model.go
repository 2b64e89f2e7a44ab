package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagerkit/internal/demo"
	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

const (
	directoryTitle        = "Employee Directory"
	noEmployeesMessage    = "No employees found matching your search criteria."
	searchPlaceholder     = "Search employees..."
	filterInputCharLimit  = 64
	filterInputWidth      = 40
	directoryTableMaxRows = 25
)

// directoryColumn is one sortable column of the directory table.
type directoryColumn struct {
	field string
	title string
	width int
}

// Column order matches the sort keys 1-8.
//
//nolint:gochecknoglobals,mnd // Static column layout.
var directoryColumns = []directoryColumn{
	{demo.FieldID, "ID", 5},
	{demo.FieldName, "Name", 16},
	{demo.FieldEmail, "Email", 22},
	{demo.FieldDepartment, "Department", 13},
	{demo.FieldRole, "Role", 13},
	{demo.FieldStatus, "Status", 12},
	{demo.FieldJoinDate, "Join Date", 11},
	{demo.FieldSalary, "Salary", 10},
}

// DirectoryModel is the searchable, sortable employee directory with a table footer.
// The model is the host of the controlled footer: it owns the page state.
type DirectoryModel struct {
	all        []demo.Employee
	visible    []demo.Employee
	sorter     *pagination.Sorter[demo.Employee]
	salary     demo.SalaryFormatter
	dispatcher *pager.Dispatcher

	page        int
	rowsPerPage int
	sortField   string
	sortOrder   string

	table     table.Model
	textInput textinput.Model
	theme     Theme
	keys      KeyMap
	help      help.Model
	searching bool
	quitting  bool
}

// NewDirectoryModel builds the directory over employees. cfg.TotalItems is ignored;
// the dataset size is the filtered employee count.
func NewDirectoryModel(employees []demo.Employee, cfg pager.Config, opts ...pager.Option) (*DirectoryModel, error) {
	m := &DirectoryModel{
		all:         employees,
		sorter:      demo.NewEmployeeSorter(),
		salary:      demo.NewSalaryFormatter(),
		page:        pagination.FirstPage,
		rowsPerPage: cfg.InitialRowsPerPage,
		sortOrder:   pagination.SortOrderAsc,
		textInput:   newSearchInput(),
		theme:       ThemeFor(cfg.Theme),
		keys:        DefaultKeyMap().forWidget(cfg.ShowFirstLastButtons, cfg.ShowRowsPerPageSelector, true),
		help:        help.New(),
	}

	cfg.TotalItems = len(employees)
	d, err := pager.NewDispatcher(cfg, pager.Callbacks{
		OnPageChange: func(page, _ int) {
			m.page = page
			m.refresh()
		},
		OnRowsPerPageChange: func(rows int) {
			m.rowsPerPage = rows
		},
	}, opts...)
	if err != nil {
		return nil, err
	}
	m.dispatcher = d
	m.refresh()
	return m, nil
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// State returns the pagination state of the filtered dataset.
func (m *DirectoryModel) State() pagination.State {
	return pagination.State{TotalItems: len(m.visible), RowsPerPage: m.rowsPerPage, CurrentPage: m.page}
}

// SearchTerm returns the current search text.
func (m *DirectoryModel) SearchTerm() string { return m.textInput.Value() }

// Sort returns the active sort field and order. The field is empty when unsorted.
func (m *DirectoryModel) Sort() (string, string) { return m.sortField, m.sortOrder }

// PageRows returns the employees on the current page.
func (m *DirectoryModel) PageRows() []demo.Employee {
	return pagination.Slice(m.visible, m.page, m.rowsPerPage)
}

// SetSearch replaces the search term and returns to page 1.
func (m *DirectoryModel) SetSearch(term string) {
	m.textInput.SetValue(term)
	m.applySearch()
}

// SortBy selects field, toggling the order when it is already the sort field.
func (m *DirectoryModel) SortBy(field string) error {
	if !m.sorter.IsValidField(field) {
		return fmt.Errorf("%w: %q", pagination.ErrInvalidSortField, field)
	}
	m.sortOrder = pagination.ToggleOrder(m.sortField, m.sortOrder, field)
	m.sortField = field
	m.refresh()
	return nil
}

// SetSort applies field and order directly, for example from a --sort flag.
// An empty field restores the generated order.
func (m *DirectoryModel) SetSort(field, order string) error {
	if field != "" && !m.sorter.IsValidField(field) {
		return fmt.Errorf("%w: %q", pagination.ErrInvalidSortField, field)
	}
	if order != pagination.SortOrderAsc && order != pagination.SortOrderDesc {
		return fmt.Errorf("%w: got %q", pagination.ErrInvalidSortOrder, order)
	}
	m.sortField = field
	m.sortOrder = order
	m.refresh()
	return nil
}

func (m *DirectoryModel) applySearch() {
	m.page = pagination.FirstPage
	m.refresh()
}

// refresh recomputes the visible rows and rebuilds the table.
func (m *DirectoryModel) refresh() {
	filtered := demo.FilterEmployees(m.all, m.textInput.Value())
	m.visible = m.sorter.Sort(filtered, m.sortField, m.sortOrder)
	m.page = pagination.GoToPage(m.page, len(m.visible), m.rowsPerPage)
	m.rebuildTable()
}

func (m *DirectoryModel) rebuildTable() {
	columns := make([]table.Column, len(directoryColumns))
	for i, c := range directoryColumns {
		columns[i] = table.Column{Title: c.title + " " + m.sortIcon(c.field), Width: c.width}
	}

	pageRows := m.PageRows()
	rows := make([]table.Row, len(pageRows))
	for i, e := range pageRows {
		rows[i] = table.Row{
			strconv.Itoa(e.ID),
			e.Name,
			e.Email,
			e.Department,
			e.Role,
			StatusBadge(e.Status),
			e.JoinDateString(),
			m.salary.Format(e.Salary),
		}
	}

	height := min(max(len(rows), 1), directoryTableMaxRows) + 1
	m.table = newStyledTable(columns, rows, height, !m.searching, m.theme)
}

func (m *DirectoryModel) sortIcon(field string) string {
	switch {
	case m.sortField != field:
		return "↕"
	case m.sortOrder == pagination.SortOrderDesc:
		return "↓"
	default:
		return "↑"
	}
}

// Init implements tea.Model.
func (m *DirectoryModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *DirectoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = winMsg.Width
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m, m.handleSearchInput(keyMsg)
	}
	return m, m.handleKey(keyMsg)
}

func (m *DirectoryModel) handleSearchInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.textInput.Blur()
		m.rebuildTable()
		return nil
	case tea.KeyCtrlC:
		m.quitting = true
		return tea.Quit
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		m.applySearch()
	}
	return cmd
}

func (m *DirectoryModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	state := m.State()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.rebuildTable()
		return m.textInput.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		if m.textInput.Value() != "" {
			m.SetSearch("")
		}
	case key.Matches(msg, m.keys.SortColumn):
		// Binding keys are "1".."8".
		idx := int(msg.Runes[0] - '1')
		_ = m.SortBy(directoryColumns[idx].field)
	case key.Matches(msg, m.keys.First):
		m.dispatcher.Navigate(state, pagination.ActionFirst)
	case key.Matches(msg, m.keys.Previous):
		m.dispatcher.Navigate(state, pagination.ActionPrevious)
	case key.Matches(msg, m.keys.Next):
		m.dispatcher.Navigate(state, pagination.ActionNext)
	case key.Matches(msg, m.keys.Last):
		m.dispatcher.Navigate(state, pagination.ActionLast)
	case key.Matches(msg, m.keys.MoreRows):
		m.changeRows(m.dispatcher.Config().RowsPerPageOptions.Next(m.rowsPerPage))
	case key.Matches(msg, m.keys.FewerRows):
		m.changeRows(m.dispatcher.Config().RowsPerPageOptions.Previous(m.rowsPerPage))
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
	return nil
}

func (m *DirectoryModel) changeRows(n int) {
	if n == m.rowsPerPage {
		return
	}
	_ = m.dispatcher.ChangeRowsPerPage(n)
}

// View implements tea.Model.
func (m *DirectoryModel) View() string {
	if m.quitting {
		return ""
	}
	return m.render() + "\n" + m.help.View(m.keys)
}

// RenderStatic renders the directory once for non-interactive output.
func (m *DirectoryModel) RenderStatic() string {
	return m.render()
}

func (m *DirectoryModel) render() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(directoryTitle))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.theme.Empty.Render(noEmployeesMessage))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")

	b.WriteString(RenderFooter(m.dispatcher.Config(), m.State(), m.theme))
	b.WriteString("\n")

	if term := m.textInput.Value(); term != "" {
		b.WriteString(m.theme.Help.Render(searchResultsInfo(len(m.visible), term)))
		b.WriteString("\n")
	}
	return b.String()
}

// searchResultsInfo renders `Showing N result(s) for "term"`.
func searchResultsInfo(n int, term string) string {
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	return fmt.Sprintf("Showing %d result%s for %q", n, suffix, term)
}
