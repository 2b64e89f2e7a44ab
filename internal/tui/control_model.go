package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

// ControlModel is the self-contained pagination control. It owns its state
// through a pager.Controller and reports changes through the callbacks.
type ControlModel struct {
	ctrl     *pager.Controller
	theme    Theme
	keys     KeyMap
	help     help.Model
	title    string
	quitting bool
}

// NewControlModel builds a control for cfg.
func NewControlModel(cfg pager.Config, callbacks pager.Callbacks, opts ...pager.Option) (*ControlModel, error) {
	ctrl, err := pager.NewController(cfg, callbacks, opts...)
	if err != nil {
		return nil, err
	}

	return &ControlModel{
		ctrl:  ctrl,
		theme: ThemeFor(cfg.Theme),
		keys:  DefaultKeyMap().forWidget(cfg.ShowFirstLastButtons, cfg.ShowRowsPerPageSelector, false),
		help:  help.New(),
		title: "Pagination Control",
	}, nil
}

// Controller exposes the underlying state holder.
func (m *ControlModel) Controller() *pager.Controller { return m.ctrl }

// Init implements tea.Model.
func (m *ControlModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *ControlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *ControlModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
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
	case key.Matches(msg, m.keys.MoreRows):
		// Options always contain the current size, so cycling cannot fail.
		_ = m.ctrl.CycleRowsPerPage(true)
	case key.Matches(msg, m.keys.FewerRows):
		_ = m.ctrl.CycleRowsPerPage(false)
	}
	return nil
}

// View implements tea.Model.
func (m *ControlModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *ControlModel) renderFooter() string {
	return m.theme.Box.Render(RenderFooter(m.ctrl.Config(), m.ctrl.State(), m.theme))
}

// RenderStatic renders the widget once, without help, for non-interactive output.
func (m *ControlModel) RenderStatic() string {
	return m.theme.Title.Render(m.title) + "\n" + m.renderFooter() + "\n"
}

// State returns the current pagination state.
func (m *ControlModel) State() pagination.State { return m.ctrl.State() }
