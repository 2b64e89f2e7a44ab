package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rshade/pagerkit/internal/pagination"
)

// Widget is a pagination widget that can run interactively or render once.
type Widget interface {
	tea.Model
	RenderStatic() string
	State() pagination.State
}

//nolint:gochecknoglobals // Compile-time interface checks.
var (
	_ Widget = (*ControlModel)(nil)
	_ Widget = (*TableModel)(nil)
	_ Widget = (*DirectoryModel)(nil)
	_ Widget = (*SimpleTableModel)(nil)
)

// Run renders w according to mode. Interactive mode runs a Bubble Tea program
// until the user quits or ctx is cancelled; the other modes write one static render.
func Run(ctx context.Context, w Widget, mode OutputMode, out io.Writer) error {
	switch mode {
	case OutputModeInteractive:
		p := tea.NewProgram(w, tea.WithContext(ctx), tea.WithOutput(out))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run interactive TUI: %w", err)
		}
		return nil
	case OutputModeStyled:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if _, err := io.WriteString(out, w.RenderStatic()); err != nil {
		return fmt.Errorf("writing widget: %w", err)
	}
	return nil
}
