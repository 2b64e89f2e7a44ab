// Package tui renders the pagination widgets, both as Bubble Tea programs and as
// one-shot static text for non-interactive output.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagerkit/internal/demo"
	"github.com/rshade/pagerkit/internal/pager"
)

// Theme is the set of styles used by one widget instance.
type Theme struct {
	Name           string
	Title          lipgloss.Style
	Label          lipgloss.Style
	Selector       lipgloss.Style
	RangeText      lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Help           lipgloss.Style
	Empty          lipgloss.Style
	Box            lipgloss.Style
	TableHeader    lipgloss.Style
	TableSelected  lipgloss.Style
}

// palette holds the colours a theme is built from.
type palette struct {
	text, muted, accent, disabled, border, selectedFg, selectedBg string
}

//nolint:gochecknoglobals // Static palettes.
var (
	lightPalette = palette{
		text: "235", muted: "242", accent: "25", disabled: "250", border: "252",
		selectedFg: "231", selectedBg: "25",
	}
	darkPalette = palette{
		text: "252", muted: "246", accent: "75", disabled: "239", border: "238",
		selectedFg: "16", selectedBg: "75",
	}
)

// ThemeFor returns the named theme. Unknown names fall back to light.
func ThemeFor(name string) Theme {
	p := lightPalette
	if name == pager.ThemeDark {
		p = darkPalette
	} else {
		name = pager.ThemeLight
	}

	return Theme{
		Name:           name,
		Title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Selector:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.text)),
		RangeText:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Button:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		ButtonDisabled: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(p.disabled)),
		Help:           lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Empty:          lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(p.muted)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(p.border)),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.selectedFg)).
			Background(lipgloss.Color(p.selectedBg)),
	}
}

// StatusBadge prefixes an employee status with its badge glyph. Table cells are
// truncated by width, so the badge is plain text rather than a colour.
func StatusBadge(status string) string {
	switch status {
	case demo.StatusActive:
		return "● " + status
	case demo.StatusInactive:
		return "○ " + status
	case demo.StatusPending:
		return "◐ " + status
	default:
		return status
	}
}
