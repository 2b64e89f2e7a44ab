package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

const (
	rowsPerPageLabel = "Rows per page:"
	footerGap        = "   "
	buttonGap        = " "
)

// Button is one navigation affordance of a footer.
type Button struct {
	Action  pagination.Action
	Label   string
	Title   string
	Enabled bool
}

// Buttons returns the navigation affordances for view in display order.
// First and last are omitted when showFirstLast is false.
func Buttons(view pagination.DerivedView, variant pager.Variant, showFirstLast bool) []Button {
	labels := map[pagination.Action]string{
		pagination.ActionFirst:    "|<",
		pagination.ActionPrevious: "<",
		pagination.ActionNext:     ">",
		pagination.ActionLast:     ">|",
	}
	if variant == pager.VariantSimple {
		labels = map[pagination.Action]string{
			pagination.ActionFirst:    "First",
			pagination.ActionPrevious: "Previous",
			pagination.ActionNext:     "Next",
			pagination.ActionLast:     "Last",
		}
	}

	all := []Button{
		{Action: pagination.ActionFirst, Title: "First page", Enabled: view.CanGoBack()},
		{Action: pagination.ActionPrevious, Title: "Previous page", Enabled: view.CanGoBack()},
		{Action: pagination.ActionNext, Title: "Next page", Enabled: view.CanGoForward()},
		{Action: pagination.ActionLast, Title: "Last page", Enabled: view.CanGoForward()},
	}

	out := make([]Button, 0, len(all))
	for _, b := range all {
		if !showFirstLast && (b.Action == pagination.ActionFirst || b.Action == pagination.ActionLast) {
			continue
		}
		b.Label = labels[b.Action]
		out = append(out, b)
	}
	return out
}

// renderButton brackets enabled buttons; disabled ones are padded and dimmed.
func renderButton(b Button, theme Theme) string {
	if b.Enabled {
		return theme.Button.Render("[" + b.Label + "]")
	}
	return theme.ButtonDisabled.Render(" " + b.Label + " ")
}

func renderButtons(buttons []Button, theme Theme) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = renderButton(b, theme)
	}
	return out
}

// RenderSelector renders the rows-per-page selector.
func RenderSelector(rowsPerPage int, theme Theme) string {
	return theme.Label.Render(rowsPerPageLabel) + " " + theme.Selector.Render(fmt.Sprintf("[%d ▾]", rowsPerPage))
}

// RenderFooter renders the pagination footer for the variant in cfg.
func RenderFooter(cfg pager.Config, state pagination.State, theme Theme) string {
	view := state.View()
	if cfg.Variant == pager.VariantSimple {
		return renderSimpleFooter(cfg, view, pagination.PageText(view), theme)
	}

	buttons := renderButtons(Buttons(view, cfg.Variant, cfg.ShowFirstLastButtons), theme)
	var sections []string
	if cfg.ShowRowsPerPageSelector {
		sections = append(sections, RenderSelector(state.RowsPerPage, theme))
	}
	sections = append(sections,
		theme.RangeText.Render(pagination.RangeText(view, cfg.Separator())),
		strings.Join(buttons, buttonGap),
	)
	return strings.Join(sections, footerGap)
}

// renderSimpleFooter places the buttons around the page indicator:
// First Previous | Page X of Y | Next Last.
func renderSimpleFooter(cfg pager.Config, view pagination.DerivedView, indicator string, theme Theme) string {
	buttons := renderButtons(Buttons(view, cfg.Variant, cfg.ShowFirstLastButtons), theme)
	half := len(buttons) / 2 //nolint:mnd // Split evenly around the indicator.

	parts := make([]string, 0, len(buttons)+1)
	parts = append(parts, buttons[:half]...)
	parts = append(parts, theme.RangeText.Render(indicator))
	parts = append(parts, buttons[half:]...)
	return strings.Join(parts, buttonGap)
}
