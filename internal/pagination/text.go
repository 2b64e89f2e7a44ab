package pagination

import "fmt"

// Separator joins the start and end item of the range text.
type Separator string

const (
	// SeparatorHyphen is used by the table pagination footer ("21-30 of 100").
	SeparatorHyphen Separator = "-"
	// SeparatorEnDash is used by the pagination control ("21–30 of 100").
	SeparatorEnDash Separator = "–"
)

// emptyRangeText is rendered for an empty dataset regardless of separator.
const emptyRangeText = "0-0 of 0"

// RangeText renders "{start}{sep}{end} of {total}" for the view.
func RangeText(view DerivedView, sep Separator) string {
	if view.TotalItems == 0 {
		return emptyRangeText
	}
	return fmt.Sprintf("%d%s%d of %d", view.StartItem, sep, view.EndItem, view.TotalItems)
}

// PageText renders "Page {current} of {pages}", counting an empty dataset as one page.
func PageText(view DerivedView) string {
	return fmt.Sprintf("Page %d of %d", view.CurrentPage, view.DisplayPages())
}
