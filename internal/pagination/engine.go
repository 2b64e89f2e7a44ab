package pagination

import "fmt"

// FirstPage is the 1-based index of the first page.
const FirstPage = 1

// Action is a navigation shortcut bound to a boundary affordance.
type Action int

const (
	// ActionFirst moves to page 1.
	ActionFirst Action = iota
	// ActionPrevious moves one page back.
	ActionPrevious
	// ActionNext moves one page forward.
	ActionNext
	// ActionLast moves to the last page.
	ActionLast
)

// String returns the lower-case action name used by the CLI.
func (a Action) String() string {
	switch a {
	case ActionFirst:
		return "first"
	case ActionPrevious:
		return "prev"
	case ActionNext:
		return "next"
	case ActionLast:
		return "last"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction parses "first", "prev"/"previous", "next" or "last".
func ParseAction(s string) (Action, error) {
	switch s {
	case "first":
		return ActionFirst, nil
	case "prev", "previous":
		return ActionPrevious, nil
	case "next":
		return ActionNext, nil
	case "last":
		return ActionLast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNavigation, s)
	}
}

// TotalPages returns ceil(totalItems / rowsPerPage), or 0 for an empty dataset.
func TotalPages(totalItems, rowsPerPage int) int {
	if totalItems == 0 {
		return 0
	}
	pages := totalItems / rowsPerPage
	if totalItems%rowsPerPage > 0 {
		pages++
	}
	return pages
}

// ComputeDerivedView computes the display values for a pagination state.
// currentPage is not re-clamped; IsFirstPage and IsLastPage are computed against the true
// page count so an out-of-range page is visible to the caller.
func ComputeDerivedView(totalItems, rowsPerPage, currentPage int) DerivedView {
	totalPages := TotalPages(totalItems, rowsPerPage)

	view := DerivedView{
		CurrentPage: currentPage,
		RowsPerPage: rowsPerPage,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		IsFirstPage: currentPage == FirstPage,
		IsLastPage:  currentPage == totalPages || totalItems == 0,
	}

	if totalItems > 0 {
		view.StartItem = (currentPage-1)*rowsPerPage + 1
		view.EndItem = min(currentPage*rowsPerPage, totalItems)
	}

	return view
}

// GoToPage clamps requested into [1, max(totalPages, 1)].
// Clamping is a projection: applying it to its own output returns the same page.
func GoToPage(requested, totalItems, rowsPerPage int) int {
	lastPage := max(TotalPages(totalItems, rowsPerPage), FirstPage)
	switch {
	case requested < FirstPage:
		return FirstPage
	case requested > lastPage:
		return lastPage
	default:
		return requested
	}
}

// Navigate resolves a navigation shortcut from currentPage.
// Previous on the first page and next on the last page return currentPage unchanged.
func Navigate(action Action, currentPage, totalItems, rowsPerPage int) int {
	view := ComputeDerivedView(totalItems, rowsPerPage, currentPage)

	var requested int
	switch action {
	case ActionFirst:
		requested = FirstPage
	case ActionPrevious:
		if view.IsFirstPage {
			return currentPage
		}
		requested = currentPage - 1
	case ActionNext:
		if view.IsLastPage {
			return currentPage
		}
		requested = currentPage + 1
	case ActionLast:
		requested = view.TotalPages
	default:
		return currentPage
	}

	return GoToPage(requested, totalItems, rowsPerPage)
}

// ChangeRowsPerPage applies a page-size change. The current page always resets to 1,
// whether or not the new page size would still contain the previously viewed items.
func ChangeRowsPerPage(state State, newRowsPerPage int) State {
	state.RowsPerPage = newRowsPerPage
	state.CurrentPage = FirstPage
	return state
}

// Clamp returns the state with its current page clamped into range.
func Clamp(state State) State {
	state.CurrentPage = GoToPage(state.CurrentPage, state.TotalItems, state.RowsPerPage)
	return state
}
