package pagination

import (
	"errors"
	"fmt"
)

// Boundary validation errors. The engine functions assume valid input; hosts check with Validate first.
var (
	ErrNegativeTotal         = errors.New("total items must be >= 0")
	ErrInvalidRowsPerPage    = errors.New("rows per page must be >= 1")
	ErrInvalidPage           = errors.New("page must be >= 1")
	ErrRowsPerPageNotOffered = errors.New("rows per page is not one of the configured options")
	ErrEmptyOptions          = errors.New("rows per page options cannot be empty")
	ErrInvalidOption         = errors.New("rows per page options must be positive")
	ErrInvalidOptionsFormat  = errors.New("invalid rows per page options: use comma-separated integers (e.g., '5,10,25')")
	ErrUnknownNavigation     = errors.New("unknown navigation action")
)

// State is the host-owned pagination state. The engine never stores it.
type State struct {
	TotalItems  int `json:"total_items"   yaml:"total_items"`
	RowsPerPage int `json:"rows_per_page" yaml:"rows_per_page"`
	CurrentPage int `json:"current_page"  yaml:"current_page"`
}

// View computes the derived view for the state.
func (s State) View() DerivedView {
	return ComputeDerivedView(s.TotalItems, s.RowsPerPage, s.CurrentPage)
}

// Validate checks the state against the engine domains.
func (s State) Validate() error {
	return Validate(s.TotalItems, s.RowsPerPage, s.CurrentPage)
}

// DerivedView contains the values computed from a State for rendering.
type DerivedView struct {
	CurrentPage int  `json:"current_page"  yaml:"current_page"`
	RowsPerPage int  `json:"rows_per_page" yaml:"rows_per_page"`
	TotalItems  int  `json:"total_items"   yaml:"total_items"`
	TotalPages  int  `json:"total_pages"   yaml:"total_pages"`
	StartItem   int  `json:"start_item"    yaml:"start_item"`
	EndItem     int  `json:"end_item"      yaml:"end_item"`
	IsFirstPage bool `json:"is_first_page" yaml:"is_first_page"`
	IsLastPage  bool `json:"is_last_page"  yaml:"is_last_page"`
}

// IsEmpty reports whether the dataset has no items.
func (v DerivedView) IsEmpty() bool {
	return v.TotalItems == 0
}

// CanGoBack reports whether the first and previous affordances are enabled.
func (v DerivedView) CanGoBack() bool {
	return !v.IsFirstPage
}

// CanGoForward reports whether the next and last affordances are enabled.
func (v DerivedView) CanGoForward() bool {
	return !v.IsLastPage
}

// DisplayPages returns the page count shown to users: an empty dataset is one empty page.
func (v DerivedView) DisplayPages() int {
	return max(v.TotalPages, 1)
}

// Validate checks the engine preconditions and wraps the failing sentinel with the offending value.
func Validate(totalItems, rowsPerPage, currentPage int) error {
	if totalItems < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeTotal, totalItems)
	}
	if rowsPerPage < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRowsPerPage, rowsPerPage)
	}
	if currentPage < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, currentPage)
	}
	return nil
}
