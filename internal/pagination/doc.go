// Package pagination provides the pure page arithmetic shared by every pagination widget.
//
// This package contains:
//   - ComputeDerivedView: total pages, visible item range and boundary flags for a state
//   - GoToPage / Navigate: clamped page transitions (first, previous, next, last, direct)
//   - ChangeRowsPerPage: the page-size transition, which always resets to page 1
//   - RangeText / PageText: the display strings rendered by the widgets
//   - Options, Params, Slice and Sorter: boundary validation and table helpers
//
// All functions are stateless. Hosts own the state and validate it at the boundary
// with Validate or Params.Validate before calling into the engine.
package pagination
