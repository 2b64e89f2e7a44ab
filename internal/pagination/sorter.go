package pagination

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Sort parsing errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// LessFunc reports whether a sorts before b in ascending order.
type LessFunc[T any] func(a, b T) bool

// Sorter sorts rows of a paginated table by named fields.
type Sorter[T any] struct {
	fields map[string]LessFunc[T]
}

// NewSorter creates a Sorter for the given field comparators.
func NewSorter[T any](fields map[string]LessFunc[T]) *Sorter[T] {
	return &Sorter[T]{fields: fields}
}

// IsValidField checks if the field is valid for sorting.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// GetValidFields returns all valid sort fields in a consistent order.
func (s *Sorter[T]) GetValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for field := range s.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a new slice sorted by field and order; the input is not modified.
// If field is invalid, the input slice is returned unchanged.
func (s *Sorter[T]) Sort(rows []T, field, order string) []T {
	less, ok := s.fields[field]
	if !ok {
		return rows
	}

	sorted := make([]T, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// ParseSort parses a sort string in the format "field" or "field:order".
// An empty string means no sorting.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return "", SortOrderAsc, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = SortOrderAsc
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// ToggleOrder returns the order after the user selects field again: a repeated
// ascending field flips to descending, anything else starts ascending.
func ToggleOrder(prevField, prevOrder, field string) string {
	if prevField == field && prevOrder == SortOrderAsc {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// Parse parses sortStr with ParseSort and rejects fields the sorter does not know.
//
//nolint:nonamedreturns // Mirrors ParseSort.
func (s *Sorter[T]) Parse(sortStr string) (field, order string, err error) {
	field, order, err = ParseSort(sortStr)
	if err != nil || field == "" {
		return field, order, err
	}
	if !s.IsValidField(field) {
		return "", "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
	}
	return field, order, nil
}
