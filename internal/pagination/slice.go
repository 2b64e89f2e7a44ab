package pagination

// Slice returns the items on currentPage. The page is clamped first, so a stale page
// (for example after a filter shrank the dataset) still yields the last page's items.
// The returned slice shares its backing array with items.
func Slice[T any](items []T, currentPage, rowsPerPage int) []T {
	if len(items) == 0 {
		return items
	}

	page := GoToPage(currentPage, len(items), rowsPerPage)
	start := (page - 1) * rowsPerPage
	end := min(start+rowsPerPage, len(items))

	return items[start:end]
}
