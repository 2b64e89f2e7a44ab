package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id   int
	name string
}

func newRowSorter() *Sorter[row] {
	return NewSorter(map[string]LessFunc[row]{
		"id":   func(a, b row) bool { return a.id < b.id },
		"name": func(a, b row) bool { return a.name < b.name },
	})
}

func TestSorter(t *testing.T) {
	sorter := newRowSorter()
	rows := []row{{2, "b"}, {3, "a"}, {1, "b"}}

	t.Run("SortByIDAsc", func(t *testing.T) {
		sorted := sorter.Sort(rows, "id", SortOrderAsc)
		assert.Equal(t, []int{1, 2, 3}, []int{sorted[0].id, sorted[1].id, sorted[2].id})
	})

	t.Run("SortByIDDesc", func(t *testing.T) {
		sorted := sorter.Sort(rows, "id", SortOrderDesc)
		assert.Equal(t, []int{3, 2, 1}, []int{sorted[0].id, sorted[1].id, sorted[2].id})
	})

	t.Run("StableOnTies", func(t *testing.T) {
		sorted := sorter.Sort(rows, "name", SortOrderAsc)
		assert.Equal(t, row{3, "a"}, sorted[0])
		assert.Equal(t, row{2, "b"}, sorted[1])
		assert.Equal(t, row{1, "b"}, sorted[2])
	})

	t.Run("InputNotModified", func(t *testing.T) {
		_ = sorter.Sort(rows, "id", SortOrderAsc)
		assert.Equal(t, 2, rows[0].id)
	})

	t.Run("InvalidField", func(t *testing.T) {
		assert.Equal(t, rows, sorter.Sort(rows, "salary", SortOrderAsc))
		assert.False(t, sorter.IsValidField("salary"))
		assert.Equal(t, []string{"id", "name"}, sorter.GetValidFields())
	})
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		sortStr   string
		wantField string
		wantOrder string
		wantErr   bool
	}{
		{name: "empty", sortStr: "", wantField: "", wantOrder: "asc"},
		{name: "field only", sortStr: "name", wantField: "name", wantOrder: "asc"},
		{name: "field and order desc", sortStr: "name:DESC", wantField: "name", wantOrder: "desc"},
		{name: "invalid format", sortStr: "a:b:c", wantErr: true},
		{name: "empty field", sortStr: ":asc", wantErr: true},
		{name: "invalid order", sortStr: "name:up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.sortStr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestToggleOrder(t *testing.T) {
	assert.Equal(t, SortOrderAsc, ToggleOrder("", SortOrderAsc, "name"))
	assert.Equal(t, SortOrderDesc, ToggleOrder("name", SortOrderAsc, "name"))
	assert.Equal(t, SortOrderAsc, ToggleOrder("name", SortOrderDesc, "name"))
	assert.Equal(t, SortOrderAsc, ToggleOrder("id", SortOrderAsc, "name"))
}

func TestSorterParse(t *testing.T) {
	sorter := newRowSorter()

	field, order, err := sorter.Parse("name:desc")
	require.NoError(t, err)
	assert.Equal(t, "name", field)
	assert.Equal(t, SortOrderDesc, order)

	field, _, err = sorter.Parse("")
	require.NoError(t, err)
	assert.Empty(t, field)

	_, _, err = sorter.Parse("salary")
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, err.Error(), "id, name")

	_, _, err = sorter.Parse("name:sideways")
	require.ErrorIs(t, err, ErrInvalidSortOrder)
}
