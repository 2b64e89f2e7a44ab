package stories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
	"github.com/rshade/pagerkit/internal/stories"
)

func TestList_AllValid(t *testing.T) {
	all := stories.List()
	require.Len(t, all, 23)

	seen := make(map[string]bool)
	for _, s := range all {
		assert.False(t, seen[s.Name], "duplicate story %s", s.Name)
		seen[s.Name] = true
		require.NoError(t, s.Config.Validate(), s.Name)
		assert.NotEmpty(t, s.Description, s.Name)
	}
	assert.Equal(t, "control/Default", stories.Names()[0])
}

func TestTableStories_RangeText(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"table/Default", "21-30 of 100"},
		{"table/FirstPage", "1-10 of 100"},
		{"table/LastPage", "91-100 of 100"},
		{"table/LargeDataset", "1201-1250 of 5000"},
		{"table/SmallDataset", "11-15 of 15"},
		{"table/EmptyDataset", "0-0 of 0"},
		{"table/CustomRowsPerPageOptions", "1-7 of 50"},
		{"table/WithTableContext", "1-10 of 87"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := stories.Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, pager.VariantTable, s.Variant())
			got := pagination.RangeText(s.State().View(), s.Config.Separator())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestControlStories(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		rows       int
		theme      string
	}{
		{"control/Default", 10, 10, pager.ThemeLight},
		{"control/LargeDataset", 40, 25, pager.ThemeLight},
		{"control/SmallDataset", 3, 10, pager.ThemeLight},
		{"control/CustomRowsOptions", 25, 20, pager.ThemeLight},
		{"control/DarkTheme", 10, 10, pager.ThemeDark},
		{"control/SinglePage", 1, 10, pager.ThemeLight},
		{"control/ExactPages", 4, 25, pager.ThemeLight},
		{"control/ManyOptions", 40, 50, pager.ThemeLight},
		{"control/MinimalOptions", 10, 5, pager.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := stories.Lookup(tt.name)
			require.NoError(t, err)
			view := s.State().View()
			assert.Equal(t, 1, view.CurrentPage)
			assert.Equal(t, tt.totalPages, view.TotalPages)
			assert.Equal(t, tt.rows, view.RowsPerPage)
			assert.Equal(t, tt.theme, s.Config.Theme)
		})
	}
}

func TestTableStories_Flags(t *testing.T) {
	minimal, err := stories.Lookup("table/Minimal")
	require.NoError(t, err)
	assert.False(t, minimal.Config.ShowFirstLastButtons)
	assert.False(t, minimal.Config.ShowRowsPerPageSelector)

	noSelector, err := stories.Lookup("table/WithoutRowsPerPageSelector")
	require.NoError(t, err)
	assert.True(t, noSelector.Config.ShowFirstLastButtons)
	assert.False(t, noSelector.Config.ShowRowsPerPageSelector)
}

func TestLookup(t *testing.T) {
	s, err := stories.Lookup("TABLE/default")
	require.NoError(t, err)
	assert.Equal(t, "table/Default", s.Name)

	s, err = stories.Lookup("EmptyDataset")
	require.NoError(t, err)
	assert.Equal(t, "table/EmptyDataset", s.Name)

	_, err = stories.Lookup("Default")
	require.ErrorIs(t, err, stories.ErrUnknownStory)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = stories.Lookup("nope")
	require.ErrorIs(t, err, stories.ErrUnknownStory)
}

func TestUsers(t *testing.T) {
	users := stories.Users()
	require.Len(t, users, stories.UserCount)
	assert.Equal(t, stories.User{
		ID: 1, Name: "User 1", Email: "user1@example.com", Role: "Admin", Status: "Active",
	}, users[0])
	assert.Equal(t, "Editor", users[2].Role)
	assert.Equal(t, "Inactive", users[1].Status)
}
