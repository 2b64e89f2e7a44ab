// Package stories is the catalog of named widget configurations used to
// preview each pagination variant in a known state.
package stories

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

// ErrUnknownStory is returned by Lookup for a name that is not in the catalog.
var ErrUnknownStory = errors.New("unknown story")

// nameSeparator joins the variant and the story title, as in "table/Default".
const nameSeparator = "/"

// Story is one named preview configuration.
type Story struct {
	Name        string
	Title       string
	Description string
	Config      pager.Config
}

// Variant returns the widget variant the story renders.
func (s Story) Variant() pager.Variant { return s.Config.Variant }

// State returns the clamped state the widget starts in.
func (s Story) State() pagination.State { return s.Config.InitialState() }

type storyDef struct {
	title       string
	description string
	mutate      func(*pager.Config)
}

func controlStories() []storyDef {
	set := func(total int, options pagination.Options, rows int) func(*pager.Config) {
		return func(c *pager.Config) {
			c.TotalItems = total
			c.RowsPerPageOptions = options
			c.InitialRowsPerPage = rows
		}
	}
	defaults := pagination.DefaultControlOptions()

	return []storyDef{
		{"Default", "Standard control with 100 items.", set(100, defaults, 10)},
		{"LargeDataset", "1000 items at 25 per page.", set(1000, defaults, 25)},
		{"SmallDataset", "30 items with small page sizes.", set(30, pagination.Options{5, 10, 15, 30}, 10)},
		{"CustomRowsOptions", "Custom page sizes in steps of 20.",
			set(500, pagination.Options{20, 40, 60, 80, 100}, 20)},
		{"DarkTheme", "Default control on the dark palette.", func(c *pager.Config) {
			set(100, defaults, 10)(c)
			c.Theme = pager.ThemeDark
		}},
		{"SinglePage", "Everything fits on one page; navigation is disabled.",
			set(5, pagination.Options{10, 25, 50}, 10)},
		{"ExactPages", "Total divides evenly into four pages.", set(100, pagination.Options{10, 25, 50}, 25)},
		{"ManyOptions", "A long list of page sizes.",
			set(2000, pagination.Options{10, 25, 50, 100, 200, 500}, 50)},
		{"MinimalOptions", "Only two page sizes.", set(50, pagination.Options{5, 10}, 5)},
		{"ScreenshotExample", "Default control used for screenshots.", set(100, defaults, 10)},
	}
}

func tableStories() []storyDef {
	at := func(total, rows, page int) func(*pager.Config) {
		return func(c *pager.Config) {
			c.TotalItems = total
			c.InitialRowsPerPage = rows
			c.InitialPage = page
		}
	}

	return []storyDef{
		{"Default", "Table footer on page 3 of 10.", at(100, 10, 3)},
		{"FirstPage", "Back navigation disabled.", at(100, 10, 1)},
		{"LastPage", "Forward navigation disabled.", at(100, 10, 10)},
		{"LargeDataset", "5000 items at 50 per page.", at(5000, 50, 25)},
		{"SmallDataset", "Partial last page.", at(15, 10, 2)},
		{"EmptyDataset", "No items; every button is disabled.", at(0, 10, 1)},
		{"WithoutFirstLastButtons", "Only previous and next buttons.", func(c *pager.Config) {
			at(100, 10, 3)(c)
			c.ShowFirstLastButtons = false
		}},
		{"WithoutRowsPerPageSelector", "Rows-per-page selector hidden.", func(c *pager.Config) {
			at(100, 10, 3)(c)
			c.ShowRowsPerPageSelector = false
		}},
		{"Minimal", "Range text with previous and next only.", func(c *pager.Config) {
			at(100, 10, 3)(c)
			c.ShowFirstLastButtons = false
			c.ShowRowsPerPageSelector = false
		}},
		{"CustomRowsPerPageOptions", "Odd page sizes.", func(c *pager.Config) {
			at(50, 7, 1)(c)
			c.RowsPerPageOptions = pagination.Options{3, 7, 15, 30}
		}},
		{"MobileView", "Default footer on a narrow terminal.", at(100, 10, 3)},
		{"WithTableContext", "Footer under a table of 87 users.", func(c *pager.Config) {
			at(UserCount, 10, 1)(c)
			c.RowsPerPageOptions = pagination.Options{5, 10, 25, 50}
		}},
	}
}

func simpleStories() []storyDef {
	return []storyDef{
		{"Default", "50 items with First/Previous/Next/Last.", func(c *pager.Config) { c.TotalItems = 50 }},
	}
}

// List returns every story, ordered by variant and then by catalog position.
func List() []Story {
	groups := []struct {
		variant pager.Variant
		defs    []storyDef
	}{
		{pager.VariantControl, controlStories()},
		{pager.VariantTable, tableStories()},
		{pager.VariantSimple, simpleStories()},
	}

	var out []Story
	for _, g := range groups {
		for _, d := range g.defs {
			cfg := pager.DefaultConfig(g.variant)
			d.mutate(&cfg)
			out = append(out, Story{
				Name:        string(g.variant) + nameSeparator + d.title,
				Title:       d.title,
				Description: d.description,
				Config:      cfg,
			})
		}
	}
	return out
}

// Names returns the catalog names in List order.
func Names() []string {
	all := List()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a story by name, case-insensitively. A bare title such as
// "Default" resolves only when exactly one variant defines it.
func Lookup(name string) (Story, error) {
	all := List()
	if i := slices.IndexFunc(all, func(s Story) bool { return strings.EqualFold(s.Name, name) }); i >= 0 {
		return all[i], nil
	}

	var matches []Story
	for _, s := range all {
		if strings.EqualFold(s.Title, name) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Story{}, fmt.Errorf("%w: %q", ErrUnknownStory, name)
	default:
		candidates := make([]string, len(matches))
		for i, s := range matches {
			candidates[i] = s.Name
		}
		return Story{}, fmt.Errorf("%w: %q is ambiguous (%s)", ErrUnknownStory, name, strings.Join(candidates, ", "))
	}
}
