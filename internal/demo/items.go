package demo

import "fmt"

// ItemCount is the size of the simple table dataset.
const ItemCount = 50

// Item is one row of the simple paginated table.
type Item struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Items returns n items named "Item N".
func Items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{
			ID:          i + 1,
			Name:        fmt.Sprintf("Item %d", i+1),
			Description: fmt.Sprintf("Description for item %d", i+1),
		}
	}
	return out
}
