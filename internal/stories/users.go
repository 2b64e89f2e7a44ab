package stories

import "fmt"

// UserCount is the size of the table-context dataset.
const UserCount = 87

// User is one row of the table-context story.
type User struct {
	ID     int    `json:"id"     yaml:"id"`
	Name   string `json:"name"   yaml:"name"`
	Email  string `json:"email"  yaml:"email"`
	Role   string `json:"role"   yaml:"role"`
	Status string `json:"status" yaml:"status"`
}

// Users returns the deterministic dataset shown by table/WithTableContext.
func Users() []User {
	roles := []string{"Admin", "User", "Editor"}
	statuses := []string{"Active", "Inactive"}

	out := make([]User, UserCount)
	for i := range out {
		n := i + 1
		out[i] = User{
			ID:     n,
			Name:   fmt.Sprintf("User %d", n),
			Email:  fmt.Sprintf("user%d@example.com", n),
			Role:   roles[i%len(roles)],
			Status: statuses[i%len(statuses)],
		}
	}
	return out
}
