package pagination

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Widget defaults shared by every variant.
const (
	DefaultTotalItems  = 100
	DefaultRowsPerPage = 10
)

// Options is the ordered set of page sizes offered by a rows-per-page selector.
// Uniqueness is expected but not enforced.
type Options []int

// DefaultControlOptions returns the page sizes offered by the pagination control.
func DefaultControlOptions() Options {
	return Options{10, 25, 50, 100}
}

// DefaultTableOptions returns the page sizes offered by the table pagination footer.
func DefaultTableOptions() Options {
	return Options{5, 10, 25, 50, 100}
}

// Validate rejects an empty option list and non-positive page sizes.
func (o Options) Validate() error {
	if len(o) == 0 {
		return ErrEmptyOptions
	}
	for _, n := range o {
		if n < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidOption, n)
		}
	}
	return nil
}

// Contains reports whether n is an offered page size.
func (o Options) Contains(n int) bool {
	return slices.Contains(o, n)
}

// Index returns the position of n in the options, or -1.
func (o Options) Index(n int) int {
	return slices.Index(o, n)
}

// Next returns the option after current, saturating at the last option.
// An unknown current value selects the first option.
func (o Options) Next(current int) int {
	if len(o) == 0 {
		return current
	}
	i := o.Index(current)
	if i < 0 {
		return o[0]
	}
	if i == len(o)-1 {
		return current
	}
	return o[i+1]
}

// Previous returns the option before current, saturating at the first option.
// An unknown current value selects the first option.
func (o Options) Previous(current int) int {
	if len(o) == 0 {
		return current
	}
	i := o.Index(current)
	if i <= 0 {
		return o[0]
	}
	return o[i-1]
}

// String renders the options as a comma-separated list.
func (o Options) String() string {
	parts := make([]string, len(o))
	for i, n := range o {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// ParseOptions parses a comma-separated list such as "5,10,25" and validates it.
func ParseOptions(s string) (Options, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyOptions
	}

	fields := strings.Split(s, ",")
	opts := make(Options, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOptionsFormat, s)
		}
		opts = append(opts, n)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
