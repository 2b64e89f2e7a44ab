package pagination

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by the commands that accept a pagination state.
const (
	FlagTotal       = "total"
	FlagRowsPerPage = "rows-per-page"
	FlagPage        = "page"
	FlagOptions     = "options"
)

// Params holds the pagination flags of a CLI command and validates them at the boundary.
type Params struct {
	// TotalItems is the size of the dataset.
	TotalItems int

	// RowsPerPage is the page size; it must be one of Options.
	RowsPerPage int

	// Page is the requested 1-based page. It is clamped, not rejected, when beyond the last page.
	Page int

	// Options is the comma-separated list of offered page sizes.
	Options string
}

// NewParams creates Params with the table pagination defaults.
func NewParams() *Params {
	return &Params{
		TotalItems:  DefaultTotalItems,
		RowsPerPage: DefaultRowsPerPage,
		Page:        FirstPage,
		Options:     DefaultTableOptions().String(),
	}
}

// AddFlags registers the pagination flags on fs.
func (p *Params) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&p.TotalItems, FlagTotal, p.TotalItems, "total number of items in the dataset")
	fs.IntVar(&p.RowsPerPage, FlagRowsPerPage, p.RowsPerPage, "number of rows displayed per page")
	fs.IntVar(&p.Page, FlagPage, p.Page, "current 1-based page")
	fs.StringVar(&p.Options, FlagOptions, p.Options, "comma-separated rows per page options")
}

// ParsedOptions parses the Options flag value.
func (p Params) ParsedOptions() (Options, error) {
	return ParseOptions(p.Options)
}

// Validate checks the flag values (value receiver).
// The page size must be positive and offered; the page must be >= 1.
func (p Params) Validate() error {
	if err := Validate(p.TotalItems, p.RowsPerPage, p.Page); err != nil {
		return err
	}

	opts, err := p.ParsedOptions()
	if err != nil {
		return err
	}
	if !opts.Contains(p.RowsPerPage) {
		return fmt.Errorf("%w: %d not in [%s]", ErrRowsPerPageNotOffered, p.RowsPerPage, opts)
	}

	return nil
}

// State returns the engine state for the flags with the page clamped into range.
func (p Params) State() State {
	return Clamp(State{
		TotalItems:  p.TotalItems,
		RowsPerPage: p.RowsPerPage,
		CurrentPage: p.Page,
	})
}
