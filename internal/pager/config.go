// Package pager adapts the pagination engine to the two ownership models the
// widgets need: a Controller that holds the state itself, and a Dispatcher that
// only translates user actions into callbacks for a host that owns the state.
package pager

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/pagerkit/internal/pagination"
)

// Variant names a widget flavour.
type Variant string

// Widget variants.
const (
	// VariantControl is the self-contained pagination control (en-dash range text).
	VariantControl Variant = "control"
	// VariantTable is the controlled table footer (hyphen range text).
	VariantTable Variant = "table"
	// VariantSimple is the plain table with "Page X of Y".
	VariantSimple Variant = "simple"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// simpleRowsPerPage is the fixed page size of the simple variant.
const simpleRowsPerPage = 10

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the widget configuration shared by both adapters.
type Config struct {
	Variant                 Variant            `validate:"oneof=control table simple"`
	TotalItems              int                `validate:"gte=0"`
	RowsPerPageOptions      pagination.Options `validate:"min=1,dive,gte=1"`
	InitialRowsPerPage      int                `validate:"gte=1"`
	InitialPage             int                `validate:"gte=1"`
	ShowFirstLastButtons    bool
	ShowRowsPerPageSelector bool
	Theme                   string `validate:"oneof=light dark"`
}

// DefaultConfig returns the defaults of the given variant.
func DefaultConfig(variant Variant) Config {
	cfg := Config{
		Variant:                 variant,
		TotalItems:              pagination.DefaultTotalItems,
		InitialRowsPerPage:      pagination.DefaultRowsPerPage,
		InitialPage:             pagination.FirstPage,
		ShowFirstLastButtons:    true,
		ShowRowsPerPageSelector: true,
		Theme:                   ThemeLight,
	}

	switch variant {
	case VariantTable:
		cfg.RowsPerPageOptions = pagination.DefaultTableOptions()
	case VariantSimple:
		cfg.RowsPerPageOptions = pagination.Options{simpleRowsPerPage}
		cfg.InitialRowsPerPage = simpleRowsPerPage
		cfg.ShowRowsPerPageSelector = false
	default:
		cfg.RowsPerPageOptions = pagination.DefaultControlOptions()
	}

	return cfg
}

// Validate checks field domains and that the initial page size is one of the options.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid pager config: %w", err)
	}
	if !c.RowsPerPageOptions.Contains(c.InitialRowsPerPage) {
		return fmt.Errorf("%w: %d not in [%s]",
			pagination.ErrRowsPerPageNotOffered, c.InitialRowsPerPage, c.RowsPerPageOptions)
	}
	return nil
}

// Separator returns the range text separator used by the variant.
func (c Config) Separator() pagination.Separator {
	if c.Variant == VariantTable {
		return pagination.SeparatorHyphen
	}
	return pagination.SeparatorEnDash
}

// InitialState returns the clamped starting state.
func (c Config) InitialState() pagination.State {
	return pagination.Clamp(pagination.State{
		TotalItems:  c.TotalItems,
		RowsPerPage: c.InitialRowsPerPage,
		CurrentPage: c.InitialPage,
	})
}

// Callbacks are invoked synchronously after the corresponding state change.
// Nil callbacks are skipped.
type Callbacks struct {
	OnPageChange        func(page, rowsPerPage int)
	OnRowsPerPageChange func(rowsPerPage int)
}

func (cb Callbacks) pageChanged(page, rowsPerPage int) {
	if cb.OnPageChange != nil {
		cb.OnPageChange(page, rowsPerPage)
	}
}

func (cb Callbacks) rowsPerPageChanged(rowsPerPage int) {
	if cb.OnRowsPerPageChange != nil {
		cb.OnRowsPerPageChange(rowsPerPage)
	}
}
