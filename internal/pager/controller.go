package pager

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/pagerkit/internal/logging"
	"github.com/rshade/pagerkit/internal/pagination"
)

// Option customises an adapter.
type Option func(*adapterOptions)

type adapterOptions struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for debug transition logging.
func WithLogger(l zerolog.Logger) Option {
	return func(o *adapterOptions) {
		o.logger = l
	}
}

func buildOptions(component string, opts []Option) adapterOptions {
	o := adapterOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.ComponentLogger(o.logger, component)
	return o
}

// Controller owns the pagination state of one widget instance.
// It is not safe for concurrent use.
type Controller struct {
	cfg       Config
	state     pagination.State
	callbacks Callbacks
	logger    zerolog.Logger
}

// NewController validates cfg and returns a controller positioned at the clamped initial page.
func NewController(cfg Config, callbacks Callbacks, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions("pager.controller", opts)
	c := &Controller{
		cfg:       cfg,
		state:     cfg.InitialState(),
		callbacks: callbacks,
		logger:    o.logger,
	}
	c.logger.Debug().
		Str("variant", string(cfg.Variant)).
		Int("total_items", c.state.TotalItems).
		Int("rows_per_page", c.state.RowsPerPage).
		Int("page", c.state.CurrentPage).
		Msg("controller created")

	return c, nil
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// State returns a copy of the current state.
func (c *Controller) State() pagination.State { return c.state }

// View returns the derived view of the current state.
func (c *Controller) View() pagination.DerivedView { return c.state.View() }

// RangeText renders the range text with the variant's separator.
func (c *Controller) RangeText() string {
	return pagination.RangeText(c.View(), c.cfg.Separator())
}

// First moves to page 1. It reports whether the page changed.
func (c *Controller) First() bool { return c.Navigate(pagination.ActionFirst) }

// Previous moves one page back. It reports whether the page changed.
func (c *Controller) Previous() bool { return c.Navigate(pagination.ActionPrevious) }

// Next moves one page forward. It reports whether the page changed.
func (c *Controller) Next() bool { return c.Navigate(pagination.ActionNext) }

// Last moves to the last page. It reports whether the page changed.
func (c *Controller) Last() bool { return c.Navigate(pagination.ActionLast) }

// Navigate applies a navigation shortcut.
func (c *Controller) Navigate(action pagination.Action) bool {
	s := c.state
	return c.moveTo(pagination.Navigate(action, s.CurrentPage, s.TotalItems, s.RowsPerPage), action.String())
}

// GoTo moves to the clamped page n.
func (c *Controller) GoTo(n int) bool {
	return c.moveTo(pagination.GoToPage(n, c.state.TotalItems, c.state.RowsPerPage), "goto")
}

func (c *Controller) moveTo(page int, reason string) bool {
	prev := c.state.CurrentPage
	if page == prev {
		c.logger.Debug().Str("action", reason).Int("page", prev).Msg("navigation skipped")
		return false
	}

	c.state.CurrentPage = page
	c.logger.Debug().Str("action", reason).Int("from", prev).Int("to", page).Msg("page changed")
	c.callbacks.pageChanged(page, c.state.RowsPerPage)
	return true
}

// SetRowsPerPage switches the page size and resets to page 1.
// Selecting the current size is a no-op. Sizes outside the options are rejected.
func (c *Controller) SetRowsPerPage(n int) error {
	if !c.cfg.RowsPerPageOptions.Contains(n) {
		return fmt.Errorf("%w: %d not in [%s]", pagination.ErrRowsPerPageNotOffered, n, c.cfg.RowsPerPageOptions)
	}
	if n == c.state.RowsPerPage {
		return nil
	}

	prev := c.state.RowsPerPage
	c.state = pagination.ChangeRowsPerPage(c.state, n)
	c.logger.Debug().Int("from", prev).Int("to", n).Msg("rows per page changed")

	c.callbacks.rowsPerPageChanged(n)
	c.callbacks.pageChanged(pagination.FirstPage, n)
	return nil
}

// CycleRowsPerPage selects the next (forward) or previous option, saturating at the ends.
func (c *Controller) CycleRowsPerPage(forward bool) error {
	opts := c.cfg.RowsPerPageOptions
	next := opts.Previous(c.state.RowsPerPage)
	if forward {
		next = opts.Next(c.state.RowsPerPage)
	}
	return c.SetRowsPerPage(next)
}

// SetTotalItems replaces the dataset size, for example after filtering.
// The current page is clamped and OnPageChange fires if clamping moved it.
func (c *Controller) SetTotalItems(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", pagination.ErrNegativeTotal, n)
	}

	prev := c.state.CurrentPage
	c.state.TotalItems = n
	c.state = pagination.Clamp(c.state)
	c.logger.Debug().Int("total_items", n).Int("page", c.state.CurrentPage).Msg("total items changed")

	if c.state.CurrentPage != prev {
		c.callbacks.pageChanged(c.state.CurrentPage, c.state.RowsPerPage)
	}
	return nil
}

// Reset replaces the dataset size and returns to page 1, as a search does.
func (c *Controller) Reset(totalItems int) error {
	if err := c.SetTotalItems(totalItems); err != nil {
		return err
	}
	c.First()
	return nil
}
