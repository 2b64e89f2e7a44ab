package pager

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/pagerkit/internal/pagination"
)

// Dispatcher serves a controlled widget: the host owns the state and passes it in
// on every call. The dispatcher never mutates state and fires callbacks only for
// enabled affordances.
type Dispatcher struct {
	cfg       Config
	callbacks Callbacks
	logger    zerolog.Logger
}

// NewDispatcher validates cfg and returns a dispatcher.
func NewDispatcher(cfg Config, callbacks Callbacks, opts ...Option) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions("pager.dispatcher", opts)
	return &Dispatcher{cfg: cfg, callbacks: callbacks, logger: o.logger}, nil
}

// Config returns the configuration the dispatcher was built with.
func (d *Dispatcher) Config() Config { return d.cfg }

// Navigate dispatches OnPageChange for action against the host's props.
// It reports whether a callback fired.
func (d *Dispatcher) Navigate(props pagination.State, action pagination.Action) bool {
	view := props.View()

	var enabled bool
	switch action {
	case pagination.ActionFirst, pagination.ActionPrevious:
		enabled = view.CanGoBack()
	case pagination.ActionNext, pagination.ActionLast:
		enabled = view.CanGoForward()
	}

	if !enabled {
		d.logger.Debug().Str("action", action.String()).Int("page", props.CurrentPage).Msg("dispatch skipped")
		return false
	}

	page := pagination.Navigate(action, props.CurrentPage, props.TotalItems, props.RowsPerPage)
	d.logger.Debug().Str("action", action.String()).Int("from", props.CurrentPage).Int("to", page).Msg("page change dispatched")
	d.callbacks.pageChanged(page, props.RowsPerPage)
	return true
}

// ChangeRowsPerPage dispatches OnRowsPerPageChange(n) then OnPageChange(1, n).
func (d *Dispatcher) ChangeRowsPerPage(n int) error {
	if !d.cfg.RowsPerPageOptions.Contains(n) {
		return fmt.Errorf("%w: %d not in [%s]", pagination.ErrRowsPerPageNotOffered, n, d.cfg.RowsPerPageOptions)
	}

	d.logger.Debug().Int("rows_per_page", n).Msg("rows per page change dispatched")
	d.callbacks.rowsPerPageChanged(n)
	d.callbacks.pageChanged(pagination.FirstPage, n)
	return nil
}
