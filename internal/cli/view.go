package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

// stateFlags are the flags shared by the commands that compute a view.
type stateFlags struct {
	params  *pagination.Params
	variant string
	output  string
}

func addStateFlags(cmd *cobra.Command) *stateFlags {
	f := &stateFlags{params: pagination.NewParams()}
	f.params.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&f.variant, "variant", string(pager.VariantTable),
		"range text style: table (hyphen) or control (en dash)")
	cmd.Flags().StringVarP(&f.output, flagOutput, "o", "",
		"output format: table, json or yaml (default from config)")
	return f
}

// state validates the flags and returns the clamped state.
func (f *stateFlags) state() (pagination.State, error) {
	if err := f.params.Validate(); err != nil {
		return pagination.State{}, fmt.Errorf("invalid pagination flags: %w", err)
	}
	return f.params.State(), nil
}

func (f *stateFlags) parsedVariant() (pager.Variant, error) {
	variant := pager.Variant(f.variant)
	if variant != pager.VariantTable && variant != pager.VariantControl {
		return "", fmt.Errorf("invalid --variant %q: must be table or control", f.variant)
	}
	return variant, nil
}

// controller returns a stateful adapter positioned at the flag state.
// Page changes are logged at debug level.
func (f *stateFlags) controller() (*pager.Controller, error) {
	state, err := f.state()
	if err != nil {
		return nil, err
	}
	variant, err := f.parsedVariant()
	if err != nil {
		return nil, err
	}
	opts, err := f.params.ParsedOptions()
	if err != nil {
		return nil, err
	}

	cfg := pager.DefaultConfig(variant)
	cfg.TotalItems = state.TotalItems
	cfg.RowsPerPageOptions = opts
	cfg.InitialRowsPerPage = state.RowsPerPage
	cfg.InitialPage = state.CurrentPage
	return pager.NewController(cfg, pager.Callbacks{
		OnPageChange: func(page, rowsPerPage int) {
			logger.Debug().Int("page", page).Int("rows_per_page", rowsPerPage).Msg("page changed")
		},
	}, pager.WithLogger(logger))
}

func (f *stateFlags) write(cmd *cobra.Command, state pagination.State) error {
	variant, err := f.parsedVariant()
	if err != nil {
		return err
	}
	format := config.GetOutputFormat(f.output)
	return writeView(cmd.OutOrStdout(), format, newViewOutput(state.View(), variant))
}

// NewViewCmd creates the view command, which prints the derived view of a pagination state.
func NewViewCmd() *cobra.Command {
	var flags *stateFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the derived view of a pagination state",
		Long: `Computes total pages, the visible item range and the boundary flags for a
pagination state. A page beyond the last page is clamped.`,
		Example: `  # Page 3 of 100 items at 10 per page
  pagerkit view --total 100 --page 3

  # Empty dataset as YAML
  pagerkit view --total 0 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := flags.state()
			if err != nil {
				return err
			}
			return flags.write(cmd, state)
		},
	}
	flags = addStateFlags(cmd)
	return cmd
}

// NewNavigateCmd creates the navigate command, which applies a navigation step to a state.
func NewNavigateCmd() *cobra.Command {
	var flags *stateFlags

	cmd := &cobra.Command{
		Use:   "navigate first|prev|next|last|PAGE",
		Short: "Apply a navigation step and print the resulting view",
		Long: `Moves from --page by a navigation shortcut or to an explicit page number.
Previous on the first page and next on the last page leave the page unchanged;
explicit page numbers are clamped into range.`,
		Example: `  # Next page
  pagerkit navigate next --total 100 --page 3

  # Jump to page 99 (clamped to the last page)
  pagerkit navigate 99 --total 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.controller()
			if err != nil {
				return err
			}

			from := c.State().CurrentPage
			changed, err := navigate(c, args[0])
			if err != nil {
				return err
			}
			logger.Debug().Ctx(cmd.Context()).
				Str("step", args[0]).
				Int("from", from).
				Int("to", c.State().CurrentPage).
				Bool("changed", changed).
				Msg("navigated")
			return flags.write(cmd, c.State())
		},
	}
	flags = addStateFlags(cmd)
	return cmd
}

// navigate resolves step as a page number or an action name and applies it to c.
func navigate(c *pager.Controller, step string) (bool, error) {
	if n, err := strconv.Atoi(step); err == nil {
		return c.GoTo(n), nil
	}

	action, err := pagination.ParseAction(step)
	if err != nil {
		return false, err
	}
	return c.Navigate(action), nil
}

// NewResizeCmd creates the resize command, which changes the page size of a state.
func NewResizeCmd() *cobra.Command {
	var flags *stateFlags

	cmd := &cobra.Command{
		Use:   "resize ROWS_PER_PAGE",
		Short: "Change the rows per page and print the resulting view",
		Long:  "Applies a page-size change. The new size must be offered by --options; the page resets to 1.",
		Example: `  # Switch page 3 of 100 items to 25 per page
  pagerkit resize 25 --total 100 --page 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.controller()
			if err != nil {
				return err
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", pagination.ErrInvalidRowsPerPage, args[0])
			}
			if err = c.SetRowsPerPage(n); err != nil {
				return err
			}
			return flags.write(cmd, c.State())
		},
	}
	flags = addStateFlags(cmd)
	return cmd
}
