package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/internal/demo"
	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
	"github.com/rshade/pagerkit/internal/tui"
)

// Widgets selectable by browse.
const (
	widgetControl   = "control"
	widgetTable     = "table"
	widgetSimple    = "simple"
	widgetDirectory = "directory"
)

// renderFlags select the output mode of the widget commands.
type renderFlags struct {
	plain   bool
	color   bool
	noColor bool
}

func addRenderFlags(cmd *cobra.Command) *renderFlags {
	f := &renderFlags{}
	cmd.Flags().BoolVar(&f.plain, "plain", false, "print one uncoloured render instead of the interactive widget")
	cmd.Flags().BoolVar(&f.color, "color", false, "colour static output even when stdout is not a terminal")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colour")
	return f
}

func (f *renderFlags) mode() tui.OutputMode {
	return tui.DetectOutputMode(f.color, f.noColor, f.plain)
}

// NewBrowseCmd creates the browse command, which runs one of the pagination widgets.
func NewBrowseCmd() *cobra.Command {
	var (
		render *renderFlags
		total  int
		seed   directorySeed
	)

	cmd := &cobra.Command{
		Use:       "browse control|table|simple|directory",
		Short:     "Run a pagination widget in the terminal",
		ValidArgs: []string{widgetControl, widgetTable, widgetSimple, widgetDirectory},
		Long: `Runs a pagination widget. In a terminal the widget is interactive; otherwise,
or with --plain, a single static render is printed.

  control    self-contained pagination control
  table      controlled table pagination footer
  simple     50-item table with First/Previous/Next/Last
  directory  searchable, sortable employee directory`,
		Example: `  # Interactive employee directory
  pagerkit browse directory

  # Directory sorted by salary, highest first
  pagerkit browse directory --sort salary:desc

  # Static render of the table footer for 250 items
  pagerkit browse table --total 250 --plain`,
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := widgetConfig(args[0])
			if cmd.Flags().Changed("total") {
				cfg.TotalItems = total
			}

			if args[0] != widgetDirectory && (seed.sort != "" || seed.search != "") {
				return errors.New("--sort and --search apply only to the directory widget")
			}

			w, err := newWidget(args[0], cfg)
			if err != nil {
				return err
			}
			if dm, ok := w.(*tui.DirectoryModel); ok {
				if seedErr := seed.apply(dm); seedErr != nil {
					return seedErr
				}
			}

			mode := render.mode()
			logger.Debug().Ctx(cmd.Context()).
				Str("widget", args[0]).
				Stringer("mode", mode).
				Msg("starting widget")
			return tui.Run(cmd.Context(), w, mode, cmd.OutOrStdout())
		},
	}

	render = addRenderFlags(cmd)
	cmd.Flags().IntVar(&total, "total", pagination.DefaultTotalItems,
		"total number of items (control and table widgets)")
	cmd.Flags().StringVar(&seed.sort, "sort", "",
		"initial directory sort as field[:asc|desc]; fields: "+
			strings.Join(demo.NewEmployeeSorter().GetValidFields(), ", "))
	cmd.Flags().StringVar(&seed.search, "search", "", "initial directory search term")
	return cmd
}

// directorySeed is the initial search and sort of the directory widget.
type directorySeed struct {
	sort   string
	search string
}

// apply parses the sort flag and seeds m. Search runs first since it resets the page.
func (s directorySeed) apply(m *tui.DirectoryModel) error {
	field, order, err := demo.NewEmployeeSorter().Parse(s.sort)
	if err != nil {
		return fmt.Errorf("invalid --sort: %w", err)
	}
	if s.search != "" {
		m.SetSearch(s.search)
	}
	return m.SetSort(field, order)
}

// widgetConfig builds the widget configuration for name from the global config.
func widgetConfig(name string) pager.Config {
	variant := pager.VariantTable
	switch name {
	case widgetControl:
		variant = pager.VariantControl
	case widgetSimple:
		variant = pager.VariantSimple
	}

	cfg := pager.DefaultConfig(variant)
	p := config.GetGlobalConfig().Pagination
	cfg.Theme = p.Theme
	if variant == pager.VariantSimple {
		return cfg
	}

	cfg.TotalItems = p.TotalItems
	cfg.InitialRowsPerPage = p.RowsPerPage
	cfg.ShowFirstLastButtons = p.ShowFirstLastButtons
	cfg.ShowRowsPerPageSelector = p.ShowRowsPerPageSelector
	if variant == pager.VariantControl {
		cfg.RowsPerPageOptions = p.ControlOptions
	} else {
		cfg.RowsPerPageOptions = p.TableOptions
	}
	return cfg
}

// newWidget constructs the named widget. Page and size changes are logged.
func newWidget(name string, cfg pager.Config) (tui.Widget, error) {
	wlog := logger.With().Str("widget", name).Logger()
	opts := []pager.Option{pager.WithLogger(wlog)}

	switch name {
	case widgetControl:
		return tui.NewControlModel(cfg, loggingCallbacks(wlog), opts...)
	case widgetTable:
		return tui.NewTableModel(cfg, loggingCallbacks(wlog), opts...)
	case widgetSimple:
		return tui.NewSimpleTableModel(demo.Items(demo.ItemCount), cfg, opts...)
	case widgetDirectory:
		return tui.NewDirectoryModel(demo.Employees(), cfg, opts...)
	default:
		return nil, fmt.Errorf("unknown widget %q", name)
	}
}

// loggingCallbacks reports every change the widget makes.
func loggingCallbacks(l zerolog.Logger) pager.Callbacks {
	return pager.Callbacks{
		OnPageChange: func(page, rowsPerPage int) {
			l.Info().Int("page", page).Int("rows_per_page", rowsPerPage).Msg("page changed")
		},
		OnRowsPerPageChange: func(rowsPerPage int) {
			l.Info().Int("rows_per_page", rowsPerPage).Msg("rows per page changed")
		},
	}
}
