package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/internal/demo"
	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/stories"
	"github.com/rshade/pagerkit/internal/tui"
)

const tableContextStory = "table/WithTableContext"

// newStoriesCmd creates the stories command group.
func newStoriesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "stories", Short: "List and render the widget story catalog"}
	cmd.AddCommand(NewStoriesListCmd(), NewStoriesShowCmd())
	return cmd
}

// NewStoriesListCmd creates the stories list command.
func NewStoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const tabPadding = 2
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)

			fmt.Fprintln(w, "Name\tVariant\tDescription")
			fmt.Fprintln(w, "----\t-------\t-----------")
			for _, s := range stories.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Variant(), s.Description)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("writing story list: %w", err)
			}
			return nil
		},
	}
}

// NewStoriesShowCmd creates the stories show command.
func NewStoriesShowCmd() *cobra.Command {
	var (
		render *renderFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Render a story",
		Long: `Renders the named story. NAME is "variant/Title" (see "pagerkit stories list");
a bare title works when only one variant defines it. With --output json or yaml
the derived view of the story is printed instead of the widget.`,
		Example: `  pagerkit stories show table/LargeDataset
  pagerkit stories show EmptyDataset -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := stories.Lookup(args[0])
			if err != nil {
				return err
			}

			if output != "" && output != config.FormatTable {
				return writeView(cmd.OutOrStdout(), output, newViewOutput(story.State().View(), story.Variant()))
			}

			w, err := newStoryWidget(story)
			if err != nil {
				return fmt.Errorf("building story %s: %w", story.Name, err)
			}
			return tui.Run(cmd.Context(), w, render.mode(), cmd.OutOrStdout())
		},
	}

	render = addRenderFlags(cmd)
	cmd.Flags().StringVarP(&output, flagOutput, "o", "", "print the derived view as json or yaml")
	return cmd
}

func newStoryWidget(s stories.Story) (tui.Widget, error) {
	opts := []pager.Option{pager.WithLogger(logger.With().Str("story", s.Name).Logger())}

	switch s.Variant() {
	case pager.VariantControl:
		return tui.NewControlModel(s.Config, pager.Callbacks{}, opts...)
	case pager.VariantSimple:
		return tui.NewSimpleTableModel(demo.Items(s.Config.TotalItems), s.Config, opts...)
	default:
		m, err := tui.NewTableModel(s.Config, pager.Callbacks{}, opts...)
		if err != nil {
			return nil, err
		}
		if s.Name == tableContextStory {
			useUserContext(m)
		}
		return m, nil
	}
}

// useUserContext draws the table-context users above the footer.
func useUserContext(m *tui.TableModel) {
	users := stories.Users()
	m.SetContext([]table.Column{
		{Title: "ID", Width: 4},      //nolint:mnd // Column width.
		{Title: "Name", Width: 10},   //nolint:mnd // Column width.
		{Title: "Email", Width: 22},  //nolint:mnd // Column width.
		{Title: "Role", Width: 8},    //nolint:mnd // Column width.
		{Title: "Status", Width: 10}, //nolint:mnd // Column width.
	}, func(item int) table.Row {
		u := users[item-1]
		return table.Row{strconv.Itoa(u.ID), u.Name, u.Email, u.Role, u.Status}
	})
}
