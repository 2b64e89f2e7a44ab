package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/pkg/version"
)

// NewVersionCmd creates the version command, which prints the build information.
func NewVersionCmd() *cobra.Command {
	var (
		short  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Example: `  pagerkit version
  pagerkit version --short
  pagerkit version -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := version.Parse(); err != nil {
				return err
			}
			if short {
				cmd.Println(version.GetVersion())
				return nil
			}

			switch output {
			case "", config.FormatTable:
				cmd.Println(version.String())
				if version.IsPrerelease() {
					cmd.Println("This is a prerelease build.")
				}
				return nil
			case config.FormatJSON, config.FormatYAML:
				return writeStructured(cmd.OutOrStdout(), output, version.GetInfo())
			default:
				return fmt.Errorf("unsupported output format %q: must be table, json or yaml", output)
			}
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	cmd.Flags().StringVarP(&output, flagOutput, "o", "", "output format: table, json or yaml")
	return cmd
}
