// Package cli implements the pagerkit command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/internal/logging"
	"github.com/rshade/pagerkit/pkg/version"
)

// Persistent flag names.
const (
	flagDebug  = "debug"
	flagConfig = "config"
	flagTheme  = "theme"
	flagOutput = "output"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagerkit CLI.
// It loads the configuration, wires up logging and tracing, and registers the
// view, navigate, resize, browse, stories, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "pagerkit",
		Short:         "Pagination engine and terminal pagination widgets",
		Long:          "pagerkit: compute pagination views and browse paginated data in the terminal",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	if v, err := version.ParseVersion(ver); err == nil {
		cmd.Version = v.String()
	}
	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")
	cmd.PersistentFlags().String(flagConfig, "", "config file (default ~/.pagerkit/config.yaml)")
	cmd.PersistentFlags().String(flagTheme, "", "widget theme: light or dark (overrides config)")

	cmd.AddCommand(
		NewViewCmd(), NewNavigateCmd(), NewResizeCmd(),
		NewBrowseCmd(), newStoriesCmd(), newConfigCmd(), NewVersionCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Show the derived view of page 3 of 100 items
  pagerkit view --total 100 --rows-per-page 10 --page 3

  # Move to the last page and print it as JSON
  pagerkit navigate last --total 100 --page 3 --output json

  # Browse the employee directory
  pagerkit browse directory

  # Render a story
  pagerkit stories show table/LargeDataset

  # Initialize configuration
  pagerkit config init`

// annotationSkipConfigLoad marks commands that must run even when the config file is invalid.
const annotationSkipConfigLoad = "pagerkit/skip-config-load"

// loadConfig resolves, loads and validates the configuration file, then applies the --theme flag.
// Commands annotated with annotationSkipConfigLoad run on the built-in defaults.
func loadConfig(cmd *cobra.Command) error {
	if _, skip := cmd.Annotations[annotationSkipConfigLoad]; skip {
		config.SetGlobalConfig(config.New())
		return nil
	}

	flagPath, _ := cmd.Flags().GetString(flagConfig)
	path, err := config.ResolvePath(flagPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	if initErr := config.InitGlobalConfig(path); initErr != nil {
		return fmt.Errorf("loading config: %w", initErr)
	}

	if theme, _ := cmd.Flags().GetString(flagTheme); theme != "" {
		if theme != config.ThemeLight && theme != config.ThemeDark {
			return fmt.Errorf("invalid --theme %q: must be light or dark", theme)
		}
		config.GetGlobalConfig().Pagination.Theme = theme
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(ver string) int {
	if _, err := version.ParseVersion(ver); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: build version is not semantic: %v\n", err)
	}

	root := NewRootCmd(ver)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
