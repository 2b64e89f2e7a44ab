package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagerkit/internal/config"
)

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd(), NewConfigPathCmd())
	return cmd
}

// configPath returns the config file path selected by --config, PAGERKIT_CONFIG or the default.
func configPath(cmd *cobra.Command) (string, error) {
	flagPath, _ := cmd.Flags().GetString(flagConfig)
	return config.ResolvePath(flagPath)
}

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.pagerkit/config.yaml
  pagerkit config init

  # Overwrite an existing file
  pagerkit config init --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			if writeErr := config.WriteDefault(path, force); writeErr != nil {
				if errors.Is(writeErr, config.ErrConfigExists) {
					return fmt.Errorf("%w, use --force to overwrite", writeErr)
				}
				return writeErr
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the effective configuration.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long:  "Prints the configuration after the file, environment and --theme overrides are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.GetGlobalConfig().Marshal()
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: field domains, the output format,
the theme, and that the default rows per page is offered by both option lists.`,
		Example: `  pagerkit config validate --config ./pagerkit.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.GetGlobalConfig().Validate(); err != nil {
				return err
			}
			cmd.Println("Configuration is valid")
			return nil
		},
	}
}

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	}
}
