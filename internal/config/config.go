package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagerkit/internal/pagination"
)

// Environment variables that override the config file.
const (
	EnvHome         = "PAGERKIT_HOME"
	EnvConfig       = "PAGERKIT_CONFIG"
	EnvLogLevel     = "PAGERKIT_LOG_LEVEL"
	EnvLogFormat    = "PAGERKIT_LOG_FORMAT"
	EnvTheme        = "PAGERKIT_THEME"
	EnvOutputFormat = "PAGERKIT_OUTPUT_FORMAT"
)

// Theme and output format values.
const (
	ThemeLight     = "light"
	ThemeDark      = "dark"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	configFile     = "config.yaml"
	configDir      = ".pagerkit"
	outputTypeFile = "file"
)

// ErrConfigExists is returned by WriteDefault when the file is already present.
var ErrConfigExists = errors.New("configuration file already exists")

// Config is the pagerkit configuration file.
type Config struct {
	Pagination PaginationConfig `yaml:"pagination"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PaginationConfig holds the widget defaults.
type PaginationConfig struct {
	TotalItems              int    `yaml:"total_items"                validate:"gte=0"`
	RowsPerPage             int    `yaml:"rows_per_page"              validate:"gte=1"`
	ControlOptions          []int  `yaml:"control_options"            validate:"min=1,dive,gte=1"`
	TableOptions            []int  `yaml:"table_options"              validate:"min=1,dive,gte=1"`
	ShowFirstLastButtons    bool   `yaml:"show_first_last_buttons"`
	ShowRowsPerPageSelector bool   `yaml:"show_rows_per_page_selector"`
	Theme                   string `yaml:"theme"                      validate:"oneof=light dark"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"oneof=table json yaml"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	File   string `yaml:"file"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Pagination: PaginationConfig{
			TotalItems:              pagination.DefaultTotalItems,
			RowsPerPage:             pagination.DefaultRowsPerPage,
			ControlOptions:          pagination.DefaultControlOptions(),
			TableOptions:            pagination.DefaultTableOptions(),
			ShowFirstLastButtons:    true,
			ShowRowsPerPageSelector: true,
			Theme:                   ThemeLight,
		},
		Output: OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path onto the defaults, applies environment overrides and validates
// the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if mergeErr := MergeYAML(cfg, path); mergeErr != nil {
				return nil, mergeErr
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies the PAGERKIT_* overrides.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvTheme); ok && v != "" {
		c.Pagination.Theme = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
}

// Validate checks field domains and that the default page size is offered by both selectors.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	p := c.Pagination
	if !pagination.Options(p.ControlOptions).Contains(p.RowsPerPage) {
		return fmt.Errorf("pagination.control_options: %w: %d", pagination.ErrRowsPerPageNotOffered, p.RowsPerPage)
	}
	if !pagination.Options(p.TableOptions).Contains(p.RowsPerPage) {
		return fmt.Errorf("pagination.table_options: %w: %d", pagination.ErrRowsPerPageNotOffered, p.RowsPerPage)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// GetConfigDir returns the pagerkit configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir), nil
}

// ResolvePath returns the config file path: flagValue, then PAGERKIT_CONFIG, then the default location.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// WriteDefault writes the default configuration to path, creating parent directories.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := New().Marshal()
	if err != nil {
		return fmt.Errorf("marshalling default config: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0700); mkdirErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("writing config file %s: %w", path, writeErr)
	}
	return nil
}
