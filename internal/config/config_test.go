package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/internal/pagination"
)

func mapEnv(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, 100, cfg.Pagination.TotalItems)
	assert.Equal(t, 10, cfg.Pagination.RowsPerPage)
	assert.Equal(t, []int{10, 25, 50, 100}, cfg.Pagination.ControlOptions)
	assert.Equal(t, []int{5, 10, 25, 50, 100}, cfg.Pagination.TableOptions)
	assert.True(t, cfg.Pagination.ShowFirstLastButtons)
	assert.True(t, cfg.Pagination.ShowRowsPerPageSelector)
	assert.Equal(t, config.ThemeLight, cfg.Pagination.Theme)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	for _, key := range []string{config.EnvLogLevel, config.EnvLogFormat, config.EnvTheme, config.EnvOutputFormat} {
		t.Setenv(key, "")
	}

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Pagination.RowsPerPage)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  rows_per_page: 50\n"), 0600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.Pagination.RowsPerPage)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  rows_per_page: 7\n"), 0600))

		_, err := config.Load(path)
		require.ErrorIs(t, err, pagination.ErrRowsPerPageNotOffered)
	})

	t.Run("invalid env override is rejected", func(t *testing.T) {
		t.Setenv(config.EnvTheme, "sepia")
		_, err := config.Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Theme")
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  theme: light\n"), 0600))
		t.Setenv(config.EnvTheme, "DARK")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.ThemeDark, cfg.Pagination.Theme)
	})
}

func TestApplyEnv(t *testing.T) {
	cfg := config.New()
	cfg.ApplyEnv(mapEnv(map[string]string{
		config.EnvLogLevel:     "DEBUG",
		config.EnvLogFormat:    "json",
		config.EnvOutputFormat: "yaml",
		config.EnvTheme:        "",
	}))

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "yaml", cfg.Output.DefaultFormat)
	assert.Equal(t, config.ThemeLight, cfg.Pagination.Theme, "empty value is ignored")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "negative total", mutate: func(c *config.Config) { c.Pagination.TotalItems = -1 }},
		{name: "zero rows", mutate: func(c *config.Config) { c.Pagination.RowsPerPage = 0 }},
		{name: "empty control options", mutate: func(c *config.Config) { c.Pagination.ControlOptions = nil }},
		{name: "non-positive option", mutate: func(c *config.Config) { c.Pagination.TableOptions = []int{5, 0} }},
		{name: "unknown theme", mutate: func(c *config.Config) { c.Pagination.Theme = "solarized" }},
		{name: "unknown output", mutate: func(c *config.Config) { c.Output.DefaultFormat = "csv" }},
		{name: "unknown log level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }},
		{
			name:    "rows not offered by control",
			mutate:  func(c *config.Config) { c.Pagination.RowsPerPage = 5 },
			wantErr: pagination.ErrRowsPerPageNotOffered,
		},
		{
			name: "rows not offered by table",
			mutate: func(c *config.Config) {
				c.Pagination.RowsPerPage = 20
				c.Pagination.ControlOptions = []int{20}
			},
			wantErr: pagination.ErrRowsPerPageNotOffered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.name == "defaults" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMarshal_RoundTripsThroughMerge(t *testing.T) {
	cfg := config.New()
	cfg.Pagination.Theme = config.ThemeDark
	data, err := cfg.Marshal()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "pagination")
	assert.Contains(t, raw, "output")
	assert.Contains(t, raw, "logging")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))
	loaded := config.New()
	require.NoError(t, config.MergeYAML(loaded, path))
	assert.Equal(t, cfg, loaded)
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvConfig, "")

	path, err := config.ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)

	t.Setenv(config.EnvConfig, "/etc/pagerkit.yaml")
	path, err = config.ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/etc/pagerkit.yaml", path)

	path, err = config.ResolvePath("./local.yaml")
	require.NoError(t, err)
	assert.Equal(t, "./local.yaml", path)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, config.WriteDefault(path, false))
	require.ErrorIs(t, config.WriteDefault(path, false), config.ErrConfigExists)
	require.NoError(t, config.WriteDefault(path, true))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.New().Pagination, cfg.Pagination)
}
