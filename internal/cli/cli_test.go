package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagerkit/internal/cli"
	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/internal/pagination"
	"github.com/rshade/pagerkit/internal/stories"
	"github.com/rshade/pagerkit/pkg/version"
)

// executeCmd runs the root command with an isolated config home.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithEnv(t, nil, args...)
}

// executeCmdWithEnv clears the PAGERKIT_* overrides, applies env, and runs the root command.
func executeCmdWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()

	t.Setenv(config.EnvHome, t.TempDir())
	for _, name := range []string{
		config.EnvConfig, config.EnvLogLevel, config.EnvLogFormat, config.EnvTheme, config.EnvOutputFormat,
	} {
		t.Setenv(name, "")
	}
	for name, value := range env {
		t.Setenv(name, value)
	}
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	root := cli.NewRootCmd("1.0.0")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeView(t *testing.T, out string) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	return got
}

func TestViewCmd(t *testing.T) {
	t.Run("table output", func(t *testing.T) {
		out, err := executeCmd(t, "view")
		require.NoError(t, err)
		assert.Contains(t, out, "1-10 of 100")
		assert.Contains(t, out, "Page 1 of 10")
		assert.Contains(t, out, "Total pages:")
	})

	t.Run("json", func(t *testing.T) {
		out, err := executeCmd(t, "view", "--page", "3", "-o", "json")
		require.NoError(t, err)
		got := decodeView(t, out)
		assert.InDelta(t, 3, got["current_page"], 0)
		assert.InDelta(t, 21, got["start_item"], 0)
		assert.InDelta(t, 30, got["end_item"], 0)
		assert.Equal(t, "21-30 of 100", got["range_text"])
		assert.Equal(t, false, got["is_first_page"])
	})

	t.Run("control variant uses en dash", func(t *testing.T) {
		out, err := executeCmd(t, "view", "--page", "3", "--variant", "control")
		require.NoError(t, err)
		assert.Contains(t, out, "21–30 of 100")
	})

	t.Run("empty dataset yaml", func(t *testing.T) {
		out, err := executeCmd(t, "view", "--total", "0", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "range_text: 0-0 of 0")
		assert.Contains(t, out, "total_pages: 0")
		assert.Contains(t, out, "page_text: Page 1 of 1")
		assert.Contains(t, out, "is_last_page: true")
	})

	t.Run("page beyond the end is clamped", func(t *testing.T) {
		out, err := executeCmd(t, "view", "--page", "99", "-o", "json")
		require.NoError(t, err)
		assert.InDelta(t, 10, decodeView(t, out)["current_page"], 0)
	})

	t.Run("size not offered", func(t *testing.T) {
		_, err := executeCmd(t, "view", "--rows-per-page", "7")
		require.ErrorIs(t, err, pagination.ErrRowsPerPageNotOffered)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := executeCmd(t, "view", "--total", "-1")
		require.ErrorIs(t, err, pagination.ErrNegativeTotal)
	})

	t.Run("unsupported output flag", func(t *testing.T) {
		_, err := executeCmd(t, "view", "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})

	t.Run("output format from environment", func(t *testing.T) {
		out, err := executeCmdWithEnv(t, map[string]string{config.EnvOutputFormat: "json"}, "view")
		require.NoError(t, err)
		assert.Equal(t, "1-10 of 100", decodeView(t, out)["range_text"])

		_, err = executeCmdWithEnv(t, map[string]string{config.EnvOutputFormat: "xml"}, "view")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DefaultFormat")
	})
}

func TestNavigateCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPage float64
	}{
		{"next", []string{"next", "--page", "3"}, 4},
		{"previous", []string{"prev", "--page", "3"}, 2},
		{"previous on first page", []string{"previous"}, 1},
		{"last", []string{"last"}, 10},
		{"next on last page", []string{"next", "--page", "10"}, 10},
		{"first", []string{"first", "--page", "7"}, 1},
		{"explicit page", []string{"4"}, 4},
		{"explicit page clamped", []string{"99"}, 10},
		{"page zero clamped to first", []string{"0", "--page", "3"}, 1},
		{"empty dataset", []string{"last", "--total", "0"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"navigate", "-o", "json"}, tt.args...)
			out, err := executeCmd(t, args...)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPage, decodeView(t, out)["current_page"], 0)
		})
	}

	t.Run("unknown step", func(t *testing.T) {
		_, err := executeCmd(t, "navigate", "sideways")
		require.ErrorIs(t, err, pagination.ErrUnknownNavigation)
	})

	t.Run("invalid variant", func(t *testing.T) {
		_, err := executeCmd(t, "navigate", "next", "--variant", "simple")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --variant")
	})
}

func TestResizeCmd(t *testing.T) {
	out, err := executeCmd(t, "resize", "25", "--page", "3", "-o", "json")
	require.NoError(t, err)
	got := decodeView(t, out)
	assert.InDelta(t, 1, got["current_page"], 0)
	assert.InDelta(t, 25, got["rows_per_page"], 0)
	assert.Equal(t, "1-25 of 100", got["range_text"])

	out, err = executeCmd(t, "resize", "10", "--page", "3", "-o", "json")
	require.NoError(t, err)
	assert.InDelta(t, 3, decodeView(t, out)["current_page"], 0, "current size is a no-op")

	_, err = executeCmd(t, "resize", "7")
	require.ErrorIs(t, err, pagination.ErrRowsPerPageNotOffered)

	_, err = executeCmd(t, "resize", "many")
	require.ErrorIs(t, err, pagination.ErrInvalidRowsPerPage)
}

func TestBrowseCmd_Static(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"control", []string{"control"}, []string{"Pagination Control", "1–10 of 100"}},
		{"table", []string{"table", "--total", "250"}, []string{"1-10 of 250", "Item 1"}},
		{"simple", []string{"simple"}, []string{"Paginated Table", "Page 1 of 5", "Item 10"}},
		{"directory", []string{"directory"}, []string{"Employee Directory", "1-10 of 127", "John Doe 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"browse", "--plain"}, tt.args...)
			out, err := executeCmd(t, args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}

	t.Run("unknown widget", func(t *testing.T) {
		_, err := executeCmd(t, "browse", "carousel", "--plain")
		require.Error(t, err)
	})

	t.Run("directory sort flag", func(t *testing.T) {
		out, err := executeCmd(t, "browse", "directory", "--plain", "--sort", "salary:desc")
		require.NoError(t, err)
		assert.Contains(t, out, "Salary ↓")
		assert.Contains(t, out, "ID ↕")
	})

	t.Run("directory search flag", func(t *testing.T) {
		out, err := executeCmd(t, "browse", "directory", "--plain", "--search", "John Doe 127", "--sort", "name")
		require.NoError(t, err)
		assert.Contains(t, out, "1-1 of 1")
		assert.Contains(t, out, "Name ↑")
	})

	t.Run("invalid sort flag", func(t *testing.T) {
		tests := []struct {
			sort string
			want error
		}{
			{"age", pagination.ErrInvalidSortField},
			{"id:sideways", pagination.ErrInvalidSortOrder},
			{":desc", pagination.ErrEmptySortField},
			{"id:asc:extra", pagination.ErrInvalidSortFormat},
		}
		for _, tt := range tests {
			_, err := executeCmd(t, "browse", "directory", "--plain", "--sort", tt.sort)
			require.ErrorIs(t, err, tt.want, tt.sort)
		}
	})

	t.Run("sort flag needs directory", func(t *testing.T) {
		_, err := executeCmd(t, "browse", "control", "--plain", "--sort", "id")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only to the directory widget")
	})

	t.Run("dark theme", func(t *testing.T) {
		_, err := executeCmd(t, "--theme", "dark", "browse", "control", "--plain")
		require.NoError(t, err)
	})

	t.Run("invalid theme", func(t *testing.T) {
		_, err := executeCmd(t, "--theme", "sepia", "browse", "control", "--plain")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --theme")
	})
}

func TestStoriesCmd(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		out, err := executeCmd(t, "stories", "list")
		require.NoError(t, err)
		for _, name := range stories.Names() {
			assert.Contains(t, out, name)
		}
	})

	t.Run("show", func(t *testing.T) {
		out, err := executeCmd(t, "stories", "show", "table/LargeDataset", "--plain")
		require.NoError(t, err)
		assert.Contains(t, out, "1201-1250 of 5000")
	})

	t.Run("show table context", func(t *testing.T) {
		out, err := executeCmd(t, "stories", "show", "table/WithTableContext", "--plain")
		require.NoError(t, err)
		assert.Contains(t, out, "user1@example.com")
		assert.Contains(t, out, "1-10 of 87")
	})

	t.Run("show simple", func(t *testing.T) {
		out, err := executeCmd(t, "stories", "show", "simple/Default", "--plain")
		require.NoError(t, err)
		assert.Contains(t, out, "Page 1 of 5")
	})

	t.Run("show view as json", func(t *testing.T) {
		out, err := executeCmd(t, "stories", "show", "EmptyDataset", "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, "0-0 of 0", decodeView(t, out)["range_text"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := executeCmd(t, "stories", "show", "nope")
		require.ErrorIs(t, err, stories.ErrUnknownStory)
	})
}

func TestConfigCmd(t *testing.T) {
	t.Run("init then refuse overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		out, err := executeCmd(t, "--config", path, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration initialized successfully")
		assert.FileExists(t, path)

		_, err = executeCmd(t, "--config", path, "config", "init")
		require.ErrorIs(t, err, config.ErrConfigExists)

		_, err = executeCmd(t, "--config", path, "config", "init", "--force")
		require.NoError(t, err)
	})

	t.Run("show applies theme flag", func(t *testing.T) {
		out, err := executeCmd(t, "--theme", "dark", "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "rows_per_page: 10")
		assert.Contains(t, out, "theme: dark")
	})

	t.Run("validate defaults", func(t *testing.T) {
		out, err := executeCmd(t, "config", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
	})

	t.Run("validate rejects size not offered", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  rows_per_page: 7\n"), 0o600))

		_, err := executeCmd(t, "--config", path, "config", "validate")
		require.ErrorIs(t, err, pagination.ErrRowsPerPageNotOffered)
	})

	t.Run("invalid file is reported before the command runs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  theme: sepia\n"), 0o600))

		_, err := executeCmd(t, "--config", path, "browse", "control", "--plain")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config")
	})

	t.Run("init force replaces an invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  rows_per_page: 7\n"), 0o600))

		_, err := executeCmd(t, "--config", path, "config", "init", "--force")
		require.NoError(t, err)
		_, err = executeCmd(t, "--config", path, "config", "validate")
		require.NoError(t, err)
	})

	t.Run("unknown keys fail to load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("paging:\n  rows: 7\n"), 0o600))

		_, err := executeCmd(t, "--config", path, "config", "show")
		require.ErrorIs(t, err, config.ErrUnknownKeys)
	})

	t.Run("path", func(t *testing.T) {
		out, err := executeCmd(t, "--config", "/tmp/pagerkit-test.yaml", "config", "path")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/pagerkit-test.yaml\n", out)
	})
}

func TestVersionCmd(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		out, err := executeCmd(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, version.String())
	})

	t.Run("short", func(t *testing.T) {
		out, err := executeCmd(t, "version", "--short")
		require.NoError(t, err)
		assert.Equal(t, version.GetVersion()+"\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := executeCmd(t, "version", "-o", "json")
		require.NoError(t, err)
		got := decodeView(t, out)
		assert.Equal(t, version.GetVersion(), got["version"])
		assert.Equal(t, version.IsPrerelease(), got["prerelease"])
	})

	t.Run("version flag uses build template", func(t *testing.T) {
		out, err := executeCmd(t, "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "commit "+version.GetGitCommit())
	})

	t.Run("root canonicalizes semantic versions", func(t *testing.T) {
		assert.Equal(t, "1.2.3", cli.NewRootCmd("v1.2.3").Version)
		assert.Equal(t, "dev-build", cli.NewRootCmd("dev-build").Version)
	})
}
