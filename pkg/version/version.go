// Package version reports the build version of the pagerkit binary.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Values injected at build time with -ldflags "-X".
//
//nolint:gochecknoglobals // Set by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version without a leading "v".
func GetVersion() string {
	return strings.TrimPrefix(version, "v")
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string { return gitCommit }

// GetBuildDate returns the build timestamp.
func GetBuildDate() string { return buildDate }

// Parse returns the build version as a semver value.
func Parse() (*semver.Version, error) {
	return ParseVersion(version)
}

// ParseVersion parses s as a semantic version, accepting a leading "v".
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// IsPrerelease reports whether the build version carries a prerelease tag.
// An unparseable version counts as a prerelease.
func IsPrerelease() bool {
	v, err := Parse()
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}

// Info is the machine-readable build information.
type Info struct {
	Version    string `json:"version"     yaml:"version"`
	GitCommit  string `json:"git_commit"  yaml:"git_commit"`
	BuildDate  string `json:"build_date"  yaml:"build_date"`
	Prerelease bool   `json:"prerelease"  yaml:"prerelease"`
	Platform   string `json:"platform"    yaml:"platform"`
}

// GetInfo collects the build information.
func GetInfo() Info {
	return Info{
		Version:    GetVersion(),
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		Prerelease: IsPrerelease(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the full build information on one line.
func String() string {
	return fmt.Sprintf("pagerkit %s (commit %s, built %s, %s/%s)",
		GetVersion(), gitCommit, buildDate, runtime.GOOS, runtime.GOARCH)
}
