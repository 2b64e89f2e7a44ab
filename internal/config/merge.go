package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyPagination = "pagination"
	keyOutput     = "output"
	keyLogging    = "logging"
)

// ErrUnknownKeys is returned when the file contains top-level keys pagerkit does not know.
var ErrUnknownKeys = errors.New("unknown configuration keys")

// MergeYAML loads a YAML file and merges each known top-level section onto target.
// Keys absent from a section keep the target's current value. Unknown top-level keys
// are reported as ErrUnknownKeys after the known sections have been applied.
func MergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	var unknown []string
	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			if errors.Is(err, ErrUnknownKeys) {
				unknown = append(unknown, key)
				continue
			}
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w in %s: %v", ErrUnknownKeys, path, unknown)
	}
	return nil
}

// decodeSection decodes node onto the matching field of target. Decoding into the
// existing value keeps defaults for keys the section omits.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyPagination:
		return node.Decode(&target.Pagination)
	case keyOutput:
		return node.Decode(&target.Output)
	case keyLogging:
		return node.Decode(&target.Logging)
	default:
		return ErrUnknownKeys
	}
}
