package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys name long flags, with either hyphens or underscores. Nested mappings
// are joined with hyphens, so the following are equivalent:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Command-line flags override configuration values. An empty file is a
// valid, empty configuration.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s.yaml: %w", baseConfig, err)
	}

	cfg := make(config)
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over flattened configuration values.
type config map[string]any

// flatten stores the leaves of m under hyphen-joined keys.
func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := v.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = scalar(v)
	}
}

// scalar converts numbers to strings, which kong parses with the flag's
// own mapper.
func scalar(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[flag.Name]; ok {
		return v, nil
	}

	return nil, nil //nolint:nilnil
}
