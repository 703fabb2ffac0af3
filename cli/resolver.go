package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"

	"github.com/justDeeevin/juicy-main/cli/cmd"
)

// ErrConfig is returned when a configuration file cannot be used.
var ErrConfig = cmd.NewError("configuration")

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys name long flags. Nested mappings join their keys with hyphens, and
// underscores are read as hyphens, so these are equivalent:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// Command-line flags and environment variables override file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any

	err := yaml.NewDecoder(r).Decode(&raw)
	if errors.Is(err, io.EOF) {
		return config{}, nil
	}

	if err != nil {
		return nil, ErrConfig.Wrap(err)
	}

	cfg := config{}
	cfg.flatten("", raw)

	return cfg, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

func (c config) flatten(prefix string, raw map[string]any) {
	for key, value := range raw {
		name := prefix + strings.ReplaceAll(key, "_", "-")

		switch v := value.(type) {
		case map[string]any:
			c.flatten(name+"-", v)

		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, scalar(item))
			}

			c[name] = strings.Join(items, ",")

		case bool:
			c[name] = v

		case nil:

		default:
			c[name] = scalar(v)
		}
	}
}

// scalar renders a decoded YAML value the way kong parses flag text.
func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return x

	case uint64:
		return strconv.FormatUint(x, 10)

	case int64:
		return strconv.FormatInt(x, 10)

	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)

	default:
		return fmt.Sprint(x)
	}
}

// Validate implements [kong.Resolver]. It rejects keys that name no flag.
func (c config) Validate(app *kong.Application) error {
	known := flagNames(app.Node)

	for _, key := range slices.Sorted(maps.Keys(c)) {
		if slices.Contains(known, key) {
			continue
		}

		if m := fuzzy.Find(key, known); len(m) > 0 {
			return ErrConfig.Wrapf("unknown key %q (did you mean %q?)", key, m[0].Str)
		}

		return ErrConfig.Wrapf("unknown key %q", key)
	}

	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	value, ok := c[flag.Name]
	if !ok {
		return nil, nil //nolint:nilnil // unset
	}

	return value, nil
}

func flagNames(node *kong.Node) []string {
	if node == nil {
		return nil
	}

	var names []string

	for _, f := range node.Flags {
		names = append(names, f.Name)
	}

	for _, child := range node.Children {
		names = append(names, flagNames(child)...)
	}

	return names
}
