package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/scad/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag defaults from
// the mapping stored under key name in a YAML document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config")
//
// Nested mappings are flattened by joining keys with hyphens, so the
// following two documents are equivalent:
//
//	config:
//	  log-level: debug
//	  log-pretty: false
//
//	config:
//	  log:
//	    level: debug
//	    pretty: false
//
// Keys may use underscores in place of hyphens. Sequences are joined with
// commas, which Kong splits back apart for slice flags. Command-line flags
// override config file values.
//
// A document that cannot be decoded, or that has no mapping under name,
// yields an empty configuration.
func resolve(
	ctx context.Context,
	name string,
) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WarnContext(ctx, "ignoring configuration",
					slog.String("reason", err.Error()),
				)
			}

			return config{}, nil
		}

		scope, ok := doc[name].(map[string]any)
		if !ok {
			return config{}, nil
		}

		cfg := config{}
		cfg.flatten("", scope)

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

func (r config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := value.(map[string]any); ok {
			r.flatten(key, sub)

			continue
		}

		r[key] = flagValue(value)
	}
}

// flagValue converts a decoded YAML scalar or sequence to the form Kong
// expects from a resolver. Kong requires numbers as strings for parsing.
func flagValue(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		elem := make([]string, len(v))
		for i, e := range v {
			elem[i] = fmt.Sprint(flagValue(e))
		}

		return strings.Join(elem, ",")
	default:
		return v
	}
}
