package model

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/goccy/go-yaml"
)

// entry is a decoded mapping with string keys, in source order.
type entry yaml.MapSlice

// mapping returns raw as an entry. Plain maps, as produced by decoders
// without ordered map support, are accepted with their keys sorted.
func mapping(raw any) (entry, error) {
	switch x := raw.(type) {
	case yaml.MapSlice:
		for _, item := range x {
			if _, ok := item.Key.(string); !ok {
				return nil, ErrInvalidNode.With(
					slog.String("key", fmt.Sprint(item.Key)),
					slog.String("issue", "mapping key is not a string"),
				)
			}
		}

		return entry(x), nil

	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}

		slices.Sort(keys)

		e := make(entry, len(keys))
		for i, k := range keys {
			e[i] = yaml.MapItem{Key: k, Value: x[k]}
		}

		return e, nil

	default:
		return nil, ErrInvalidNode.With(
			slog.String("issue", "expected mapping"),
			slog.String("type", fmt.Sprintf("%T", raw)),
		)
	}
}

func (e entry) get(key string) (any, bool) {
	for _, item := range e {
		if item.Key == key {
			return item.Value, true
		}
	}

	return nil, false
}

func (e entry) has(key string) bool {
	_, ok := e.get(key)

	return ok
}

func (e entry) keys() []string {
	keys := make([]string, len(e))
	for i, item := range e {
		keys[i] = fmt.Sprint(item.Key)
	}

	return keys
}

// only fails if e has any key not in allowed.
func (e entry) only(allowed ...string) error {
	for _, k := range e.keys() {
		if !slices.Contains(allowed, k) {
			return ErrInvalidNode.With(
				slog.String("key", k),
				slog.String("issue", "unexpected key"),
			)
		}
	}

	return nil
}

func (e entry) text(key string) (string, error) {
	raw, _ := e.get(key)

	s, ok := raw.(string)
	if !ok || s == "" {
		return "", ErrInvalidNode.With(
			slog.String("key", key),
			slog.String("issue", "expected non-empty string"),
		)
	}

	return s, nil
}

func (e entry) list(key string) ([]any, error) {
	raw, ok := e.get(key)
	if !ok || raw == nil {
		return nil, nil
	}

	l, ok := raw.([]any)
	if !ok {
		return nil, ErrInvalidNode.With(
			slog.String("key", key),
			slog.String("issue", "expected sequence"),
		)
	}

	return l, nil
}

func (e entry) flag(key string) (bool, error) {
	raw, ok := e.get(key)
	if !ok || raw == nil {
		return false, nil
	}

	b, ok := raw.(bool)
	if !ok {
		return false, ErrInvalidNode.With(
			slog.String("key", key),
			slog.String("issue", "expected boolean"),
		)
	}

	return b, nil
}
