package model

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/scad/lang"
)

// cache holds decoded models keyed by the xxh3 hash of their source.
var cache sync.Map

// state tracks decoding of a single source.
type state struct {
	once  sync.Once
	model *Model
	err   error
}

// Read reads and decodes a model from r.
//
// Decoded models are cached by content; the returned Model shares its
// decoded tree with the cache and must be treated as read-only.
func Read(ctx context.Context, r io.Reader, opts ...Option) (*Model, error) {
	cfg := makeConfig(opts...)

	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("source", "reader"))
	}

	cfg.logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	if cfg.noCache {
		m, err := decode(ctx, data)
		if err != nil {
			return nil, err
		}

		m.logger = cfg.logger

		return m, nil
	}

	hash := xxh3.Hash(data)
	key := strconv.FormatUint(hash, 36)

	value, hit := cache.LoadOrStore(key, new(state))
	entry := value.(*state)

	cfg.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	entry.once.Do(func() {
		entry.model, entry.err = decode(ctx, data)
	})

	if entry.err != nil {
		// Failures are not cached; the next read of these bytes decodes again.
		cache.CompareAndDelete(key, entry)

		return nil, entry.err
	}

	m := *entry.model
	m.logger = cfg.logger

	return &m, nil
}

// ReadFile reads and decodes the model stored at path.
func ReadFile(ctx context.Context, path string, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	m, err := Read(ctx, f, opts...)
	if err != nil {
		return nil, lang.WrapError(err).With(slog.String("path", path))
	}

	return m, nil
}

// ClearCache removes all cached models.
func ClearCache() {
	cache.Clear()
}

func decode(ctx context.Context, data []byte) (*Model, error) {
	var m Model

	err := yaml.UnmarshalContext(
		ctx,
		data,
		&m,
		yaml.UseOrderedMap(),
		yaml.DisallowUnknownField(),
	)
	if err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.Int("source_bytes", len(data)))
	}

	return &m, nil
}
