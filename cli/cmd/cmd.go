package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scad/lang"
	"github.com/ardnew/scad/log"
	"github.com/ardnew/scad/model"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Standard streams used by commands. Tests replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// fileMode is the permission mode of written files.
const fileMode os.FileMode = 0o644

// readModel reads the model named by source, which is either a file path or
// [stdinSource].
func readModel(ctx context.Context, source string) (*model.Model, error) {
	opt := model.WithLogger(log.Default())

	if source == stdinSource {
		return model.Read(ctx, stdin, opt)
	}

	return model.ReadFile(ctx, source, opt)
}

// buildDocument reads the model named by source and builds its document.
func buildDocument(
	ctx context.Context,
	source string,
	opts ...lang.Option,
) (*lang.Document, error) {
	m, err := readModel(ctx, source)
	if err != nil {
		return nil, err
	}

	opts = append([]lang.Option{lang.WithLogger(log.Default())}, opts...)

	doc, err := m.Build(ctx, opts...)
	if err != nil {
		return nil, lang.WrapError(err).With(slog.String("model", source))
	}

	return doc, nil
}

// renderSource reads, builds, and renders the model named by source.
func renderSource(
	ctx context.Context,
	source string,
	opts ...lang.Option,
) (string, error) {
	doc, err := buildDocument(ctx, source, opts...)
	if err != nil {
		return "", err
	}

	return doc.Render(ctx)
}

// fileSink returns a [lang.Sink] that writes each destination as a file
// relative to dir, creating directories as needed.
func fileSink(dir string) lang.Sink {
	return lang.SinkFunc(func(dest, text string) error {
		path := filepath.Join(dir, dest)

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		return os.WriteFile(path, []byte(text), fileMode)
	})
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// hard links.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueSources returns sources with duplicate references to the same file
// removed, preserving the order of first appearance. All occurrences of
// [stdinSource] collapse to one. Sources that cannot be resolved are kept so
// that reading them reports the error.
func uniqueSources(sources []string) []string {
	var (
		unique    = make([]string, 0, len(sources))
		seen      = make(map[fileKey]struct{})
		seenStdin bool
	)

	for _, src := range sources {
		if src == stdinSource {
			if !seenStdin {
				seenStdin = true
				unique = append(unique, src)
			}

			continue
		}

		key, ok := sourceKey(src)
		if ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		unique = append(unique, src)
	}

	return unique
}

// sourceKey resolves path through symlinks and returns its fileKey.
func sourceKey(path string) (fileKey, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
