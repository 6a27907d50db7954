package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// lineWriter logs each line written to it as a separate record.
type lineWriter struct {
	ctx   context.Context
	log   Logger
	level Level
	msg   string
	key   string
	attrs []slog.Attr

	mu  sync.Mutex
	buf []byte
	err error // first handler failure
}

// LineWriter returns a writer that logs every complete line written to it
// at level, with the line's text as the value of attribute key alongside
// attrs. Blank lines are skipped. Close logs any final unterminated line.
//
// Write never fails, so a child process is not cut off by a logging
// problem; Close returns the first error the handler reported.
//
// It suits the output streams of child processes:
//
//	cmd.Stderr = log.Default().LineWriter(ctx, log.LevelInfo, "openscad", "output")
func (l Logger) LineWriter(
	ctx context.Context,
	level Level,
	msg string,
	key string,
	attrs ...slog.Attr,
) io.WriteCloser {
	return &lineWriter{
		ctx:   ctx,
		log:   l,
		level: level,
		msg:   msg,
		key:   key,
		attrs: slices.Clip(attrs),
	}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *lineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}

	return w.err
}

func (w *lineWriter) emit(line []byte) {
	text := strings.TrimRight(string(line), "\r")
	if strings.TrimSpace(text) == "" {
		return
	}

	err := w.log.emit(w.ctx, 2, w.level, w.msg, append(w.attrs, slog.String(w.key, text))...)
	if w.err == nil {
		w.err = err
	}
}
