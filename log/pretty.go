package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// paint returns a color that is applied even when the output is not a
// terminal. Pretty output is an explicit request, so the terminal check
// fatih/color performs for stdout does not apply.
func paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()

	return c
}

var (
	keyColor    = paint(color.FgHiBlack)
	stringColor = paint(color.FgCyan)
	numberColor = paint(color.FgYellow)
	trueColor   = paint(color.FgGreen)
	falseColor  = paint(color.FgRed)
	timeColor   = paint(color.FgBlue)
	otherColor  = paint(color.FgMagenta)

	errorColor = paint(color.FgRed, color.Bold)
	warnColor  = paint(color.FgYellow)
	infoColor  = paint(color.FgGreen)
	debugColor = paint(color.FgBlue)
	traceColor = paint(color.FgMagenta)
)

func levelColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return errorColor
	case level >= slog.LevelWarn:
		return warnColor
	case level >= slog.LevelInfo:
		return infoColor
	case level >= slog.LevelDebug:
		return debugColor
	default:
		return traceColor
	}
}

// prettyHandler writes colorized records. Inline records are written on one
// line as key=value pairs; block records are written as an indented
// "key: value" list between braces.
//
// Group attributes, including the groups returned by [slog.LogValuer]
// values such as errors, are flattened into dotted keys.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	fields []string // preformatted by WithAttrs
	groups []string
	block  bool
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	block bool,
) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		block: block,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var fields []string

	if !r.Time.IsZero() {
		fields = h.appendBuiltin(fields, slog.Time(slog.TimeKey, r.Time), timeColor)
	}

	fields = h.appendBuiltin(fields, slog.Any(slog.LevelKey, r.Level), levelColor(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = h.appendBuiltin(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)),
				keyColor,
			)
		}
	}

	fields = h.appendBuiltin(fields, slog.String(slog.MessageKey, r.Message), nil)
	fields = append(fields, h.fields...)

	r.Attrs(func(a slog.Attr) bool {
		fields = h.appendAttr(fields, h.groups, a)

		return true
	})

	var buf bytes.Buffer

	if h.block {
		buf.WriteString("{\n  ")
		buf.WriteString(strings.Join(fields, ",\n  "))
		buf.WriteString("\n}\n")
	} else {
		buf.WriteString(strings.Join(fields, " "))
		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.fields = slices.Clip(h.fields)

	for _, a := range attrs {
		c.fields = c.appendAttr(c.fields, c.groups, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(slices.Clip(h.groups), name)

	return &c
}

// appendBuiltin appends one of the record's own fields, passed through
// ReplaceAttr. A nil color selects one by value kind.
func (h *prettyHandler) appendBuiltin(
	fields []string,
	a slog.Attr,
	c *color.Color,
) []string {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Key == "" {
		return fields
	}

	return append(fields, h.field(a.Key, a.Value.Resolve(), c))
}

func (h *prettyHandler) appendAttr(
	fields []string,
	groups []string,
	a slog.Attr,
) []string {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return fields
		}

		if a.Key != "" {
			groups = append(slices.Clip(groups), a.Key)
		}

		for _, ga := range attrs {
			fields = h.appendAttr(fields, groups, ga)
		}

		return fields
	}

	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(groups, a)
		a.Value = a.Value.Resolve()
	}

	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := strings.Join(append(slices.Clip(groups), a.Key), ".")

	return append(fields, h.field(key, a.Value, nil))
}

func (h *prettyHandler) field(key string, v slog.Value, c *color.Color) string {
	sep := "="
	if h.block {
		sep = ": "
	}

	text, kind := valueText(v)
	if c == nil {
		c = kind
	}

	return keyColor.Sprint(key) + sep + c.Sprint(text)
}

// valueText returns the unquoted text of v and the color for its kind.
func valueText(v slog.Value) (string, *color.Color) {
	switch v.Kind() {
	case slog.KindString:
		return v.String(), stringColor

	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10), numberColor

	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10), numberColor

	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64), numberColor

	case slog.KindBool:
		if v.Bool() {
			return "true", trueColor
		}

		return "false", falseColor

	case slog.KindDuration:
		return v.Duration().String(), otherColor

	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano), timeColor

	default:
		if err, ok := v.Any().(error); ok {
			return err.Error(), stringColor
		}

		return fmt.Sprint(v.Any()), otherColor
	}
}
