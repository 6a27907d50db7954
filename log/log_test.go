package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", logger.Level(), DefaultLevel)
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", logger.Format(), DefaultFormat)
	}

	logger.Info("model loaded", slog.String("path", "bracket.yaml"))

	out := buf.String()
	if !strings.Contains(out, `msg="model loaded"`) || !strings.Contains(out, "path=bracket.yaml") {
		t.Errorf("unexpected default output: %s", out)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...slog.Attr)
		min     Level
		logged  bool
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true},
		{"trace at debug", Logger.Trace, LevelDebug, false},
		{"debug at info", Logger.Debug, LevelInfo, false},
		{"info at info", Logger.Info, LevelInfo, true},
		{"warn at error", Logger.Warn, LevelError, false},
		{"error at debug", Logger.Error, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.logFunc(Make(&buf, WithLevel(tt.min)), "message")

			if logged := buf.Len() > 0; logged != tt.logged {
				t.Errorf("logged = %v, want %v: %s", logged, tt.logged, buf.String())
			}
		})
	}
}

func TestLogger_Enabled(t *testing.T) {
	ctx := context.Background()
	logger := Make(nil, WithLevel(LevelWarn))

	if logger.Enabled(ctx, LevelInfo) || !logger.Enabled(ctx, LevelError) {
		t.Error("Enabled() disagrees with configured level")
	}

	if (Logger{}).Enabled(ctx, LevelError) {
		t.Error("zero Logger reports enabled")
	}
}

func TestLogger_LevelNames(t *testing.T) {
	for _, format := range []Format{FormatText, FormatJSON} {
		for _, pretty := range []bool{false, true} {
			t.Run(format.String(), func(t *testing.T) {
				var buf bytes.Buffer

				logger := Make(&buf,
					WithLevel(LevelTrace),
					WithFormat(format),
					WithPretty(pretty),
				)

				logger.Trace("declared")

				if !strings.Contains(buf.String(), "TRACE") ||
					strings.Contains(buf.String(), "DEBUG-4") {
					t.Errorf("trace level misnamed (pretty=%v): %s", pretty, buf.String())
				}
			})
		}
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON)).
		With(slog.String("model", "bracket.yaml"))

	logger.Info("rendered", slog.Int("length", 128))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if entry["msg"] != "rendered" || entry["model"] != "bracket.yaml" || entry["length"] != 128.0 {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestLogger_TimeLayout(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithTimeLayout("none")).Info("test")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("timestamp written with empty layout: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithTimeLayout("2006")).Info("test")

	if !strings.Contains(buf.String(), "time=2") {
		t.Errorf("custom layout not applied: %s", buf.String())
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true)).Info("test")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller is not the test file: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false)).Info("test")

	if strings.Contains(buf.String(), "source=") {
		t.Errorf("caller included when disabled: %s", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	base.Info("hidden")
	wrapped.Debug("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("Wrap changed the base logger or was not applied: %s", buf.String())
	}

	if base.Level() != LevelError {
		t.Errorf("base level = %v after Wrap", base.Level())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Trace("test")
	l.Info("test")
	l.ErrorContext(context.Background(), "test")

	if l.With(slog.String("key", "value")).Logger != nil {
		t.Error("With on zero Logger returned a live logger")
	}

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero Logger reports non-default settings")
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			logger.Info("concurrent message", slog.Int("id", i))
		}()
	}

	wg.Wait()

	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	var buf bytes.Buffer

	logger := Make(&buf).With(slog.String("component", "render"))

	for b.Loop() {
		logger.Info("benchmark message", slog.Int("length", 128))
	}
}

func BenchmarkLogger_Info_Pretty(b *testing.B) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true))

	for b.Loop() {
		logger.Info("benchmark message", slog.Int("length", 128))
	}
}
