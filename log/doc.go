// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("render complete", slog.Int("length", n))
//	logger.Error("render failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stdout,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Adding Attributes
//
// Attributes can be added to the logger to be included in all subsequent
// log messages using the [Logger.With] method:
//
//	logger = logger.With(slog.String("model", "bracket.yaml"))
//	logger.Info("rendering") // includes model=bracket.yaml
//
// # Context-Aware Logging
//
// The package provides context-aware logging functions and methods.
// Each logging level has both a context-aware and context-unaware variant:
//
//	logger.InfoContext(ctx, "rendering")
//	logger.Info("message without context") // uses DefaultContextProvider
//
// Context-unaware functions internally call their context-aware counterparts
// using [DefaultContextProvider], which returns [context.TODO] by default.
//
// # Supported Levels
//
// The package supports five log levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the configured level
// are discarded.
//
// # Default Logger
//
// Package-level functions such as [Info] and [TraceContext] write to a
// default logger, which is reconfigured with [Config] or replaced with
// [SetDefault]. A zero-valued [Logger] discards everything; [Logger.IsZero]
// reports that case.
//
// # Time Formatting
//
// [WithTimeLayout] accepts any named layout of the [time] package, matched
// loosely ("RFC3339Nano", "datetime", "ms"), a custom layout string, or
// "none" to omit timestamps. See [ParseTimeLayout].
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and
// [FormatJSON]. With [WithPretty], text records are colorized on one line
// and JSON records are spread over indented lines; group attributes and
// [slog.LogValuer] values such as errors are flattened into dotted keys.
//
// # Process Output
//
// [Logger.LineWriter] turns a stream such as a child process's stderr into
// one record per line.
package log
