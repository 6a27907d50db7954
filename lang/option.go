package lang

import "github.com/ardnew/scad/log"

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "\t"

// DefaultBanner is the comment written at the top of every document unless
// overridden with [WithBanner].
const DefaultBanner = "/* AUTOGENERATED FILE USING scad DO NOT MODIFY */\n"

// Option configures a [Document].
type Option func(*Document)

// WithIndent sets the string repeated once per nesting level.
func WithIndent(indent string) Option {
	return func(d *Document) {
		d.indent = indent
	}
}

// WithBanner sets the text written before everything else.
func WithBanner(banner string) Option {
	return func(d *Document) {
		d.banner = banner
	}
}

// WithSink sets the destination used by [Document.WriteOutput].
func WithSink(sink Sink) Option {
	return func(d *Document) {
		d.sink = sink
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// WithStringEscaping controls whether double quotes and backslashes inside
// string literals are escaped. It is disabled by default, which writes
// string contents verbatim.
func WithStringEscaping(escape bool) Option {
	return func(d *Document) {
		d.escape = escape
	}
}

// applyDefaults sets default option values on a Document.
func applyDefaults(d *Document) {
	d.indent = DefaultIndent
	d.banner = DefaultBanner
}

// applyOptions applies functional options to a Document.
func applyOptions(d *Document, opts ...Option) {
	for _, opt := range opts {
		opt(d)
	}
}
