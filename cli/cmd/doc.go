// Package cmd implements the scad subcommands: render, fmt, diff, export,
// catalog, view and init.
//
// Every command reads models with the model package, builds a
// [lang.Document] from them, and either renders OpenSCAD source or exports
// the document tree. Commands receive the [kong.Context] through their
// [context.Context]; see [WithContext].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
