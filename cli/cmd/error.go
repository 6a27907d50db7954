package cmd

import "github.com/ardnew/scad/lang"

// Error is the structured error type shared with the lang and model
// packages.
type Error = lang.Error

var (
	ErrYAMLMarshal = lang.NewError("marshal YAML")
	ErrWriteConfig = lang.NewError("write configuration file")
	ErrFileExists  = lang.NewError("file exists (use --force to overwrite)")
	ErrStdinTarget = lang.NewError("stdin model has no default output file")
	ErrOutOfDate   = lang.NewError("rendered source differs")
	ErrExport      = lang.NewError("export with openscad")
	ErrNoMatch     = lang.NewError("no builtin matches")
)
