// Package cli contains the command line interface for scad.
//
// # Usage
//
// Without a command, scad renders each model given as an argument to a
// .scad file beside it:
//
//	scad bracket.yaml lid.yaml
//	scad render -o build/ bracket.yaml
//	cat bracket.yaml | scad render --stdout
//
// Other commands print a model in another form, compare it with an existing
// source, hand it to OpenSCAD, or preview it:
//
//	scad fmt json bracket.yaml
//	scad diff bracket.yaml
//	scad export -o bracket.stl bracket.yaml
//	scad catalog cyl
//	scad view bracket.yaml
//
// # Configuration
//
// Flag defaults are read from a YAML file in the user configuration
// directory (see [cmd.Init]). The configuration and cache directories may be
// moved with absolute paths in SCAD_CONFIG_DIR and SCAD_CACHE_DIR. Keys under the top-level "config" mapping name
// flags; nested mappings are joined with hyphens, so
//
//	config:
//	  log:
//	    level: debug
//
// sets --log-level. A JSON file of the same name with a ".json" suffix is
// also consulted.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o scad .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/scad/pprof)
package cli
