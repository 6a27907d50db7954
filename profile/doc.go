// Package profile provides optional runtime profiling for the scad
// command, backed by [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Start] returns a [Stopper] that
// does nothing.
//
// # Modes
//
//   - allocs:    memory allocations (all)
//   - block:     blocking on synchronization primitives
//   - clock:     wall-clock time
//   - cpu:       CPU time
//   - goroutine: goroutine stacks
//   - heap:      live heap allocations
//   - mem:       memory (sampled)
//   - mutex:     mutex contention
//   - thread:    thread creation
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.Start(
//		profile.WithMode("cpu"),
//		profile.WithDir("/tmp/profiles"),
//	)
//	defer p.Stop()
//
// The profile is written to the directory as <mode>.pprof (trace.out for
// traces). From the command line:
//
//	scad --pprof-mode cpu render parts/*.yaml
//	scad --pprof-mode heap --pprof-dir ./profiles render bracket.yaml
//
// The default directory is "pprof" under the scad cache directory, for
// example $XDG_CACHE_HOME/scad/pprof on Linux.
//
// # Analysis
//
//	go tool pprof ./scad /tmp/profiles/cpu.pprof
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//	go tool pprof -base=old.pprof new.pprof
//	go tool trace /tmp/profiles/trace.out
//
// CPU profiling costs a few percent. Block and mutex profiling can be
// expensive; see [runtime.SetBlockProfileRate] and
// [runtime.SetMutexProfileFraction].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
