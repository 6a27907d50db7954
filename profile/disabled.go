//go:build !pprof

package profile

// Modes returns nil when built without the pprof tag.
func Modes() []string { return nil }

func start(Config) Stopper { return nop{} }
