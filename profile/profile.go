package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface {
	Stop()
}

// Config selects what to profile and where the profile is written.
type Config struct {
	Mode  string // one of [Modes]; empty disables profiling
	Dir   string
	Quiet bool
}

// Option modifies a [Config].
type Option func(*Config)

// WithMode sets the profiling mode.
func WithMode(mode string) Option {
	return func(c *Config) { c.Mode = mode }
}

// WithDir sets the directory the profile is written to.
func WithDir(dir string) Option {
	return func(c *Config) { c.Dir = dir }
}

// WithQuiet suppresses the profiler's own start and stop messages.
func WithQuiet(quiet bool) Option {
	return func(c *Config) { c.Quiet = quiet }
}

// Start begins profiling as configured by opts and returns the [Stopper]
// that ends it. Without a mode, or without the pprof build tag, the
// returned Stopper does nothing.
func Start(opts ...Option) Stopper {
	var c Config

	for _, opt := range opts {
		opt(&c)
	}

	if c.Mode == "" {
		return nop{}
	}

	return start(c)
}

type nop struct{}

func (nop) Stop() {}
