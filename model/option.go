package model

import "github.com/ardnew/scad/log"

// Option configures how a model is read.
type Option func(*config)

type config struct {
	logger  log.Logger
	noCache bool
}

// WithLogger sets the structured logger used while reading and building.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithCache controls whether decoded models are cached by content hash.
// Caching is enabled by default.
func WithCache(enable bool) Option {
	return func(c *config) {
		c.noCache = !enable
	}
}

func makeConfig(opts ...Option) config {
	var c config

	for _, opt := range opts {
		opt(&c)
	}

	return c
}
