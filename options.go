package genovec

import (
	"github.com/hupe1980/genovec/cache"
	"github.com/hupe1980/genovec/landmark"
)

// Options configures a Pipeline.
type Options struct {
	// Logger receives structured diagnostics. Defaults to a silent logger.
	Logger *Logger

	// Metrics receives operational metrics. Defaults to
	// NoopMetricsCollector.
	Metrics MetricsCollector

	// Cache stores computed vectors keyed by sketch digest and parameters.
	// Defaults to cache.Passthrough, which recomputes on every call.
	Cache cache.Cache

	// Landmarks resolves landmark group names to landmark sets. Required
	// only for the landmark method.
	Landmarks landmark.Provider

	// Concurrency bounds the number of queries vectorized in parallel.
	// Defaults to runtime.GOMAXPROCS(0).
	Concurrency int
}

// Option is a function that configures a Pipeline.
type Option func(*Options)

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetricsCollector sets the metrics collector used by the pipeline.
func WithMetricsCollector(metrics MetricsCollector) Option {
	return func(o *Options) {
		o.Metrics = metrics
	}
}

// WithCache sets the vector cache used by the pipeline.
func WithCache(c cache.Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithLandmarkProvider sets the landmark provider used for the landmark
// method.
func WithLandmarkProvider(p landmark.Provider) Option {
	return func(o *Options) {
		o.Landmarks = p
	}
}

// WithConcurrency bounds the number of queries vectorized in parallel.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}
