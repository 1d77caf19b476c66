package facet

import (
	"log/slog"

	"github.com/hupe1980/facet/catalog"
)

type options struct {
	catalogOptions   []catalog.Option
	hierarchy        bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithCatalogOptions configures the catalog the engine builds its filter
// groups from (roles, allow lists, schema, leaf depth).
//
// The engine installs itself as the catalog's acceptance policy; a policy
// passed here is replaced.
func WithCatalogOptions(opts ...catalog.Option) Option {
	return func(o *options) {
		o.catalogOptions = append(o.catalogOptions, opts...)
	}
}

// WithHierarchy keeps ancestors of matching records visible.
func WithHierarchy() Option {
	return func(o *options) {
		o.hierarchy = true
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger sets the logger.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLogLevel is a convenience option for a text logger at the given level.
//
// Example:
//
//	e := facet.New(tree, facet.WithLogLevel(slog.LevelDebug))
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
