// Package metrics exposes Prometheus metrics for style emission and page
// rendering. A Collector decorates cssonce gates so every consume attempt
// is counted as either an emission (the caller won the latch) or a
// suppression (someone already emitted).
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cssonce/cssonce/pkg/cssonce"
)

// Config configures the metrics collector.
type Config struct {
	// Namespace is the metrics namespace (default: "cssonce").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for page render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the metrics collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// defaultConfig returns the default collector configuration.
func defaultConfig() Config {
	return Config{
		Namespace: "cssonce",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the Prometheus metrics for style emission.
type Collector struct {
	emissions     *prometheus.CounterVec
	suppressions  *prometheus.CounterVec
	renderSeconds prometheus.Histogram
}

// defaultCollector is the process-wide collector for the default registry.
// Registering the same metric names twice panics, so the default-registry
// path is a singleton; the first caller's options win. Callers passing
// WithRegistry get a fresh collector every time.
var (
	defaultCollector     *Collector
	defaultCollectorOnce sync.Once
)

// NewCollector creates and registers the metrics.
func NewCollector(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Registry == prometheus.DefaultRegisterer {
		defaultCollectorOnce.Do(func() {
			defaultCollector = newCollector(cfg)
		})
		return defaultCollector
	}
	return newCollector(cfg)
}

func newCollector(cfg Config) *Collector {
	factory := promauto.With(cfg.Registry)

	return &Collector{
		emissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "style_emissions_total",
			Help:        "Style blocks written because the component won its emit-once latch.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"component"}),
		suppressions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "style_suppressions_total",
			Help:        "Renders that skipped the style block because it was already emitted.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"component"}),
		renderSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "page_render_seconds",
			Help:        "Time spent rendering a full page.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

// ObserveConsume records the outcome of one consume attempt.
func (c *Collector) ObserveConsume(component string, emitted bool) {
	if emitted {
		c.emissions.WithLabelValues(component).Inc()
	} else {
		c.suppressions.WithLabelValues(component).Inc()
	}
}

// ObserveRender records the duration of one page render.
func (c *Collector) ObserveRender(d time.Duration) {
	c.renderSeconds.Observe(d.Seconds())
}

// Gate decorates a consumer so every attempt is counted under component.
func (c *Collector) Gate(inner cssonce.Consumer, component string) cssonce.Consumer {
	return &observedConsumer{inner: inner, component: component, collector: c}
}

// KeyedGate decorates a keyed consumer; attempts are counted under their key.
func (c *Collector) KeyedGate(inner cssonce.KeyedConsumer) cssonce.KeyedConsumer {
	return &observedKeyed{inner: inner, collector: c}
}

type observedConsumer struct {
	inner     cssonce.Consumer
	component string
	collector *Collector
}

func (o *observedConsumer) TryConsume() bool {
	emitted := o.inner.TryConsume()
	o.collector.ObserveConsume(o.component, emitted)
	return emitted
}

type observedKeyed struct {
	inner     cssonce.KeyedConsumer
	collector *Collector
}

func (o *observedKeyed) TryConsume(key string) bool {
	emitted := o.inner.TryConsume(key)
	o.collector.ObserveConsume(key, emitted)
	return emitted
}
