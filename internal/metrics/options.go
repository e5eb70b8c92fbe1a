// Package metrics exposes Prometheus metrics for the journey service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Option configures a Manager
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithIterationBuckets overrides the buckets of the combat iteration histogram
func WithIterationBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.iterationBuckets = buckets
		}
	}
}

// WithPrometheusRegistry registers metrics on registry instead of a private one
func WithPrometheusRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}
