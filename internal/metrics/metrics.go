// Package metrics exposes Prometheus instrumentation for the generator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider attempt outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTooLong = "too_long"
)

// Fallback sources.
const (
	FallbackDictionary = "dictionary"
	FallbackSynthetic  = "synthetic"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ProviderRequests *prometheus.CounterVec
	WordFallbacks    *prometheus.CounterVec
	Generated        *prometheus.CounterVec
}

// New creates a Metrics with all collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		ProviderRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passforge_provider_requests_total",
				Help: "Word provider attempts by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		WordFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passforge_word_fallbacks_total",
				Help: "Word resolutions served by a local fallback source",
			},
			[]string{"source"},
		),
		Generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passforge_passwords_generated_total",
				Help: "Passwords generated by composition mode",
			},
			[]string{"mode"},
		),
	}

	registry.MustRegister(
		m.ProviderRequests,
		m.WordFallbacks,
		m.Generated,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
