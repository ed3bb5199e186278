// Package observability wires the dashboard's Prometheus collectors to a
// private registry and the error reporting hooks.
package observability

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/observability/metrics"
)

// Metrics holds all the metric collectors for the application.
type Metrics struct {
	registry  *prometheus.Registry
	Dashboard *metrics.DashboardMetrics

	hookOnce sync.Once
}

// NewMetrics creates a new instance of Metrics with its own registry.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	dashboardMetrics, err := metrics.NewDashboardMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard metrics: %w", err)
	}

	return &Metrics{
		registry:  registry,
		Dashboard: dashboardMetrics,
	}, nil
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CountErrors registers an error hook that counts every built EnhancedError.
// Repeated calls register the hook once.
func (m *Metrics) CountErrors() {
	m.hookOnce.Do(func() {
		errors.AddErrorHook(func(ee *errors.EnhancedError) {
			m.Dashboard.RecordError(ee.GetCategory(), ee.GetComponent())
		})
	})
}

// WriteSummary writes a compact text dump of all gathered samples.
func (m *Metrics) WriteSummary(w io.Writer) error {
	return metrics.WriteSummary(w, m.registry)
}
