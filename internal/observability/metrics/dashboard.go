package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DashboardMetrics contains Prometheus metrics for the directory and overlay engines
type DashboardMetrics struct {
	registry *prometheus.Registry

	directoryQueriesTotal  *prometheus.CounterVec
	directoryCacheHits     prometheus.Counter
	directoryCacheMisses   prometheus.Counter
	directoryQueryDuration prometheus.Histogram
	directoryTreeNodes     prometheus.Gauge

	overlayAssignmentsTotal prometheus.Counter
	overlayLanesUsed        prometheus.Gauge

	errorsTotal *prometheus.CounterVec
}

// NewDashboardMetrics creates and registers dashboard metrics
func NewDashboardMetrics(registry *prometheus.Registry) (*DashboardMetrics, error) {
	m := &DashboardMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *DashboardMetrics) initMetrics() {
	m.directoryQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_queries_total",
			Help: "Total number of species directory queries",
		},
		[]string{"status"}, // success, error
	)

	m.directoryCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "directory_cache_hits_total",
		Help: "Directory queries answered from the view cache",
	})

	m.directoryCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "directory_cache_misses_total",
		Help: "Directory queries that rebuilt the tree",
	})

	m.directoryQueryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "directory_query_duration_seconds",
		Help:    "Time taken to build and filter a directory view",
		Buckets: prometheus.ExponentialBuckets(BucketStart10us, BucketFactor2, BucketCount12),
	})

	m.directoryTreeNodes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "directory_tree_nodes",
		Help: "Number of nodes in the most recently built directory tree",
	})

	m.overlayAssignmentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "overlay_lane_assignments_total",
		Help: "Total number of detection intervals placed into lanes",
	})

	m.overlayLanesUsed = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "overlay_lanes_used",
		Help: "Lanes used by the most recent overlay layout",
	})

	m.errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_errors_total",
			Help: "Errors built by the dashboard, by category and component",
		},
		[]string{"category", "component"},
	)
}

// Describe implements the Collector interface
func (m *DashboardMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.directoryQueriesTotal.Describe(ch)
	m.directoryCacheHits.Describe(ch)
	m.directoryCacheMisses.Describe(ch)
	m.directoryQueryDuration.Describe(ch)
	m.directoryTreeNodes.Describe(ch)
	m.overlayAssignmentsTotal.Describe(ch)
	m.overlayLanesUsed.Describe(ch)
	m.errorsTotal.Describe(ch)
}

// Collect implements the Collector interface
func (m *DashboardMetrics) Collect(ch chan<- prometheus.Metric) {
	m.directoryQueriesTotal.Collect(ch)
	m.directoryCacheHits.Collect(ch)
	m.directoryCacheMisses.Collect(ch)
	m.directoryQueryDuration.Collect(ch)
	m.directoryTreeNodes.Collect(ch)
	m.overlayAssignmentsTotal.Collect(ch)
	m.overlayLanesUsed.Collect(ch)
	m.errorsTotal.Collect(ch)
}

// RecordDirectoryQuery records a directory query outcome and its duration in seconds
func (m *DashboardMetrics) RecordDirectoryQuery(status string, duration float64) {
	m.directoryQueriesTotal.WithLabelValues(status).Inc()
	m.directoryQueryDuration.Observe(duration)
}

// RecordCacheHit records a directory cache hit
func (m *DashboardMetrics) RecordCacheHit() {
	m.directoryCacheHits.Inc()
}

// RecordCacheMiss records a directory cache miss
func (m *DashboardMetrics) RecordCacheMiss() {
	m.directoryCacheMisses.Inc()
}

// UpdateTreeNodes sets the size of the last built tree
func (m *DashboardMetrics) UpdateTreeNodes(nodes int) {
	m.directoryTreeNodes.Set(float64(nodes))
}

// RecordLaneAssignment records one overlay layout
func (m *DashboardMetrics) RecordLaneAssignment(intervals, lanes int) {
	m.overlayAssignmentsTotal.Add(float64(intervals))
	m.overlayLanesUsed.Set(float64(lanes))
}

// RecordError counts an error by category and component
func (m *DashboardMetrics) RecordError(category, component string) {
	m.errorsTotal.WithLabelValues(category, component).Inc()
}
