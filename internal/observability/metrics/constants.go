// Package metrics provides Prometheus collectors for the dashboard engines.
package metrics

const (
	// StatusSuccess labels operations that completed.
	StatusSuccess = "success"
	// StatusError labels operations that returned an error.
	StatusError = "error"

	// BucketStart10us is the starting bucket for 10µs histograms (10µs to ~20ms range).
	BucketStart10us = 0.00001
	// BucketFactor2 is the common exponential growth factor of 2 for histogram buckets.
	BucketFactor2 = 2
	// BucketCount12 defines 12 exponential buckets.
	BucketCount12 = 12
)
