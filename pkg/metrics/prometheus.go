// Package metrics provides Prometheus metrics for the fedgauge stance engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "fedgauge"
)

// Classification pipeline metrics.
var (
	classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classifications_total",
		Help:      "Classifications performed, labelled by backend name.",
	}, []string{"backend"})

	backendFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_failures_total",
		Help:      "Classifier or source backend errors absorbed by the router.",
	}, []string{"backend"})

	sourceFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_fetches_total",
		Help:      "Source provider fetches, labelled by source name.",
	}, []string{"source"})

	classificationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "classification_latency_ms",
		Help:      "Latency of a single classification in milliseconds.",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
	})
)

// Stance store metrics.
var (
	storeUpsertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_upserts_total",
		Help:      "Stance entries written to the history store.",
	})

	storeParticipants = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_participants",
		Help:      "Participants with at least one stance entry.",
	})

	storeEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_entries",
		Help:      "Total stance entries across all participants.",
	})

	backfilledEntriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_backfilled_entries_total",
		Help:      "Legacy single-dimension entries upgraded at load time.",
	})
)

// Signal computation metrics.
var (
	signalComputationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signal_computations_total",
		Help:      "Weighted-signal computations, labelled by dimension.",
	}, []string{"dimension"})

	weightedScore = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "weighted_score",
		Help:      "Last computed committee weighted score per dimension.",
	}, []string{"dimension"})
)

// Pipeline metrics.
var (
	refreshCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_cycles_total",
		Help:      "Completed refresh cycles across the roster.",
	})

	participantsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "participants_processed_total",
		Help:      "Participants processed by the refresh pipeline.",
	})

	queueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "refresh_queue_size",
		Help:      "Jobs currently waiting in the refresh queue.",
	})

	workerErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "worker_errors_total",
		Help:      "Refresh jobs that failed inside the worker pool.",
	})
)

// HTTP metrics.
var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint and status code.",
	}, []string{"endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds by endpoint.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"endpoint"})
)

// RecordClassification increments the classification counter for a backend.
func RecordClassification(backend string) {
	classificationsTotal.WithLabelValues(backend).Inc()
}

// RecordBackendFailure increments the absorbed-failure counter for a backend.
func RecordBackendFailure(backend string) {
	backendFailuresTotal.WithLabelValues(backend).Inc()
}

// RecordSourceFetch increments the fetch counter for a source provider.
func RecordSourceFetch(source string) {
	sourceFetchesTotal.WithLabelValues(source).Inc()
}

// RecordClassificationLatency observes a classification latency in milliseconds.
func RecordClassificationLatency(ms float64) {
	classificationLatency.Observe(ms)
}

// RecordStoreUpsert increments the store write counter.
func RecordStoreUpsert() {
	storeUpsertsTotal.Inc()
}

// UpdateStoreSize sets the participant and entry gauges.
func UpdateStoreSize(participants, entries int) {
	storeParticipants.Set(float64(participants))
	storeEntries.Set(float64(entries))
}

// RecordBackfilledEntry increments the schema-backfill counter.
func RecordBackfilledEntry() {
	backfilledEntriesTotal.Inc()
}

// RecordSignalComputation increments the signal counter for a dimension.
func RecordSignalComputation(dimension string) {
	signalComputationsTotal.WithLabelValues(dimension).Inc()
}

// UpdateWeightedScore sets the last weighted score gauge for a dimension.
func UpdateWeightedScore(dimension string, score float64) {
	weightedScore.WithLabelValues(dimension).Set(score)
}

// RecordRefreshCycle increments the completed-cycle counter.
func RecordRefreshCycle() {
	refreshCyclesTotal.Inc()
}

// RecordParticipantProcessed increments the processed-participant counter.
func RecordParticipantProcessed() {
	participantsProcessedTotal.Inc()
}

// UpdateQueueSize sets the refresh queue gauge.
func UpdateQueueSize(n int) {
	queueSize.Set(float64(n))
}

// RecordWorkerError increments the worker failure counter.
func RecordWorkerError() {
	workerErrorsTotal.Inc()
}

// RecordHTTPRequest increments the request counter for an endpoint/status pair.
func RecordHTTPRequest(endpoint, status string) {
	httpRequests.WithLabelValues(endpoint, status).Inc()
}

// RecordHTTPRequestDuration observes a request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint string, ms float64) {
	httpRequestDuration.WithLabelValues(endpoint).Observe(ms)
}
