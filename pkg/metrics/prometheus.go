// Package metrics provides Prometheus metrics for the captain agent services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the agent services.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Tool Surface Metrics - Invocations arriving at the tool endpoints
	toolInvocations *prometheus.CounterVec
	toolLatency     *prometheus.HistogramVec

	// Orchestration Metrics - Schedule upload pipeline
	pipelineRuns     *prometheus.CounterVec
	pipelineDuration prometheus.Histogram
	eventsParsed     prometheus.Counter
	eventsCreated    prometheus.Counter
	eventsFailed     prometheus.Counter

	// Upload Metrics - Incoming schedule images
	imagesProcessed   prometheus.Counter
	imageDecodeErrors prometheus.Counter

	// Delegation Metrics - Agent-to-agent tool calls
	delegatedCalls       *prometheus.CounterVec
	delegatedCallLatency *prometheus.HistogramVec

	// Event Store Metrics - External event-storage API calls
	storeRequests       *prometheus.CounterVec
	storeRequestLatency prometheus.Histogram

	// Vision Metrics - Image analysis backend
	visionLatency prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "captain",
		subsystem:        "agent",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Tool Surface Metrics - What the agents actually expose
	m.toolInvocations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tool_invocations_total",
			Help:      "Total number of tool invocations by tool name and outcome",
		},
		[]string{"tool", "outcome"},
	)

	m.toolLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tool_latency_milliseconds",
			Help:      "Histogram of tool handler latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"tool"},
	)

	// Orchestration Metrics - Pipeline progress and yield
	m.pipelineRuns = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "pipeline_runs_total",
			Help:      "Total number of schedule upload pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	m.pipelineDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_duration_milliseconds",
		Help:      "Schedule upload pipeline duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.eventsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_parsed_total",
		Help:      "Total number of candidate events extracted from schedule images",
	})

	m.eventsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_created_total",
		Help:      "Total number of events created in the event store",
	})

	m.eventsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_failed_total",
		Help:      "Total number of events that failed to be created",
	})

	// Upload Metrics - Incoming image quality indicators
	m.imagesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "images_processed_total",
		Help:      "Total number of schedule images accepted for analysis",
	})

	m.imageDecodeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "image_decode_errors_total",
		Help:      "Total number of uploads rejected before analysis (indicates client data quality)",
	})

	// Delegation Metrics - Agent-to-agent call health
	m.delegatedCalls = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "delegated_calls_total",
			Help:      "Total number of delegated tool calls by target service, tool, and outcome",
		},
		[]string{"service", "tool", "outcome"},
	)

	m.delegatedCallLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "delegated_call_latency_milliseconds",
			Help:      "Delegated tool call latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"service", "tool"},
	)

	// Event Store Metrics - External dependency health
	m.storeRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_requests_total",
			Help:      "Total number of event-store requests by outcome",
		},
		[]string{"outcome"},
	)

	m.storeRequestLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_request_latency_milliseconds",
		Help:      "Event-store request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Vision Metrics - Analysis backend performance
	m.visionLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vision_latency_milliseconds",
		Help:      "Histogram of image analysis latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds (user experience)",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Enhanced Error Metrics - Detailed error tracking
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of operations that resulted in errors",
			Buckets:   m.histogramBuckets,
		},
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// Tool Surface Metrics Functions.

// RecordToolInvocation records a tool invocation with its outcome ("ok" or "error").
func RecordToolInvocation(tool, outcome string) {
	globalManager.toolInvocations.WithLabelValues(tool, outcome).Inc()
}

// RecordToolLatency records tool handler latency in milliseconds.
func RecordToolLatency(tool string, latencyMs float64) {
	globalManager.toolLatency.WithLabelValues(tool).Observe(latencyMs)
}

// Orchestration Metrics Functions.

// RecordPipelineRun records a completed pipeline run with its terminal outcome.
func RecordPipelineRun(outcome string) {
	globalManager.pipelineRuns.WithLabelValues(outcome).Inc()
}

// RecordPipelineDuration records pipeline duration in milliseconds.
func RecordPipelineDuration(durationMs float64) {
	globalManager.pipelineDuration.Observe(durationMs)
}

// RecordEventsParsed adds to the parsed events counter.
func RecordEventsParsed(count int) {
	globalManager.eventsParsed.Add(float64(count))
}

// RecordEventCreated increments the created events counter.
func RecordEventCreated() {
	globalManager.eventsCreated.Inc()
}

// RecordEventCreationFailure increments the failed events counter.
func RecordEventCreationFailure() {
	globalManager.eventsFailed.Inc()
}

// Upload Metrics Functions.

// RecordImageProcessed increments the processed images counter.
func RecordImageProcessed() {
	globalManager.imagesProcessed.Inc()
}

// RecordImageDecodeError increments the rejected uploads counter.
func RecordImageDecodeError() {
	globalManager.imageDecodeErrors.Inc()
}

// Delegation Metrics Functions.

// RecordDelegatedCall records a delegated tool call by service, tool, and outcome.
func RecordDelegatedCall(service, tool, outcome string) {
	globalManager.delegatedCalls.WithLabelValues(service, tool, outcome).Inc()
}

// RecordDelegatedCallLatency records delegated call latency in milliseconds.
func RecordDelegatedCallLatency(service, tool string, latencyMs float64) {
	globalManager.delegatedCallLatency.WithLabelValues(service, tool).Observe(latencyMs)
}

// Event Store Metrics Functions.

// RecordStoreRequest records an event-store request by outcome.
func RecordStoreRequest(outcome string) {
	globalManager.storeRequests.WithLabelValues(outcome).Inc()
}

// RecordStoreRequestLatency records event-store request latency in milliseconds.
func RecordStoreRequestLatency(latencyMs float64) {
	globalManager.storeRequestLatency.Observe(latencyMs)
}

// Vision Metrics Functions.

// RecordVisionLatency records image analysis latency in milliseconds.
func RecordVisionLatency(latencyMs float64) {
	globalManager.visionLatency.Observe(latencyMs)
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Enhanced Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
