package metrics

import (
	"sync"
	"time"
)

// MetricsCollector provides a centralized way to collect and retrieve metrics
type MetricsCollector struct {
	mutex               sync.RWMutex
	counters            map[string]int64
	gauges              map[string]float64
	requestCounts       map[string]int64
	requestLatencies    map[string][]time.Duration
	syncCounts          map[string]int64
	syncLatencies       map[string][]time.Duration
	storeQueryCounts    map[string]int64
	storeLatencies      map[string][]time.Duration
	messageBusCounts    map[string]int64
	messageBusLatencies map[string][]time.Duration
	errorCounts         map[string]int64
	startTime           time.Time
	maxHistogramSamples int
}

// Counter metrics
const (
	CounterHTTPRequests        = "http_requests_total"
	CounterHTTPRequestsSuccess = "http_requests_success_total"
	CounterHTTPRequestsError   = "http_requests_error_total"
	CounterSyncLoads           = "sync_loads_total"
	CounterSyncSaves           = "sync_saves_total"
	CounterSyncDeletes         = "sync_deletes_total"
	CounterSyncFailed          = "sync_failed_total"
	CounterStoreQueriesTotal   = "store_queries_total"
	CounterStoreQueriesError   = "store_queries_error_total"
	CounterMessagesSent        = "messages_sent_total"
	CounterMessagesError       = "messages_error_total"
	CounterErrorsTotal         = "errors_total"
)

// Gauge metrics
const (
	GaugeTrucks             = "fleet_trucks"
	GaugeDrivers            = "fleet_drivers"
	GaugeShipments          = "fleet_shipments"
	GaugeMaintenanceRecords = "fleet_maintenance_records"
)

// Sync operation types
const (
	SyncOperationLoad   = "load"
	SyncOperationSave   = "save"
	SyncOperationDelete = "delete"
)

// Store query types
const (
	StoreQueryGetAll = "get_all"
	StoreQuerySet    = "set"
	StoreQueryDelete = "delete"
)

// Message bus operations
const (
	MessageBusOperationSend = "send"
)

// Error types
const (
	ErrorTypeHTTP       = "http"
	ErrorTypeValidation = "validation"
	ErrorTypeStore      = "store"
	ErrorTypeMessageBus = "message_bus"
	ErrorTypeInternal   = "internal"
)

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters:            make(map[string]int64),
		gauges:              make(map[string]float64),
		requestCounts:       make(map[string]int64),
		requestLatencies:    make(map[string][]time.Duration),
		syncCounts:          make(map[string]int64),
		syncLatencies:       make(map[string][]time.Duration),
		storeQueryCounts:    make(map[string]int64),
		storeLatencies:      make(map[string][]time.Duration),
		messageBusCounts:    make(map[string]int64),
		messageBusLatencies: make(map[string][]time.Duration),
		errorCounts:         make(map[string]int64),
		startTime:           time.Now(),
		maxHistogramSamples: 1000,
	}
}

var (
	defaultCollector *MetricsCollector
	collectorOnce    sync.Once
)

// GetMetricsCollector returns the process-wide collector
func GetMetricsCollector() *MetricsCollector {
	collectorOnce.Do(func() {
		defaultCollector = NewMetricsCollector()
	})
	return defaultCollector
}

// IncrementCounter increments a counter by the given value
func (m *MetricsCollector) IncrementCounter(name string, value int64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.counters[name] += value
}

// SetGauge sets a gauge to the given value
func (m *MetricsCollector) SetGauge(name string, value float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.gauges[name] = value
}

func appendSample(samples []time.Duration, latency time.Duration, max int) []time.Duration {
	if len(samples) >= max {
		// Remove the oldest sample
		samples = samples[1:]
	}
	return append(samples, latency)
}

// RecordHTTPRequest records metrics for an HTTP request
func (m *MetricsCollector) RecordHTTPRequest(path string, statusCode int, latency time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.counters[CounterHTTPRequests]++
	m.requestCounts[path]++
	m.requestLatencies[path] = appendSample(m.requestLatencies[path], latency, m.maxHistogramSamples)

	if statusCode >= 200 && statusCode < 400 {
		m.counters[CounterHTTPRequestsSuccess]++
	} else {
		m.counters[CounterHTTPRequestsError]++
		m.errorCounts[ErrorTypeHTTP]++
	}
}

// RecordSyncOperation records metrics for a synchronizer operation
func (m *MetricsCollector) RecordSyncOperation(operation string, success bool, latency time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.syncCounts[operation]++

	switch operation {
	case SyncOperationLoad:
		m.counters[CounterSyncLoads]++
	case SyncOperationSave:
		m.counters[CounterSyncSaves]++
	case SyncOperationDelete:
		m.counters[CounterSyncDeletes]++
	}

	if !success {
		m.counters[CounterSyncFailed]++
		m.errorCounts[ErrorTypeStore]++
	}

	m.syncLatencies[operation] = appendSample(m.syncLatencies[operation], latency, m.maxHistogramSamples)
}

// RecordStoreQuery records metrics for a document store query
func (m *MetricsCollector) RecordStoreQuery(queryType string, success bool, latency time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.storeQueryCounts[queryType]++
	m.counters[CounterStoreQueriesTotal]++

	if !success {
		m.counters[CounterStoreQueriesError]++
		m.errorCounts[ErrorTypeStore]++
	}

	m.storeLatencies[queryType] = appendSample(m.storeLatencies[queryType], latency, m.maxHistogramSamples)
}

// RecordMessageBusOperation records metrics for a message bus operation
func (m *MetricsCollector) RecordMessageBusOperation(operation string, success bool, latency time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.messageBusCounts[operation]++

	if operation == MessageBusOperationSend {
		m.counters[CounterMessagesSent]++
	}

	if !success {
		m.counters[CounterMessagesError]++
		m.errorCounts[ErrorTypeMessageBus]++
	}

	m.messageBusLatencies[operation] = appendSample(m.messageBusLatencies[operation], latency, m.maxHistogramSamples)
}

// RecordError records an error of the given type
func (m *MetricsCollector) RecordError(errorType string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.errorCounts[errorType]++
	m.counters[CounterErrorsTotal]++
}

// averageMillis computes per-key average latencies in milliseconds
func averageMillis(latencies map[string][]time.Duration) map[string]float64 {
	out := make(map[string]float64, len(latencies))
	for key, samples := range latencies {
		if len(samples) == 0 {
			continue
		}
		var sum time.Duration
		for _, s := range samples {
			sum += s
		}
		out[key] = float64(sum.Milliseconds()) / float64(len(samples))
	}
	return out
}

// GetMetrics returns all collected metrics in a structured format
func (m *MetricsCollector) GetMetrics() map[string]interface{} {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	counters := make(map[string]int64, len(m.counters))
	for name, value := range m.counters {
		counters[name] = value
	}
	gauges := make(map[string]float64, len(m.gauges))
	for name, value := range m.gauges {
		gauges[name] = value
	}
	requests := make(map[string]int64, len(m.requestCounts))
	for path, count := range m.requestCounts {
		requests[path] = count
	}
	errorCounts := make(map[string]int64, len(m.errorCounts))
	for name, value := range m.errorCounts {
		errorCounts[name] = value
	}

	return map[string]interface{}{
		"uptime_seconds":         time.Since(m.startTime).Seconds(),
		"counters":               counters,
		"gauges":                 gauges,
		"http_requests":          requests,
		"http_latency_ms":        averageMillis(m.requestLatencies),
		"sync_latency_ms":        averageMillis(m.syncLatencies),
		"store_latency_ms":       averageMillis(m.storeLatencies),
		"message_bus_latency_ms": averageMillis(m.messageBusLatencies),
		"errors":                 errorCounts,
	}
}
