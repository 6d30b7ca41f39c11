package boardclient

import (
	"sync/atomic"
	"time"
)

// MetricID defines a public type used by boardclient APIs.
type MetricID uint16

const (
	// MetricRequestIssued is an exported constant or variable used by the API client.
	MetricRequestIssued MetricID = iota
	// MetricRequestFailure is an exported constant or variable used by the API client.
	MetricRequestFailure
	// MetricUnauthorizedResponse is an exported constant or variable used by the API client.
	MetricUnauthorizedResponse
	// MetricForcedLogout is an exported constant or variable used by the API client.
	MetricForcedLogout
	// MetricLoginSuccess is an exported constant or variable used by the API client.
	MetricLoginSuccess
	// MetricLoginFailure is an exported constant or variable used by the API client.
	MetricLoginFailure
	// MetricRegisterSuccess is an exported constant or variable used by the API client.
	MetricRegisterSuccess
	// MetricRegisterFailure is an exported constant or variable used by the API client.
	MetricRegisterFailure
	// MetricFetchUserFailure is an exported constant or variable used by the API client.
	MetricFetchUserFailure
	// MetricLogout is an exported constant or variable used by the API client.
	MetricLogout
	// MetricNotificationPoll is an exported constant or variable used by the API client.
	MetricNotificationPoll
	// MetricCredentialPersistFailure is an exported constant or variable used by the API client.
	MetricCredentialPersistFailure
	// MetricRequestLatency is an exported constant or variable used by the API client.
	MetricRequestLatency

	metricIDCount
)

const histBucketCount = 8

// Cache-line padding keeps hot counters from false sharing.
type paddedCounter struct {
	value uint64
	_     [7]uint64
}

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

// Metrics defines a public type used by boardclient APIs.
//
// Metrics instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot defines a public type used by boardclient APIs.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counters are collected.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the counter behind id. Disabled or out-of-range IDs are
// ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records a request latency sample when histograms are enabled.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enableLatency || id != MetricRequestLatency {
		return
	}
	b := bucketIndex(d)
	atomic.AddUint64(&m.histograms[id].buckets[b], 1)
}

// Value returns the current count behind id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies all counters (and the latency histogram when enabled)
// into a point-in-time view.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	if m.enableLatency {
		buckets := make([]uint64, histBucketCount)
		for i := 0; i < histBucketCount; i++ {
			buckets[i] = atomic.LoadUint64(&m.histograms[MetricRequestLatency].buckets[i])
		}
		s.Histograms[MetricRequestLatency] = buckets
	}
	return s
}

func bucketIndex(d time.Duration) int {
	ms := d.Milliseconds()
	switch {
	case ms <= 5:
		return 0
	case ms <= 10:
		return 1
	case ms <= 25:
		return 2
	case ms <= 50:
		return 3
	case ms <= 100:
		return 4
	case ms <= 250:
		return 5
	case ms <= 500:
		return 6
	default:
		return 7
	}
}
