package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cpalctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cpalctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	codecOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cpalctl",
			Subsystem: "codec",
			Name:      "operations_total",
			Help:      "CPAL decode and encode operations by result.",
		},
		[]string{"op", "result"},
	)
	codecTableBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cpalctl",
			Subsystem: "codec",
			Name:      "table_bytes",
			Help:      "Size of CPAL tables handled, in bytes.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"op"},
	)
)

const (
	OpDecode = "decode"
	OpEncode = "encode"
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecOperations, codecTableBytes)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordCodec counts one codec operation. size is only observed on success.
func RecordCodec(op string, size int, err error) {
	RegisterMetrics()
	if err != nil {
		codecOperations.WithLabelValues(op, "error").Inc()
		return
	}
	codecOperations.WithLabelValues(op, "ok").Inc()
	codecTableBytes.WithLabelValues(op).Observe(float64(size))
}
