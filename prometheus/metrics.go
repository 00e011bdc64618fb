package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_register_total",
			Help: "Total number of registration attempts",
		},
	)

	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_login_total",
			Help: "Total number of login attempts",
		},
	)

	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // missing_token, invalid_token, invalid_credentials, ...
	)

	PropertyOperationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_property_operations_total",
			Help: "Total number of property operations",
		},
		[]string{"operation"},
	)

	BookingsCreatedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_bookings_created_total",
			Help: "Total number of bookings created",
		},
		[]string{"status"},
	)
)

// Histogram metrics
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // query, insert, update, delete
	)
)

// InfoGauge exposes the running version
var InfoGauge = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "booking_info",
		Help: "Information about the booking service",
	},
	[]string{"version"},
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		RegisterCounter,
		LoginCounter,
		AuthErrorCounter,
		PropertyOperationsCounter,
		BookingsCreatedCounter,
		HTTPRequestDuration,
		DBOperationDuration,
		InfoGauge,
	)
}

// SetVersion records the service version on the info gauge
func SetVersion(version string) {
	InfoGauge.With(prometheus.Labels{"version": version}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operation string) func(startTime time.Time) {
	return func(startTime time.Time) {
		DBOperationDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
	}
}

// ObserveHTTPRequest records one finished HTTP request
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordPropertyOperation increments the counter for property operations
func RecordPropertyOperation(operation string) {
	PropertyOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordBookingCreated counts a stored booking by its initial status
func RecordBookingCreated(status string) {
	BookingsCreatedCounter.WithLabelValues(status).Inc()
}
