// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "livability",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "livability",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	providerQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "livability",
			Name:      "provider_queries_total",
			Help:      "Nearby-search queries issued to the places provider",
		},
		[]string{"place_type", "outcome"},
	)

	analysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "livability",
			Name:      "analysis_duration_seconds",
			Help:      "Wall-clock duration of full composite analyses",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(providerQueriesTotal)
	prometheus.MustRegister(analysisDuration)
}

// RecordProviderQuery counts one upstream nearby-search call.
func RecordProviderQuery(placeType string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	providerQueriesTotal.WithLabelValues(placeType, outcome).Inc()
}

// ObserveAnalysis records the duration of one composite analysis.
func ObserveAnalysis(d time.Duration) {
	analysisDuration.Observe(d.Seconds())
}

// Middleware records HTTP request duration and count.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(ww.status)

			// Use the chi route pattern to keep label cardinality bounded.
			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = "unknown"
			}

			httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
			httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}
