package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitgate",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fitgate",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// Guard decision metrics
	authDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitgate",
			Subsystem: "auth",
			Name:      "decisions_total",
			Help:      "Authorization guard decisions by guard and outcome",
		},
		[]string{"guard", "outcome"},
	)

	tokenRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitgate",
			Subsystem: "auth",
			Name:      "token_rejected_total",
			Help:      "Bearer tokens that failed verification, by guard mode",
		},
		[]string{"mode"},
	)
)

// RecordDecision increments the guard decision counter
func RecordDecision(guard, outcome string) {
	authDecisionsTotal.WithLabelValues(guard, outcome).Inc()
}

// RecordTokenRejected increments the rejected-token counter for a guard mode
func RecordTokenRejected(mode string) {
	tokenRejectedTotal.WithLabelValues(mode).Inc()
}

// statusRecorder captures the response status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration per route pattern
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// Use the chi route pattern so path cardinality stays bounded
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		status := strconv.Itoa(rec.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
