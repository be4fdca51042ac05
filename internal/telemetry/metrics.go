package telemetry

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/filterwise/conflint/internal/conditions"
)

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	httpDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	validationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_runs_total",
			Help: "Condition-set validations performed, by combination logic",
		},
		[]string{"logic"},
	)
	issuesFound = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_issues_total",
			Help: "Issues reported by the contradiction detector",
		},
		[]string{"kind", "severity"},
	)
)

func Init() {
	prometheus.MustRegister(httpReqs, httpDur, validationRuns, issuesFound)
}

// RecordValidation counts one validation pass and the issues it produced.
func RecordValidation(logic conditions.Logic, issues []conditions.Issue) {
	validationRuns.WithLabelValues(string(logic)).Inc()
	for _, issue := range issues {
		issuesFound.WithLabelValues(issue.Kind, string(issue.Severity)).Inc()
	}
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// get route pattern if available
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(ww, r)

		httpReqs.WithLabelValues(route, r.Method, http.StatusText(ww.status)).Inc()
		httpDur.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
