// Copyright (c) 2026 Sam Ritter.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder captures HTTP request metrics on its own Prometheus registry.
// A nil Recorder is a no-op so callers never have to guard against one.
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scorekeep_http_requests_total",
		Help: "Total HTTP requests by method, route and status code.",
	}, []string{"method", "path", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scorekeep_http_request_duration_seconds",
		Help:    "HTTP request duration by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	registry.MustRegister(requests, duration)

	return &Recorder{
		registry: registry,
		requests: requests,
		duration: duration,
	}
}

// Handler serves the /metrics scrape endpoint.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Instrument wraps a handler, recording count and latency under the given
// route pattern (the pattern, not the raw URL, to keep label cardinality
// bounded).
func (r *Recorder) Instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	if r == nil {
		return next
	}
	return func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next(sw, req)

		r.requests.WithLabelValues(req.Method, path, strconv.Itoa(sw.status)).Inc()
		r.duration.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
	}
}

// statusWriter captures the response status code for labeling.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
