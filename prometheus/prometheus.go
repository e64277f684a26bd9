// Package prometheus exposes Prometheus metrics for the scrape pipeline and
// the HTTP API.
package prometheus

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/schemagen"
	"github.com/go-chi/chi/v5"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeSuccess labels successful scrapes in schemagen_scrapes_total.
const OutcomeSuccess = "success"

// Metrics holds the collectors registered for one process.
type Metrics struct {
	scrapesTotal          *prom.CounterVec
	scrapeDuration        prom.Histogram
	httpRequestsTotal     *prom.CounterVec
	httpRequestDuration *prom.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prom.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		scrapesTotal: factory.NewCounterVec(
			prom.CounterOpts{
				Name: "schemagen_scrapes_total",
				Help: "Total number of scrapes, labeled by outcome.",
			},
			[]string{"outcome"},
		),
		scrapeDuration: factory.NewHistogram(
			prom.HistogramOpts{
				Name:    "schemagen_scrape_duration_seconds",
				Help:    "Histogram of scrape latencies, fetch included.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prom.CounterOpts{
				Name: "schemagen_http_requests_total",
				Help: "Total number of HTTP requests, labeled by method, route and code.",
			},
			[]string{"method", "route", "code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prom.HistogramOpts{
				Name:    "schemagen_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route"},
		),
	}
}

// Handler returns an http.Handler exposing the metrics gathered by g.
func Handler(g prom.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Ensure Scraper implements schemagen.Scraper.
var _ schemagen.Scraper = (*Scraper)(nil)

// Scraper wraps a Scraper, counting scrapes by outcome and observing their
// duration.
type Scraper struct {
	next    schemagen.Scraper
	metrics *Metrics
}

// NewScraper creates a new Scraper.
func NewScraper(next schemagen.Scraper, m *Metrics) *Scraper {
	return &Scraper{next: next, metrics: m}
}

// Scrape delegates to the wrapped scraper and records the outcome, which is
// OutcomeSuccess or the error code of the failure.
func (s *Scraper) Scrape(ctx context.Context, url string) (data *schemagen.ExtractedData, err error) {
	defer func(begin time.Time) {
		s.metrics.scrapeDuration.Observe(time.Since(begin).Seconds())
		outcome := OutcomeSuccess
		if err != nil {
			outcome = schemagen.ErrorCode(err)
		}
		s.metrics.scrapesTotal.WithLabelValues(outcome).Inc()
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// Middleware is a chi middleware that records HTTP request metrics.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		m.httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.status)).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
