package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/fr4nk3nst1ner/talentscope/internal/models"
)

// Metrics holds the collectors exported by the API server
type Metrics struct {
	Registry *prometheus.Registry

	EstimatesTotal *prometheus.CounterVec
	EstimateWait   prometheus.Histogram
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		EstimatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentscope_estimates_total",
				Help: "Total number of salary estimates served",
			},
			[]string{"role_known", "location_known"},
		),
		EstimateWait: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "talentscope_estimate_wait_seconds",
				Help:    "Time spent in the simulated computing delay",
				Buckets: []float64{0, 0.1, 0.5, 1, 1.5, 2, 5},
			},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentscope_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "talentscope_http_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(
		m.EstimatesTotal,
		m.EstimateWait,
		m.HTTPRequests,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveEstimate implements predictor.Observer
func (m *Metrics) ObserveEstimate(est models.Estimate, waited time.Duration) {
	m.EstimatesTotal.WithLabelValues(
		strconv.FormatBool(est.RoleKnown),
		strconv.FormatBool(est.LocationKnown),
	).Inc()
	m.EstimateWait.Observe(waited.Seconds())
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
