package metrics

import (
	"net/http"
	"strings"

	"promo-code-service/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns every collector of the service. It is bound to one registry so
// tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	codesIssued           *prometheus.CounterVec
	generationCollisions  *prometheus.CounterVec
	generationExhaustions *prometheus.CounterVec
	redemptions           *prometheus.CounterVec
	validations           *prometheus.CounterVec
	storeErrors           *prometheus.CounterVec
	httpRequests          *prometheus.CounterVec
	httpDuration          *prometheus.HistogramVec
	dbPoolStats           *prometheus.GaugeVec
}

var _ shared.Recorder = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		codesIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_codes_issued_total",
				Help: "Promo codes successfully issued per backend.",
			},
			[]string{"backend"},
		),
		generationCollisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_code_generation_collisions_total",
				Help: "Generated candidates rejected because the code already existed.",
			},
			[]string{"backend"},
		),
		generationExhaustions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_code_generation_exhausted_total",
				Help: "Issue requests that ran out of generation attempts.",
			},
			[]string{"backend"},
		),
		redemptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_code_redemptions_total",
				Help: "Redemption attempts by outcome (redeemed/already_used/not_found).",
			},
			[]string{"backend", "result"},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_code_validations_total",
				Help: "Validation requests by outcome.",
			},
			[]string{"backend", "outcome"},
		),
		storeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_code_store_errors_total",
				Help: "Store operations that failed or timed out.",
			},
			[]string{"backend", "op"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_ms",
				Help:    "HTTP request latency distribution in milliseconds.",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 3000},
			},
			[]string{"route", "method"},
		),
		dbPoolStats: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_stats",
				Help: "Current state of the database connection pool.",
			},
			[]string{"state"}, // 'total', 'idle', 'in_use'
		),
	}

	m.registry.MustRegister(
		m.codesIssued, m.generationCollisions, m.generationExhaustions,
		m.redemptions, m.validations, m.storeErrors,
		m.httpRequests, m.httpDuration, m.dbPoolStats,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (m *Metrics) CodeIssued(backend string) {
	m.codesIssued.WithLabelValues(norm(backend)).Inc()
}

func (m *Metrics) GenerationCollision(backend string) {
	m.generationCollisions.WithLabelValues(norm(backend)).Inc()
}

func (m *Metrics) GenerationExhausted(backend string) {
	m.generationExhaustions.WithLabelValues(norm(backend)).Inc()
}

func (m *Metrics) Redemption(backend string, result shared.MarkResult) {
	m.redemptions.WithLabelValues(norm(backend), result.String()).Inc()
}

func (m *Metrics) Validation(backend, outcome string) {
	m.validations.WithLabelValues(norm(backend), norm(outcome)).Inc()
}

func (m *Metrics) StoreError(backend, op string) {
	m.storeErrors.WithLabelValues(norm(backend), norm(op)).Inc()
}

func (m *Metrics) SetDBPoolStats(total, idle, inUse int32) {
	m.dbPoolStats.WithLabelValues("total").Set(float64(total))
	m.dbPoolStats.WithLabelValues("idle").Set(float64(idle))
	m.dbPoolStats.WithLabelValues("in_use").Set(float64(inUse))
}
