// Package metrics exposes campaign and HTTP metrics to Prometheus from a
// private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"deliwer/config"
	"deliwer/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "deliwer"

// Metrics implements service.MetricsRecorder and serves /metrics.
type Metrics struct {
	registry *prometheus.Registry

	tradeIns          *prometheus.CounterVec
	orders            prometheus.Counter
	affiliates        *prometheus.CounterVec
	users             prometheus.Counter
	challengeProgress *prometheus.GaugeVec
	shares            *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		tradeIns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trade_ins_total",
			Help:      "Trade-ins created, by campaign and whether the model was priced from the table.",
		}, []string{"campaign", "known_model"}),
		orders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aquacafe_orders_total",
			Help:      "AquaCafe orders placed.",
		}),
		affiliates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "affiliates_registered_total",
			Help:      "Affiliates registered, by type.",
		}, []string{"type"}),
		users: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Heroes signed up.",
		}),
		challengeProgress: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "challenge_current_amount",
			Help:      "Latest known progress of each community challenge.",
		}, []string{"challenge_id"}),
		shares: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievement_shares_total",
			Help:      "Achievement shares, by platform.",
		}, []string{"platform"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// NewRecorder returns the Prometheus recorder when metrics are enabled and a
// no-op recorder otherwise.
func NewRecorder(cfg *config.Config, m *Metrics) service.MetricsRecorder {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return service.NoopMetrics{}
	}

	return m
}

func (m *Metrics) TradeInCreated(knownModel bool, campaignType string) {
	m.tradeIns.WithLabelValues(campaignType, strconv.FormatBool(knownModel)).Inc()
}

func (m *Metrics) OrderPlaced() {
	m.orders.Inc()
}

func (m *Metrics) AffiliateRegistered(affiliateType string) {
	m.affiliates.WithLabelValues(affiliateType).Inc()
}

func (m *Metrics) UserRegistered() {
	m.users.Inc()
}

func (m *Metrics) ChallengeProgress(challengeID string, current int) {
	m.challengeProgress.WithLabelValues(challengeID).Set(float64(current))
}

func (m *Metrics) ShareRecorded(platform string) {
	m.shares.WithLabelValues(platform).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency per route template so ids
// in paths do not explode label cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
