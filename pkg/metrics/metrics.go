package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы prometheus для HTTP-запросов
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New создает и регистрирует коллекторы для указанного сервиса
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     []float64{.005, .01, .025, .05, .1, .2, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// Registry возвращает реестр для promhttp.HandlerFor
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest фиксирует один обработанный HTTP-запрос
func (m *Metrics) ObserveRequest(method, route, status string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
