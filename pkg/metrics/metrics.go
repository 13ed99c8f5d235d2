// Package metrics Prometheus-метрики сервиса: HTTP, SQL и connection pool.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics контейнер всех метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrors       *prometheus.CounterVec
	DBPoolOpen          *prometheus.GaugeVec
	DBPoolIdle          *prometheus.GaugeVec
	DBPoolInUse         *prometheus.GaugeVec
}

// New создает и регистрирует метрики в дефолтном регистре Prometheus
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "SQL query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed SQL queries",
		}, []string{"service", "operation"}),

		DBPoolOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Number of open connections in the pool",
		}, []string{"service"}),

		DBPoolIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Number of idle connections in the pool",
		}, []string{"service"}),

		DBPoolInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBPoolOpen,
		m.DBPoolIdle,
		m.DBPoolInUse,
	)

	// Инициализируем gauge-метрики, чтобы серия существовала со старта
	m.SetPoolStats(serviceName, 0, 0, 0)

	return m
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает метрики одного SQL запроса
func (m *Metrics) ObserveDBQuery(service, operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(service, operation).Inc()
	}
}

// SetPoolStats обновляет gauge-метрики состояния connection pool
func (m *Metrics) SetPoolStats(service string, open, idle, inUse int) {
	m.DBPoolOpen.WithLabelValues(service).Set(float64(open))
	m.DBPoolIdle.WithLabelValues(service).Set(float64(idle))
	m.DBPoolInUse.WithLabelValues(service).Set(float64(inUse))
}
