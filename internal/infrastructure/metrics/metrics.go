// Package metrics adaptador Prometheus para la instrumentación del reporte avanzado y del API HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/health-analytics-api/internal/application/ports"
)

const namespace = "health_analytics"

var _ ports.ReportObserver = (*Metrics)(nil)

// Metrics colectores del servicio, registrados en un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	ReportsTotal   *prometheus.CounterVec
	ReportDuration prometheus.Histogram
	HealthScore    prometheus.Histogram
	FetchFailures  *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New crea el registry con los colectores de proceso y runtime de Go más los del servicio.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ReportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Reportes avanzados generados, por nivel de riesgo de caja",
		}, []string{"cash_risk"}),

		ReportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Duración de la generación del reporte avanzado en segundos",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		HealthScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "health_score_overall",
			Help:      "Distribución del puntaje de salud general (0-100)",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),

		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_fetch_failures_total",
			Help:      "Fallos de la capa de datos por fuente",
		}, []string{"source"}),

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método, ruta y código",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de peticiones HTTP en segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveReport implementa ports.ReportObserver.
func (m *Metrics) ObserveReport(duration time.Duration, riskLevel string, overallScore int) {
	m.ReportsTotal.WithLabelValues(riskLevel).Inc()
	m.ReportDuration.Observe(duration.Seconds())
	m.HealthScore.Observe(float64(overallScore))
}

// ObserveFetchFailure implementa ports.ReportObserver.
func (m *Metrics) ObserveFetchFailure(source string) {
	m.FetchFailures.WithLabelValues(source).Inc()
}

// ObserveHTTP registra una petición ya respondida.
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry expone el registry para tests y para el handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler handler net/http de /metrics sobre el registry propio.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
