// Package metrics concentra os coletores Prometheus da aplicação
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "growth_dashboard"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP por método, rota e status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_fetch_duration_seconds",
		Help:      "Duração das buscas nas APIs externas por origem.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"source"})

	upstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_failures_total",
		Help:      "Buscas em APIs externas que falharam e foram tratadas como vazias.",
	}, []string{"source"})

	malformedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_records_total",
		Help:      "Registros descartados por data ou número ilegível.",
	}, []string{"source"})

	exportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "export_runs_total",
		Help:      "Execuções de exportação por destino e resultado.",
	}, []string{"sink", "status"})
)

// Handler expõe as métricas no formato Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func ObserveUpstreamFetch(source string, elapsed time.Duration) {
	upstreamDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

func IncUpstreamFailure(source string) {
	upstreamFailures.WithLabelValues(source).Inc()
}

func IncMalformedRecord(source string) {
	malformedRecords.WithLabelValues(source).Inc()
}

func IncExportRun(sink string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	exportRuns.WithLabelValues(sink, status).Inc()
}
