package handler

import (
	"net/http"

	"github.com/vfg2006/growth-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/growth-dashboard-api/pkg/metrics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthHandler(),
		},
	}
}

func Metrics(service reporting.Reporter, defaultDays, maxDays int) []router.Route {
	return []router.Route{
		{
			Path:    "/api/metrics",
			Method:  http.MethodGet,
			Handler: GetMergedMetrics(service, defaultDays, maxDays),
		},
		{
			Path:    "/api/metrics/cumulative",
			Method:  http.MethodGet,
			Handler: GetCumulativeChart(service, defaultDays, maxDays),
		},
	}
}

func Export(trigger ExportTrigger) []router.Route {
	return []router.Route{
		{
			Path:    "/api/export/run",
			Method:  http.MethodPost,
			Handler: RunExport(trigger),
		},
		{
			Path:    "/api/export/status",
			Method:  http.MethodGet,
			Handler: GetExportStatus(trigger),
		},
	}
}

// Prometheus expõe as métricas da aplicação
func Prometheus() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}
