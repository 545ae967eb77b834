package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/growth-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// now é a data de referência dos intervalos; substituída nos testes
var now = time.Now

// GetMergedMetrics retorna as linhas mescladas do período: ?days=N ou ?start_date=&end_date=
func GetMergedMetrics(service reporting.Reporter, defaultDays, maxDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		dr, err := dateRangeFromQuery(r, defaultDays, maxDays)
		if err != nil {
			logger.WithError(err).Warn("handler: período inválido")
			apiErrors.WriteFromError(w, err)
			return
		}

		rows, err := service.BuildMerged(ctx, dr)
		if err != nil {
			logger.WithError(err).Error("handler: falha ao montar métricas mescladas")
			apiErrors.WriteFromError(w, err)
			return
		}
		if rows == nil {
			rows = []domain.MergedRow{}
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

// GetCumulativeChart retorna a projeção acumulada das métricas: ?days=N&metrics=a,b
func GetCumulativeChart(service reporting.Reporter, defaultDays, maxDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		selection, err := charting.ParseSelection(r.URL.Query().Get("metrics"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dr, err := dateRangeFromQuery(r, defaultDays, maxDays)
		if err != nil {
			logger.WithError(err).Warn("handler: período inválido")
			apiErrors.WriteFromError(w, err)
			return
		}

		rows, err := service.BuildMerged(ctx, dr)
		if err != nil {
			logger.WithError(err).Error("handler: falha ao montar métricas mescladas")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, charting.Project(rows, selection))
	}
}

// dateRangeFromQuery prioriza start_date/end_date; sem eles usa days, que cai no
// padrão quando ausente ou não numérico. Períodos com mais de maxDays dias são rejeitados
func dateRangeFromQuery(r *http.Request, defaultDays, maxDays int) (domain.DateRange, error) {
	query := r.URL.Query()
	reference := now()

	startDate, endDate := query.Get("start_date"), query.Get("end_date")
	if startDate != "" || endDate != "" {
		if startDate == "" {
			return domain.DateRange{}, &domain.InvalidRangeError{End: endDate, Reason: "start_date is required with end_date"}
		}
		if endDate == "" {
			endDate = domain.Today
		}
		dr, err := domain.NewDateRange(startDate, endDate, reference)
		if err != nil {
			return domain.DateRange{}, err
		}
		if maxDays > 0 && dr.Days() > maxDays {
			return domain.DateRange{}, &domain.InvalidRangeError{Start: startDate, End: endDate, Reason: tooLong(maxDays)}
		}
		return dr, nil
	}

	days, err := strconv.Atoi(query.Get("days"))
	if err != nil {
		days = defaultDays
	}
	if maxDays > 0 && days > maxDays {
		return domain.DateRange{}, &domain.InvalidRangeError{Reason: tooLong(maxDays)}
	}

	return domain.NewDateRangeFromDays(days, reference)
}

func tooLong(maxDays int) string {
	return fmt.Sprintf("range exceeds %d days", maxDays)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("handler: falha ao escrever resposta")
	}
}
