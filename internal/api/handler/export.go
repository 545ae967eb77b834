package handler

import (
	"net/http"

	"github.com/vfg2006/growth-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
)

//go:generate mockgen -source=export.go -destination=mocks/export_mock.go -package=mocks

// ExportTrigger dispara e acompanha a exportação agendada
type ExportTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunExport inicia uma exportação em segundo plano
func RunExport(trigger ExportTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !trigger.TriggerManualSync() {
			logger.Info("handler: exportação já em andamento")
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Export already running", nil)
			return
		}

		logger.Info("handler: exportação manual iniciada")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Export started",
		})
	}
}

// GetExportStatus retorna o status da última exportação
func GetExportStatus(trigger ExportTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, trigger.GetStatus())
	}
}
