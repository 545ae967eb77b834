package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/exporting"
)

// ExportSyncConfig representa a configuração do agendador de exportação
type ExportSyncConfig struct {
	CronSchedule string
	Days         int
	SyncEnabled  bool
}

// ExportSyncService agenda e executa a exportação das métricas mescladas
type ExportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExportSyncConfig
	exporter            exporting.Exporter
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *exporting.Result
	lastError           string
}

func NewExportSyncService(exporter exporting.Exporter, appConfig *config.Config) *ExportSyncService {
	syncConfig := ExportSyncConfig{
		CronSchedule: appConfig.ExportSync.CronSchedule,
		Days:         appConfig.Export.Days,
		SyncEnabled:  appConfig.ExportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"days":          syncConfig.Days,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de exportação carregada")

	return &ExportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		exporter:  exporter,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *ExportSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Exportação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de exportação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runExport(s.baseCtx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportação")
		s.scheduler.Stop()
	}()

	return nil
}

// tryAcquire marca a exportação como em andamento; false se já houver uma
func (s *ExportSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ExportSyncService) runExport(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.Info("Exportação já em andamento, ignorando")
		return
	}
	s.export(ctx)
}

// export executa a exportação; o chamador já adquiriu a execução
func (s *ExportSyncService) export(ctx context.Context) {
	logrus.Info("Iniciando exportação das métricas")

	result, err := s.exporter.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na exportação das métricas")
		return
	}

	s.lastResult = result
	s.lastError = ""

	logrus.WithFields(logrus.Fields{
		"run_id":   result.RunID,
		"rows":     result.Rows,
		"failed":   result.Failed(),
		"duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Exportação das métricas concluída")
}

// TriggerManualSync inicia uma exportação em segundo plano. Retorna false se já houver uma em andamento.
func (s *ExportSyncService) TriggerManualSync() bool {
	if !s.tryAcquire() {
		logrus.Info("Exportação já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando exportação manual")
	go s.export(s.baseCtx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ExportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_days":              s.config.Days,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}
