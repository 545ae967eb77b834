package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/app"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
)

// Executa uma exportação e encerra. Sai com código 1 se algum destino falhar.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, cfg))
}

func run(ctx context.Context, cfg *config.Config) int {
	reporter := app.NewReporter(ctx, cfg)

	exportService, cleanup, err := app.NewExporter(ctx, cfg, reporter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao configurar a exportação")
		return 1
	}
	defer cleanup()

	result, err := exportService.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na exportação das métricas")
		return 1
	}

	for _, sink := range result.Sinks {
		entry := logrus.WithFields(logrus.Fields{
			"sink":        sink.Sink,
			"rows":        sink.Rows,
			"duration_ms": sink.DurationMS,
		})
		if sink.Error != "" {
			entry.WithField("error", sink.Error).Error("Destino falhou")
			continue
		}
		entry.Info("Destino gravado")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     result.RunID,
		"start_date": result.StartDate,
		"end_date":   result.EndDate,
		"rows":       result.Rows,
	}).Info("Exportação concluída")

	if result.Failed() {
		return 1
	}
	return 0
}
