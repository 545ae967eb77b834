package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/api"
	"github.com/vfg2006/growth-dashboard-api/internal/app"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/scheduler"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter := app.NewReporter(ctx, cfg)

	exportService, cleanup, err := app.NewExporter(ctx, cfg, reporter)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a exportação")
	}
	defer cleanup()

	exportSyncService := scheduler.NewExportSyncService(exportService, cfg)
	if err := exportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação")
	} else {
		logrus.Info("Agendador de exportação iniciado com sucesso")
	}

	server, err := api.New(cfg, reporter, exportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
