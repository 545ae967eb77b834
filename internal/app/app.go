// Package app monta as dependências compartilhadas pelos binários
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/ga4"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
)

// NewReporter cria o serviço de relatório com as origens GA4 e Meta. Sem cliente
// do GA4 o relatório continua, com as métricas do GA4 zeradas.
func NewReporter(ctx context.Context, cfg *config.Config) *reporting.Service {
	var analytics reporting.AnalyticsSource

	ga4Client, err := ga4client.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Warn("app: GA4 indisponível, métricas do GA4 serão zeradas")
		analytics = ga4.NewUnavailable(err)
	} else {
		analytics = ga4.New(ga4Client)
	}

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg, nil))

	return reporting.NewService(analytics, metaIntegrator, metaIntegrator)
}

// NewExporter cria o serviço de exportação com os destinos habilitados. O CSV é
// sempre gravado. A função retornada fecha os recursos abertos.
func NewExporter(ctx context.Context, cfg *config.Config, reporter reporting.Reporter) (*exporting.Service, func(), error) {
	cleanup := func() {}

	sinks := []exporting.Sink{exporter.NewCSVExporter(cfg.Export.CSVPath)}

	if cfg.Export.SheetsEnabled {
		sheets, err := exporter.NewSheetsExporter(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Warn("app: exportação para a planilha desabilitada")
		} else {
			sinks = append(sinks, sheets)
		}
	}

	if cfg.Export.DatabaseEnabled {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, cleanup, errors.Wrap(err, "app: erro ao conectar ao PostgreSQL")
		}
		cleanup = func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("app: erro ao fechar conexão com PostgreSQL")
			}
		}

		repo := repository.NewMetricsSnapshotRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, func() {}, err
		}
		sinks = append(sinks, exporter.NewSnapshotExporter(repo))
	}

	return exporting.NewService(reporter, cfg.Export.Days, sinks...), cleanup, nil
}
