package exporter

import (
	"context"

	"github.com/vfg2006/growth-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

const SinkDatabase = "database"

// SnapshotExporter grava as linhas na tabela metrics_snapshot
type SnapshotExporter struct {
	repo repository.MetricsSnapshotRepository
}

func NewSnapshotExporter(repo repository.MetricsSnapshotRepository) *SnapshotExporter {
	return &SnapshotExporter{repo: repo}
}

func (e *SnapshotExporter) Name() string { return SinkDatabase }

func (e *SnapshotExporter) Write(ctx context.Context, runID string, rows []domain.MergedRow) error {
	return e.repo.ReplaceAll(ctx, runID, rows)
}
