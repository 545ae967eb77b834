package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

const (
	metricsSnapshotTable = "metrics_snapshot"
)

var metricsSnapshotColumns = []string{
	"run_id",
	"date",
	"total_users",
	"add_to_cart",
	"purchases",
	"purchase_revenue",
	"meta_actions",
	"meta_spend",
	"exported_at",
}

const createMetricsSnapshotTable = `CREATE TABLE IF NOT EXISTS metrics_snapshot (
	run_id           VARCHAR(21)    NOT NULL,
	date             DATE           NOT NULL PRIMARY KEY,
	total_users      BIGINT         NOT NULL DEFAULT 0,
	add_to_cart      BIGINT         NOT NULL DEFAULT 0,
	purchases        BIGINT         NOT NULL DEFAULT 0,
	purchase_revenue NUMERIC(14, 2) NOT NULL DEFAULT 0,
	meta_actions     TEXT[]         NOT NULL DEFAULT '{}',
	meta_spend       NUMERIC(14, 2) NOT NULL DEFAULT 0,
	exported_at      TIMESTAMPTZ    NOT NULL
)`

//go:generate mockgen -source=metrics_snapshot.go -destination=mocks/metrics_snapshot_mock.go -package=mocks
type MetricsSnapshotRepository interface {
	EnsureSchema(ctx context.Context) error
	ReplaceAll(ctx context.Context, runID string, rows []domain.MergedRow) error
}

type metricsSnapshotRepository struct {
	conn postgres.Conn
	now  func() time.Time
}

func NewMetricsSnapshotRepository(conn postgres.Conn) MetricsSnapshotRepository {
	return &metricsSnapshotRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *metricsSnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createMetricsSnapshotTable); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", metricsSnapshotTable, err)
	}
	return nil
}

// ReplaceAll substitui todo o conteúdo da tabela pelas linhas da execução, em uma transação
func (r *metricsSnapshotRepository) ReplaceAll(ctx context.Context, runID string, rows []domain.MergedRow) error {
	deleteQuery, deleteArgs, err := squirrel.Delete(metricsSnapshotTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	insertQuery, insertArgs, err := buildSnapshotInsert(runID, rows, r.now())
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
		if err != nil {
			return fmt.Errorf("erro ao limpar snapshot: %w", err)
		}

		deleted, _ := result.RowsAffected()
		logrus.WithFields(logrus.Fields{
			"run_id":  runID,
			"deleted": deleted,
		}).Debug("snapshot: previous rows removed")

		if insertQuery == "" {
			return nil
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"rows":   len(rows),
	}).Info("snapshot: metrics snapshot replaced")

	return nil
}

// buildSnapshotInsert monta um único INSERT com todas as linhas. Sem linhas retorna query vazia.
func buildSnapshotInsert(runID string, rows []domain.MergedRow, exportedAt time.Time) (string, []interface{}, error) {
	if len(rows) == 0 {
		return "", nil, nil
	}

	builder := squirrel.Insert(metricsSnapshotTable).
		Columns(metricsSnapshotColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(
			runID,
			row.Date,
			row.TotalUsers,
			row.AddToCart,
			row.Purchases,
			row.PurchaseRevenue.Rounded().String(),
			pq.Array(row.MetaActions.Items()),
			row.MetaSpend.Rounded().String(),
			exportedAt,
		)
	}

	return builder.ToSql()
}
