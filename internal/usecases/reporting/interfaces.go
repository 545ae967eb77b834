package reporting

import (
	"context"

	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// AnalyticsSource fornece as métricas diárias do GA4
type AnalyticsSource interface {
	GetDailyMetrics(ctx context.Context, filters *domain.InsigthFilters) ([]domain.DailyMetric, error)
}

// ChangeLogSource fornece as alterações feitas na conta de anúncios
type ChangeLogSource interface {
	GetChangeEvents(ctx context.Context, filters *domain.InsigthFilters) ([]domain.ChangeEvent, error)
}

// SpendSource fornece o gasto agregado (insights) e as cobranças (transactions)
type SpendSource interface {
	GetInsightSpend(ctx context.Context, filters *domain.InsigthFilters) ([]domain.SpendRecord, error)
	GetTransactionSpend(ctx context.Context, filters *domain.InsigthFilters) ([]domain.SpendRecord, error)
}

// Reporter monta as linhas mescladas de um período
type Reporter interface {
	BuildMerged(ctx context.Context, dr domain.DateRange) ([]domain.MergedRow, error)
}
