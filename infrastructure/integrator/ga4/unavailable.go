package ga4

import (
	"context"

	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// Unavailable substitui o integrador quando o cliente do GA4 não pôde ser criado
// (sem GA4_PROPERTY_ID ou sem credenciais). Cada busca falha com o erro original e
// o relatório segue com as métricas do GA4 zeradas.
type Unavailable struct {
	Err error
}

func NewUnavailable(err error) *Unavailable {
	return &Unavailable{Err: err}
}

func (u *Unavailable) GetDailyMetrics(ctx context.Context, filters *domain.InsigthFilters) ([]domain.DailyMetric, error) {
	return nil, u.Err
}
