package reporting

import (
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// MergeMetrics anexa ações e gasto a cada linha de métricas, na ordem recebida.
// Datas sem linha de métricas não geram linha nova.
func MergeMetrics(dailyMetrics []domain.DailyMetric, actions *domain.ActionsByDate, spend domain.SpendByDate) []domain.MergedRow {
	rows := make([]domain.MergedRow, 0, len(dailyMetrics))

	for _, m := range dailyMetrics {
		rows = append(rows, domain.MergedRow{
			Date:            m.Date,
			TotalUsers:      m.TotalUsers,
			AddToCart:       m.AddToCart,
			Purchases:       m.Purchases,
			PurchaseRevenue: m.PurchaseRevenue.Rounded(),
			MetaActions:     actions.Get(m.Date),
			MetaSpend:       spend.Get(m.Date).Rounded().NonNegative(),
		})
	}

	return rows
}

// DensifyMetrics devolve exatamente uma linha por dia do período, em ordem.
// Dias ausentes recebem zeros; linhas repetidas do mesmo dia são somadas.
func DensifyMetrics(dr domain.DateRange, dailyMetrics []domain.DailyMetric) []domain.DailyMetric {
	byDate := make(map[string]domain.DailyMetric, len(dailyMetrics))
	for _, m := range dailyMetrics {
		if !dr.Contains(m.Date) {
			continue
		}

		current, ok := byDate[m.Date]
		if !ok {
			byDate[m.Date] = m
			continue
		}
		current.TotalUsers += m.TotalUsers
		current.AddToCart += m.AddToCart
		current.Purchases += m.Purchases
		current.PurchaseRevenue = current.PurchaseRevenue.Add(m.PurchaseRevenue)
		byDate[m.Date] = current
	}

	result := make([]domain.DailyMetric, 0, dr.Len())
	for _, date := range dr.Keys() {
		m, ok := byDate[date]
		if !ok {
			m = domain.DailyMetric{Date: date, PurchaseRevenue: domain.ZeroMoney}
		}
		result = append(result, m)
	}

	return result
}
