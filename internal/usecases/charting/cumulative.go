package charting

import (
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Series struct {
	Metric     Metric  `json:"metric"`
	Label      string  `json:"label"`
	Axis       Axis    `json:"axis"`
	Cumulative bool    `json:"cumulative"`
	Points     []Point `json:"points"`
}

// Marker marca um dia com ações no Meta, posicionado na primeira métrica selecionada
type Marker struct {
	Date              string   `json:"date"`
	Value             float64  `json:"value"`
	Metric            Metric   `json:"metric"`
	Actions           []string `json:"actions"`
	CumulativeSpend   float64  `json:"cumulative_spend"`
	CumulativeRevenue float64  `json:"cumulative_revenue"`
}

type Chart struct {
	Series  []Series `json:"series"`
	Markers []Marker `json:"markers"`
}

// values é a linha do gráfico já com receita e gasto acumulados
type values struct {
	date    string
	actions []string
	byKey   map[Metric]float64
}

// Project monta as séries do gráfico. Receita e gasto são acumulados em todas as
// linhas independente da seleção; as contagens são do próprio dia. As linhas não
// são alteradas.
func Project(rows []domain.MergedRow, selected Selection) Chart {
	cumRevenue := domain.ZeroMoney
	cumSpend := domain.ZeroMoney

	dataset := make([]values, 0, len(rows))
	for _, row := range rows {
		cumRevenue = cumRevenue.Add(row.PurchaseRevenue)
		cumSpend = cumSpend.Add(row.MetaSpend)

		dataset = append(dataset, values{
			date:    row.Date,
			actions: row.MetaActions.Items(),
			byKey: map[Metric]float64{
				Purchases:       float64(row.Purchases),
				TotalUsers:      float64(row.TotalUsers),
				AddToCart:       float64(row.AddToCart),
				PurchaseRevenue: cumRevenue.Float64(),
				MetaSpend:       cumSpend.Float64(),
			},
		})
	}

	chart := Chart{Series: []Series{}, Markers: []Marker{}}

	for _, metric := range CanonicalOrder {
		if !selected[metric] {
			continue
		}

		info := metricsInfo[metric]
		series := Series{
			Metric:     metric,
			Label:      info.label,
			Axis:       info.axis,
			Cumulative: info.cumulative,
			Points:     make([]Point, 0, len(dataset)),
		}
		for _, v := range dataset {
			series.Points = append(series.Points, Point{Date: v.date, Value: v.byKey[metric]})
		}
		chart.Series = append(chart.Series, series)
	}

	anchor := selected.First()
	for _, v := range dataset {
		if len(v.actions) == 0 {
			continue
		}
		chart.Markers = append(chart.Markers, Marker{
			Date:              v.date,
			Value:             v.byKey[anchor],
			Metric:            anchor,
			Actions:           v.actions,
			CumulativeSpend:   v.byKey[MetaSpend],
			CumulativeRevenue: v.byKey[PurchaseRevenue],
		})
	}

	return chart
}
