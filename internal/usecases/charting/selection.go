package charting

import (
	"fmt"
	"strings"
)

type Metric string

const (
	Purchases       Metric = "purchases"
	TotalUsers      Metric = "total_users"
	AddToCart       Metric = "add_to_cart"
	PurchaseRevenue Metric = "purchase_revenue"
	MetaSpend       Metric = "meta_spend"
)

type Axis string

const (
	AxisLeft  Axis = "left"
	AxisRight Axis = "right"
)

type metricInfo struct {
	label      string
	axis       Axis
	cumulative bool
}

// CanonicalOrder é a ordem das séries no gráfico e na escolha da métrica dos marcadores
var CanonicalOrder = []Metric{Purchases, TotalUsers, AddToCart, PurchaseRevenue, MetaSpend}

var metricsInfo = map[Metric]metricInfo{
	Purchases:       {label: "Purchases", axis: AxisLeft},
	TotalUsers:      {label: "Total users", axis: AxisLeft},
	AddToCart:       {label: "Add to cart", axis: AxisLeft},
	PurchaseRevenue: {label: "Purchase revenue", axis: AxisRight, cumulative: true},
	MetaSpend:       {label: "Meta spend", axis: AxisRight, cumulative: true},
}

// Selection é o conjunto de métricas visíveis no gráfico
type Selection map[Metric]bool

// DefaultSelection exibe tudo menos purchases
func DefaultSelection() Selection {
	return Selection{
		Purchases:       false,
		TotalUsers:      true,
		AddToCart:       true,
		PurchaseRevenue: true,
		MetaSpend:       true,
	}
}

// ParseSelection lê uma lista separada por vírgula. Vazio retorna a seleção padrão.
func ParseSelection(raw string) (Selection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSelection(), nil
	}

	selection := Selection{}
	for _, part := range strings.Split(raw, ",") {
		metric := Metric(strings.TrimSpace(part))
		if metric == "" {
			continue
		}
		if _, ok := metricsInfo[metric]; !ok {
			return nil, fmt.Errorf("unknown metric %q", metric)
		}
		selection[metric] = true
	}

	return selection, nil
}

// First retorna a primeira métrica selecionada na ordem canônica, ou purchases
func (s Selection) First() Metric {
	for _, metric := range CanonicalOrder {
		if s[metric] {
			return metric
		}
	}
	return Purchases
}
