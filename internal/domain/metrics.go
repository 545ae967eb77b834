package domain

import "strconv"

// DailyMetric representa as métricas do GA4 de um dia
type DailyMetric struct {
	Date            string `json:"date"`
	TotalUsers      int64  `json:"total_users"`
	AddToCart       int64  `json:"add_to_cart"`
	Purchases       int64  `json:"purchases"`
	PurchaseRevenue Money  `json:"purchase_revenue"`
}

// ChangeEvent representa uma alteração registrada no log de atividades da conta de anúncios
type ChangeEvent struct {
	Date        string `json:"date"`
	EventType   string `json:"event_type"`
	Description string `json:"description"`
	ObjectName  string `json:"object_name,omitempty"`
}

// SpendRecord representa um valor de gasto de um dia
type SpendRecord struct {
	Date  string `json:"date"`
	Spend Money  `json:"spend"`
}

// SpendByDate é o gasto reconciliado por dia
type SpendByDate map[string]Money

// Get retorna o gasto do dia ou zero
func (s SpendByDate) Get(date string) Money {
	if spend, ok := s[date]; ok {
		return spend
	}
	return ZeroMoney
}

// MergedRow é a linha final exposta pela API, uma por dia do intervalo
type MergedRow struct {
	Date            string    `json:"date"`
	TotalUsers      int64     `json:"total_users"`
	AddToCart       int64     `json:"add_to_cart"`
	Purchases       int64     `json:"purchases"`
	PurchaseRevenue Money     `json:"purchase_revenue"`
	MetaActions     ActionSet `json:"meta_actions"`
	MetaSpend       Money     `json:"meta_spend"`
}

// MergedRowColumns é a ordem das colunas nas exportações (CSV, planilha, snapshot)
var MergedRowColumns = []string{
	"date",
	"total_users",
	"add_to_cart",
	"purchases",
	"purchase_revenue",
	"meta_actions",
	"meta_spend",
}

// Record converte a linha em células de texto na ordem de MergedRowColumns
func (r MergedRow) Record() []string {
	return []string{
		r.Date,
		strconv.FormatInt(r.TotalUsers, 10),
		strconv.FormatInt(r.AddToCart, 10),
		strconv.FormatInt(r.Purchases, 10),
		r.PurchaseRevenue.Rounded().String(),
		r.MetaActions.Join(ActionSeparator),
		r.MetaSpend.Rounded().String(),
	}
}
