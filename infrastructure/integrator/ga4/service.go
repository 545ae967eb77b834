package ga4

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

// ga4DateLayout é o formato da dimensão date do GA4
const ga4DateLayout = "20060102"

const (
	EventAddToCart = "add_to_cart"
	EventPurchase  = "purchase"
)

type GA4Integrator struct {
	Client ga4client.Client
}

func New(client ga4client.Client) *GA4Integrator {
	return &GA4Integrator{Client: client}
}

// dayValues acumula os valores de um dia vindos dos três relatórios
type dayValues struct {
	totalUsers int64
	addToCart  int64
	purchases  int64
	revenue    domain.Money
}

// GetDailyMetrics combina os relatórios de usuários/receita, add_to_cart e purchase
// em uma linha por dia, ordenada por data. Dias sem nenhuma linha no GA4 não aparecem.
func (s *GA4Integrator) GetDailyMetrics(ctx context.Context, filters *domain.InsigthFilters) ([]domain.DailyMetric, error) {
	var usersRows, cartRows, purchaseRows []*analyticsdata.Row

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		usersRows, err = s.Client.RunReport(gctx, dailyReport(filters, "", "totalUsers", "purchaseRevenue"))
		return err
	})
	g.Go(func() (err error) {
		cartRows, err = s.Client.RunReport(gctx, dailyReport(filters, EventAddToCart, "eventCount"))
		return err
	})
	g.Go(func() (err error) {
		purchaseRows, err = s.Client.RunReport(gctx, dailyReport(filters, EventPurchase, "eventCount"))
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"since": filters.Since(),
			"until": filters.Until(),
			"error": err.Error(),
		}).Error("ga4: failed to run reports")
		return nil, err
	}

	byDate := make(map[string]*dayValues)
	get := func(date string) *dayValues {
		v, ok := byDate[date]
		if !ok {
			v = &dayValues{revenue: domain.ZeroMoney}
			byDate[date] = v
		}
		return v
	}

	for _, row := range usersRows {
		date, ok := rowDate(row)
		if !ok {
			continue
		}

		users, err := metricInt(row, 0)
		if err != nil {
			skipMalformed("totalUsers", metricValue(row, 0))
			continue
		}
		revenue, err := domain.ParseMoney(metricValue(row, 1))
		if err != nil {
			skipMalformed("purchaseRevenue", metricValue(row, 1))
			continue
		}

		v := get(date)
		v.totalUsers += users
		v.revenue = v.revenue.Add(revenue)
	}

	for _, row := range cartRows {
		date, ok := rowDate(row)
		if !ok {
			continue
		}
		count, err := metricInt(row, 0)
		if err != nil {
			skipMalformed("eventCount", metricValue(row, 0))
			continue
		}
		get(date).addToCart += count
	}

	for _, row := range purchaseRows {
		date, ok := rowDate(row)
		if !ok {
			continue
		}
		count, err := metricInt(row, 0)
		if err != nil {
			skipMalformed("eventCount", metricValue(row, 0))
			continue
		}
		get(date).purchases += count
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	result := make([]domain.DailyMetric, 0, len(dates))
	for _, date := range dates {
		v := byDate[date]
		result = append(result, domain.DailyMetric{
			Date:            date,
			TotalUsers:      v.totalUsers,
			AddToCart:       v.addToCart,
			Purchases:       v.purchases,
			PurchaseRevenue: v.revenue,
		})
	}

	logrus.WithFields(logrus.Fields{
		"since": filters.Since(),
		"until": filters.Until(),
		"days":  len(result),
	}).Debug("ga4: successfully retrieved daily metrics")

	return result, nil
}

func dailyReport(filters *domain.InsigthFilters, eventName string, metricNames ...string) *analyticsdata.RunReportRequest {
	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{StartDate: filters.Since(), EndDate: filters.Until()}},
		Dimensions: []*analyticsdata.Dimension{{Name: "date"}},
	}

	for _, name := range metricNames {
		req.Metrics = append(req.Metrics, &analyticsdata.Metric{Name: name})
	}

	if eventName != "" {
		req.DimensionFilter = &analyticsdata.FilterExpression{
			Filter: &analyticsdata.Filter{
				FieldName: "eventName",
				StringFilter: &analyticsdata.StringFilter{
					MatchType: "EXACT",
					Value:     eventName,
				},
			},
		}
	}

	return req
}

// rowDate converte a dimensão YYYYMMDD para YYYY-MM-DD
func rowDate(row *analyticsdata.Row) (string, bool) {
	if row == nil || len(row.DimensionValues) == 0 || row.DimensionValues[0] == nil {
		skipMalformed("date", "")
		return "", false
	}

	raw := row.DimensionValues[0].Value
	t, err := time.Parse(ga4DateLayout, raw)
	if err != nil {
		skipMalformed("date", raw)
		return "", false
	}
	return t.Format(domain.DateLayout), true
}

func metricValue(row *analyticsdata.Row, idx int) string {
	if idx >= len(row.MetricValues) || row.MetricValues[idx] == nil {
		return ""
	}
	return row.MetricValues[idx].Value
}

func metricInt(row *analyticsdata.Row, idx int) (int64, error) {
	return strconv.ParseInt(metricValue(row, idx), 10, 64)
}

func skipMalformed(field, value string) {
	err := domain.NewMalformedRecordError(domain.SourceGA4, field, value, nil)
	metrics.IncMalformedRecord(err.Source)
	logrus.WithFields(logrus.Fields{
		"source": err.Source,
		"field":  err.Field,
		"value":  err.Value,
	}).Warn("ga4: skipping malformed row")
}
