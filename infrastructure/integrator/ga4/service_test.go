package ga4

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/ga4/ga4client/mocks"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

func row(date string, values ...string) *analyticsdata.Row {
	r := &analyticsdata.Row{DimensionValues: []*analyticsdata.DimensionValue{{Value: date}}}
	for _, v := range values {
		r.MetricValues = append(r.MetricValues, &analyticsdata.MetricValue{Value: v})
	}
	return r
}

// reportFor casa o pedido pelo filtro de eventName ("" para o relatório de usuários)
func reportFor(eventName string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		req, ok := x.(*analyticsdata.RunReportRequest)
		if !ok {
			return false
		}
		if req.DimensionFilter == nil {
			return eventName == ""
		}
		return req.DimensionFilter.Filter.StringFilter.Value == eventName
	})
}

func testFilters() *domain.InsigthFilters {
	dr, _ := domain.NewDateRange("2024-01-01", "2024-01-03", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	return dr.Filters()
}

func TestGA4Integrator_GetDailyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	client.EXPECT().RunReport(gomock.Any(), reportFor("")).Return([]*analyticsdata.Row{
		row("20240102", "40", "99.90"),
		row("20240101", "30", "0"),
		row("2024-13-01", "1", "1"),
	}, nil)
	client.EXPECT().RunReport(gomock.Any(), reportFor(EventAddToCart)).Return([]*analyticsdata.Row{
		row("20240101", "4"),
		row("20240103", "2"),
	}, nil)
	client.EXPECT().RunReport(gomock.Any(), reportFor(EventPurchase)).Return([]*analyticsdata.Row{
		row("20240102", "3"),
		row("20240102", "x"),
	}, nil)

	result, err := integrator.GetDailyMetrics(context.Background(), testFilters())

	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, "2024-01-01", result[0].Date)
	assert.Equal(t, int64(30), result[0].TotalUsers)
	assert.Equal(t, int64(4), result[0].AddToCart)
	assert.Equal(t, int64(0), result[0].Purchases)

	assert.Equal(t, "2024-01-02", result[1].Date)
	assert.Equal(t, int64(3), result[1].Purchases)
	assert.Equal(t, "99.9", result[1].PurchaseRevenue.String())

	assert.Equal(t, "2024-01-03", result[2].Date)
	assert.Equal(t, int64(2), result[2].AddToCart)
	assert.True(t, result[2].PurchaseRevenue.IsZero())
}

func TestGA4Integrator_GetDailyMetrics_ReportFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(client)
	apiErr := errors.New("quota exceeded")

	client.EXPECT().RunReport(gomock.Any(), reportFor("")).Return(nil, apiErr)
	client.EXPECT().RunReport(gomock.Any(), reportFor(EventAddToCart)).Return(nil, nil).AnyTimes()
	client.EXPECT().RunReport(gomock.Any(), reportFor(EventPurchase)).Return(nil, nil).AnyTimes()

	result, err := integrator.GetDailyMetrics(context.Background(), testFilters())

	assert.ErrorIs(t, err, apiErr)
	assert.Nil(t, result)
}

func TestDailyReport(t *testing.T) {
	req := dailyReport(testFilters(), EventPurchase, "eventCount")

	require.Len(t, req.DateRanges, 1)
	assert.Equal(t, "2024-01-01", req.DateRanges[0].StartDate)
	assert.Equal(t, "2024-01-03", req.DateRanges[0].EndDate)
	assert.Equal(t, "date", req.Dimensions[0].Name)
	assert.Equal(t, "eventCount", req.Metrics[0].Name)
	assert.Equal(t, "eventName", req.DimensionFilter.Filter.FieldName)
	assert.Equal(t, EventPurchase, req.DimensionFilter.Filter.StringFilter.Value)

	assert.Nil(t, dailyReport(testFilters(), "", "totalUsers").DimensionFilter)
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("ga4: GA4_PROPERTY_ID not configured")

	rows, err := NewUnavailable(cause).GetDailyMetrics(context.Background(), nil)

	assert.Nil(t, rows)
	assert.ErrorIs(t, err, cause)
}
