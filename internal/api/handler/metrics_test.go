package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func fixedNow(t *testing.T) {
	t.Helper()
	previous := now
	now = func() time.Time { return time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { now = previous })
}

func rangeWith(start, end string) gomock.Matcher {
	return gomock.Cond(func(dr domain.DateRange) bool {
		return dr.StartKey() == start && dr.EndKey() == end
	})
}

func TestGetMergedMetrics(t *testing.T) {
	log.SetupTestLogger()
	fixedNow(t)

	rows := []domain.MergedRow{{
		Date:            "2024-01-10",
		Purchases:       2,
		PurchaseRevenue: domain.NewMoneyFromFloat(10.5),
		MetaActions:     domain.NewActionSet("Ad created"),
		MetaSpend:       domain.NewMoneyFromFloat(3),
	}}

	tests := []struct {
		name       string
		query      string
		setup      func(m *mocks.MockReporter)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "Sem days usa o padrão",
			query: "",
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().BuildMerged(gomock.Any(), rangeWith("2023-12-11", "2024-01-10")).Return(rows, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"date":"2024-01-10","total_users":0,"add_to_cart":0,"purchases":2,"purchase_revenue":10.5,"meta_actions":["Ad created"],"meta_spend":3}]`,
		},
		{
			name:  "days não numérico usa o padrão",
			query: "?days=abc",
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().BuildMerged(gomock.Any(), rangeWith("2023-12-11", "2024-01-10")).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "days informado",
			query: "?days=2",
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().BuildMerged(gomock.Any(), rangeWith("2024-01-08", "2024-01-10")).Return([]domain.MergedRow{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "start_date e end_date substituem days",
			query: "?days=2&start_date=2024-01-01&end_date=2024-01-03",
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().BuildMerged(gomock.Any(), rangeWith("2024-01-01", "2024-01-03")).Return([]domain.MergedRow{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "start_date sem end_date vai até hoje",
			query: "?start_date=2024-01-09",
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().BuildMerged(gomock.Any(), rangeWith("2024-01-09", "2024-01-10")).Return([]domain.MergedRow{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "days negativo",
			query:      "?days=-1",
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Fim antes do início",
			query:      "?start_date=2024-01-05&end_date=2024-01-01",
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "end_date sem start_date",
			query:      "?end_date=2024-01-01",
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "days acima de MAX_DAYS",
			query:      "?days=366",
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "days no limite do inteiro",
			query:      "?days=9223372036854775807",
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "days igual a MAX_DAYS",
			query: "?days=365",
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().BuildMerged(gomock.Any(), rangeWith("2023-01-10", "2024-01-10")).Return([]domain.MergedRow{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "Intervalo explícito acima de MAX_DAYS",
			query:      "?start_date=2020-01-01&end_date=2024-01-01",
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Falha interna",
			query: "?days=1",
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().BuildMerged(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"boom","code":"SRV_001"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := mocks.NewMockReporter(ctrl)
			tt.setup(reporter)

			rec := httptest.NewRecorder()
			GetMergedMetrics(reporter, 30, 365).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), `"error":`)
				assert.Contains(t, rec.Body.String(), `"code":"VAL_002"`)
			}
		})
	}
}

func TestGetCumulativeChart(t *testing.T) {
	log.SetupTestLogger()
	fixedNow(t)

	t.Run("Projeta as métricas selecionadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().BuildMerged(gomock.Any(), rangeWith("2024-01-09", "2024-01-10")).Return([]domain.MergedRow{
			{Date: "2024-01-09", MetaSpend: domain.NewMoneyFromFloat(10)},
			{Date: "2024-01-10", MetaSpend: domain.NewMoneyFromFloat(5)},
		}, nil)

		rec := httptest.NewRecorder()
		GetCumulativeChart(reporter, 30, 365).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics/cumulative?days=1&metrics=meta_spend", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var chart charting.Chart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
		require.Len(t, chart.Series, 1)
		assert.Equal(t, charting.MetaSpend, chart.Series[0].Metric)
		assert.Equal(t, []charting.Point{{Date: "2024-01-09", Value: 10}, {Date: "2024-01-10", Value: 15}}, chart.Series[0].Points)
	})

	t.Run("Métrica desconhecida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)

		rec := httptest.NewRecorder()
		GetCumulativeChart(reporter, 30, 365).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics/cumulative?metrics=clicks", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
