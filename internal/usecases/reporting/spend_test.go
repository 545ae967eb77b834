package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

var refNow = time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)

func mustRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	dr, err := domain.NewDateRange(start, end, refNow)
	require.NoError(t, err)
	return dr
}

func money(s string) domain.Money {
	m, err := domain.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func TestReconcileSpend(t *testing.T) {
	dr := mustRange(t, "2024-01-01", "2024-01-03")

	tests := []struct {
		name         string
		insights     []domain.SpendRecord
		transactions []domain.SpendRecord
		expected     map[string]string
	}{
		{
			name:         "Agregado zero usa transações",
			insights:     []domain.SpendRecord{{Date: "2024-01-01", Spend: money("0")}},
			transactions: []domain.SpendRecord{{Date: "2024-01-01", Spend: money("12.50")}},
			expected:     map[string]string{"2024-01-01": "12.5", "2024-01-02": "0", "2024-01-03": "0"},
		},
		{
			name:         "Agregado ausente usa transações",
			transactions: []domain.SpendRecord{{Date: "2024-01-02", Spend: money("12.50")}},
			expected:     map[string]string{"2024-01-01": "0", "2024-01-02": "12.5", "2024-01-03": "0"},
		},
		{
			name:         "Agregado diferente de zero prevalece",
			insights:     []domain.SpendRecord{{Date: "2024-01-01", Spend: money("7.00")}},
			transactions: []domain.SpendRecord{{Date: "2024-01-01", Spend: money("12.50")}},
			expected:     map[string]string{"2024-01-01": "7", "2024-01-02": "0", "2024-01-03": "0"},
		},
		{
			name: "Várias linhas no mesmo dia são somadas",
			insights: []domain.SpendRecord{
				{Date: "2024-01-03", Spend: money("1.105")},
				{Date: "2024-01-03", Spend: money("2.20")},
			},
			expected: map[string]string{"2024-01-01": "0", "2024-01-02": "0", "2024-01-03": "3.31"},
		},
		{
			name: "Transações negativas entram pelo valor absoluto",
			transactions: []domain.SpendRecord{
				{Date: "2024-01-02", Spend: money("-10.00")},
				{Date: "2024-01-02", Spend: money("2.50")},
			},
			expected: map[string]string{"2024-01-01": "0", "2024-01-02": "12.5", "2024-01-03": "0"},
		},
		{
			name:     "Agregado negativo nunca fica negativo",
			insights: []domain.SpendRecord{{Date: "2024-01-01", Spend: money("-3.00")}},
			expected: map[string]string{"2024-01-01": "0", "2024-01-02": "0", "2024-01-03": "0"},
		},
		{
			name:         "Registros fora do período são ignorados",
			insights:     []domain.SpendRecord{{Date: "2023-12-31", Spend: money("5")}},
			transactions: []domain.SpendRecord{{Date: "2024-01-04", Spend: money("5")}},
			expected:     map[string]string{"2024-01-01": "0", "2024-01-02": "0", "2024-01-03": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReconcileSpend(dr, tt.insights, tt.transactions)

			require.Len(t, result, len(tt.expected))
			for date, want := range tt.expected {
				assert.Equal(t, want, result.Get(date).String(), date)
			}
		})
	}
}

func TestSpendReconciler_Reconcile(t *testing.T) {
	dr := mustRange(t, "2024-01-01", "2024-01-02")

	t.Run("Combina as duas origens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSpendSource(ctrl)

		source.EXPECT().GetInsightSpend(gomock.Any(), gomock.Any()).
			Return([]domain.SpendRecord{{Date: "2024-01-01", Spend: money("7.00")}}, nil)
		source.EXPECT().GetTransactionSpend(gomock.Any(), gomock.Any()).
			Return([]domain.SpendRecord{{Date: "2024-01-02", Spend: money("-12.50")}}, nil)

		result := NewSpendReconciler(source).Reconcile(context.Background(), dr)

		assert.Equal(t, "7", result.Get("2024-01-01").String())
		assert.Equal(t, "12.5", result.Get("2024-01-02").String())
	})

	t.Run("Falha nos insights cai para as transações", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSpendSource(ctrl)

		source.EXPECT().GetInsightSpend(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
		source.EXPECT().GetTransactionSpend(gomock.Any(), gomock.Any()).
			Return([]domain.SpendRecord{{Date: "2024-01-01", Spend: money("4.20")}}, nil)

		result := NewSpendReconciler(source).Reconcile(context.Background(), dr)

		assert.Len(t, result, 2)
		assert.Equal(t, "4.2", result.Get("2024-01-01").String())
		assert.True(t, result.Get("2024-01-02").IsZero())
	})

	t.Run("Ambas falham resulta em zeros para todo o período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSpendSource(ctrl)

		source.EXPECT().GetInsightSpend(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		source.EXPECT().GetTransactionSpend(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		result := NewSpendReconciler(source).Reconcile(context.Background(), dr)

		assert.Len(t, result, 2)
		for _, date := range dr.Keys() {
			assert.True(t, result.Get(date).IsZero())
		}
	})
}
