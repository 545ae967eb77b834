package exporting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/exporting/mocks"
	reportingmocks "github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Run(t *testing.T) {
	rows := []domain.MergedRow{
		{Date: "2024-01-01", TotalUsers: 1, MetaActions: domain.NewActionSet()},
		{Date: "2024-01-02", TotalUsers: 2, MetaActions: domain.NewActionSet()},
	}

	t.Run("Grava em todos os destinos mesmo com falha em um deles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingmocks.NewMockReporter(ctrl)
		csvSink := mocks.NewMockSink(ctrl)
		sheetsSink := mocks.NewMockSink(ctrl)

		var capturedRange domain.DateRange
		reporter.EXPECT().BuildMerged(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dr domain.DateRange) ([]domain.MergedRow, error) {
				capturedRange = dr
				return rows, nil
			})

		var runID string
		csvSink.EXPECT().Name().Return("csv").AnyTimes()
		csvSink.EXPECT().Write(gomock.Any(), gomock.Any(), rows).
			DoAndReturn(func(_ context.Context, id string, _ []domain.MergedRow) error {
				runID = id
				return errors.New("disk full")
			})
		sheetsSink.EXPECT().Name().Return("sheets").AnyTimes()
		sheetsSink.EXPECT().Write(gomock.Any(), gomock.Any(), rows).
			DoAndReturn(func(_ context.Context, id string, _ []domain.MergedRow) error {
				assert.Equal(t, runID, id)
				return nil
			})

		result, err := exporting.NewService(reporter, 30, csvSink, sheetsSink).Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 31, capturedRange.Len())
		assert.Equal(t, runID, result.RunID)
		assert.Equal(t, 2, result.Rows)
		require.Len(t, result.Sinks, 2)
		assert.Equal(t, "csv", result.Sinks[0].Sink)
		assert.Equal(t, "disk full", result.Sinks[0].Error)
		assert.Equal(t, "sheets", result.Sinks[1].Sink)
		assert.Empty(t, result.Sinks[1].Error)
		assert.Equal(t, 2, result.Sinks[1].Rows)
		assert.True(t, result.Failed())
	})

	t.Run("Erro ao montar as linhas interrompe a exportação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingmocks.NewMockReporter(ctrl)
		sink := mocks.NewMockSink(ctrl)

		reporter.EXPECT().BuildMerged(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

		result, err := exporting.NewService(reporter, 7, sink).Run(context.Background())

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
	})

	t.Run("Sem destinos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingmocks.NewMockReporter(ctrl)

		_, err := exporting.NewService(reporter, 7).Run(context.Background())

		assert.ErrorIs(t, err, exporting.ErrNoSinks)
	})
}
