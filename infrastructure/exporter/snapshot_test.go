package exporter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestSnapshotExporter_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricsSnapshotRepository(ctrl)
	exporter := NewSnapshotExporter(repo)
	rows := sampleRows()

	repo.EXPECT().ReplaceAll(gomock.Any(), "run1", rows).Return(nil)
	assert.NoError(t, exporter.Write(context.Background(), "run1", rows))

	dbErr := errors.New("connection refused")
	repo.EXPECT().ReplaceAll(gomock.Any(), "run2", rows).Return(dbErr)
	assert.ErrorIs(t, exporter.Write(context.Background(), "run2", rows), dbErr)

	assert.Equal(t, SinkDatabase, exporter.Name())
}
