package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server: config.Server{
			Host:               "localhost",
			Port:               "0",
			FrontendDistPath:   t.TempDir(),
			CORSAllowedOrigins: []string{"*"},
		},
		Reporting: config.Reporting{DefaultDays: 30, MaxDays: 365},
	}
}

func TestServer_Routes(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().BuildMerged(gomock.Any(), gomock.Any()).Return([]domain.MergedRow{}, nil)

	srv, err := New(testConfig(t), reporter, nil)
	require.NoError(t, err)
	h := srv.Handler()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/api/metrics?days=1", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
		// sem ExportTrigger as rotas de exportação não existem
		{method: http.MethodPost, path: "/api/export/run", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
		})
	}
}

func TestNew_RequiresReporter(t *testing.T) {
	_, err := New(testConfig(t), nil, nil)
	assert.Error(t, err)
}
