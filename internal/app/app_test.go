package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
)

func TestNewReporter_WithoutGA4(t *testing.T) {
	cfg := &config.Config{
		Meta:      config.Meta{URL: "http://localhost/v19.0", PageLimit: 100},
		Reporting: config.Reporting{HTTPClientTimeoutSeconds: 1},
	}

	assert.NotNil(t, NewReporter(context.Background(), cfg))
}

func TestNewExporter_CSVOnly(t *testing.T) {
	cfg := &config.Config{
		Export: config.Export{
			Days:    7,
			CSVPath: filepath.Join(t.TempDir(), "out.csv"),
		},
	}

	svc, cleanup, err := NewExporter(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, svc)
}
