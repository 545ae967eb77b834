package ga4client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

func TestGA4Client_RunReport(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/properties/123:runReport", r.URL.Path)

		var req analyticsdata.RunReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-01-01", req.DateRanges[0].StartDate)

		fmt.Fprint(w, `{"rows":[
			{"dimensionValues":[{"value":"20240101"}],"metricValues":[{"value":"5"},{"value":"10.50"}]},
			{"dimensionValues":[{"value":"20240102"}],"metricValues":[{"value":"7"},{"value":"0"}]}
		],"rowCount":2}`)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.GA4.PropertyID = "123"
	cfg.GA4.Endpoint = server.URL + "/"

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)

	rows, err := client.RunReport(context.Background(), &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{StartDate: "2024-01-01", EndDate: "2024-01-02"}},
		Dimensions: []*analyticsdata.Dimension{{Name: "date"}},
		Metrics:    []*analyticsdata.Metric{{Name: "totalUsers"}, {Name: "purchaseRevenue"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, rows, 2)
	assert.Equal(t, "20240101", rows[0].DimensionValues[0].Value)
	assert.Equal(t, "10.50", rows[0].MetricValues[1].Value)
}

func TestGA4Client_RunReport_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"permission denied","status":"PERMISSION_DENIED"}}`)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.GA4.PropertyID = "123"
	cfg.GA4.Endpoint = server.URL + "/"

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)

	_, err = client.RunReport(context.Background(), &analyticsdata.RunReportRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestNewClient_RequiresProperty(t *testing.T) {
	_, err := NewClient(context.Background(), &config.Config{})

	assert.Error(t, err)
}

func TestGA4Client_RunReport_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.GA4.PropertyID = "123"
	cfg.GA4.Endpoint = server.URL + "/"
	cfg.Reporting.HTTPClientTimeoutSeconds = 30

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, client.timeout)

	client.timeout = 50 * time.Millisecond

	started := time.Now()
	_, err = client.RunReport(context.Background(), &analyticsdata.RunReportRequest{})

	require.Error(t, err)
	assert.Less(t, time.Since(started), 2*time.Second)
}
