package ga4client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

// pageSize é o limite de linhas por chamada do runReport
const pageSize = 10000

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	RunReport(ctx context.Context, req *analyticsdata.RunReportRequest) ([]*analyticsdata.Row, error)
}

type GA4Client struct {
	property string
	svc      *analyticsdata.Service
	timeout  time.Duration
}

// NewClient cria o cliente da Data API. Com GA4_ENDPOINT definido a autenticação é
// desligada, o que permite apontar para um servidor local.
func NewClient(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*GA4Client, error) {
	if cfg.GA4.PropertyID == "" {
		return nil, errors.New("ga4: GA4_PROPERTY_ID not configured")
	}

	if cfg.GA4.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.GA4.Endpoint), option.WithoutAuthentication())
	} else {
		credentialsJSON, err := os.ReadFile(cfg.GA4.CredentialsFile)
		if err != nil {
			return nil, errors.Wrapf(err, "ga4: read credentials file %s", cfg.GA4.CredentialsFile)
		}
		opts = append(opts,
			option.WithCredentialsJSON(credentialsJSON),
			option.WithScopes(analyticsdata.AnalyticsReadonlyScope),
		)
	}

	svc, err := analyticsdata.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "ga4: create analytics data service")
	}

	return &GA4Client{
		property: fmt.Sprintf("properties/%s", cfg.GA4.PropertyID),
		svc:      svc,
		timeout:  cfg.HTTPClientTimeout(),
	}, nil
}

// RunReport executa o relatório paginando por offset até obter todas as linhas
func (c *GA4Client) RunReport(ctx context.Context, req *analyticsdata.RunReportRequest) ([]*analyticsdata.Row, error) {
	var rows []*analyticsdata.Row

	req.Limit = pageSize
	for offset := int64(0); ; offset += pageSize {
		req.Offset = offset

		resp, err := c.runReportPage(ctx, req)
		if err != nil {
			return nil, errors.Wrap(err, "ga4: runReport failed")
		}

		rows = append(rows, resp.Rows...)

		logrus.WithFields(logrus.Fields{
			"property":  c.property,
			"offset":    offset,
			"rows":      len(resp.Rows),
			"row_count": resp.RowCount,
		}).Debug("ga4: report page fetched")

		if len(resp.Rows) == 0 || offset+int64(len(resp.Rows)) >= resp.RowCount {
			break
		}
	}

	return rows, nil
}

// runReportPage busca uma página respeitando HTTP_CLIENT_TIMEOUT_SECONDS
func (c *GA4Client) runReportPage(ctx context.Context, req *analyticsdata.RunReportRequest) (*analyticsdata.RunReportResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return c.svc.Properties.RunReport(c.property, req).Context(ctx).Do()
}
