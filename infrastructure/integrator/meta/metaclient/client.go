package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// ErrTokenExpired indica que o access token do Meta precisa ser trocado manualmente
var ErrTokenExpired = errors.New("meta access token expired")

// maxPages evita laço infinito caso a API devolva sempre um cursor
const maxPages = 1000

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	GetActivities(ctx context.Context, accountID string, filters *domain.InsigthFilters) ([]metadomain.Activity, error)
	GetSpendInsights(ctx context.Context, accountID string, filters *domain.InsigthFilters) ([]metadomain.SpendInsight, error)
	GetTransactions(ctx context.Context, accountID string, filters *domain.InsigthFilters) ([]metadomain.Transaction, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPClientTimeout()}
	}

	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: httpClient,
	}
}

// HandleResponse lê o corpo e converte respostas de erro da Graph API
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "meta: failed to read response body")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return nil, fmt.Errorf("meta: unexpected status %d", resp.StatusCode)
	}

	if errResp.IsTokenExpired() {
		return nil, errors.Wrap(ErrTokenExpired, errResp.String())
	}

	return nil, fmt.Errorf("meta: status %d: %s", resp.StatusCode, errResp.String())
}

func (c *MetaClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "meta: failed to create request")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "meta: request to %s failed", redact(rawURL))
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// fetchAll segue paging.next até a última página e junta os dados
func fetchAll[T any](ctx context.Context, c *MetaClient, firstURL string) ([]T, error) {
	var all []T

	next := firstURL
	for page := 1; next != ""; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("meta: pagination exceeded %d pages", maxPages)
		}

		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var resp metadomain.Page[T]
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrapf(err, "meta: failed to decode page %d", page)
		}

		all = append(all, resp.Data...)

		logrus.WithFields(logrus.Fields{
			"url":   redact(next),
			"page":  page,
			"count": len(resp.Data),
		}).Debug("meta: page fetched")

		if resp.Paging.Next == next {
			break
		}
		next = resp.Paging.Next
	}

	return all, nil
}

func (c *MetaClient) endpoint(accountID, edge string, params url.Values) string {
	params.Set("access_token", c.Cfg.Meta.AccessToken)
	return fmt.Sprintf("%s/%s/%s?%s", c.Cfg.Meta.URL, accountPath(accountID), edge, params.Encode())
}

// accountPath garante o prefixo act_ exigido pelos edges da conta de anúncios
func accountPath(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

// redact remove o access token antes de registrar uma URL
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}

	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
