package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// GetTransactions busca as cobranças da conta. O período vai do início do
// primeiro dia até o último segundo do último dia, no fuso do intervalo.
func (c *MetaClient) GetTransactions(ctx context.Context, accountID string, filters *domain.InsigthFilters) ([]metadomain.Transaction, error) {
	start, end := filters.Bounds()

	params := url.Values{}
	params.Set("time_start", strconv.FormatInt(start.Unix(), 10))
	params.Set("time_end", strconv.FormatInt(end.Unix(), 10))
	params.Set("fields", "id,time,amount")
	params.Set("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))

	return fetchAll[metadomain.Transaction](ctx, c, c.endpoint(accountID, "transactions", params))
}
