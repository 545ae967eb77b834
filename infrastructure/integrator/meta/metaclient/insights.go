package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// GetSpendInsights busca o gasto diário agregado da conta
func (c *MetaClient) GetSpendInsights(ctx context.Context, accountID string, filters *domain.InsigthFilters) ([]metadomain.SpendInsight, error) {
	params := url.Values{}
	params.Set("level", "account")
	params.Set("time_increment", "1")
	params.Set("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.Since(), filters.Until()))
	params.Set("fields", "spend,date_start,date_stop,account_currency")
	params.Set("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))

	return fetchAll[metadomain.SpendInsight](ctx, c, c.endpoint(accountID, "insights", params))
}
