package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

// GetActivities busca o log de alterações da conta no período
func (c *MetaClient) GetActivities(ctx context.Context, accountID string, filters *domain.InsigthFilters) ([]metadomain.Activity, error) {
	params := url.Values{}
	params.Set("since", filters.Since())
	params.Set("until", filters.Until())
	params.Set("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))

	return fetchAll[metadomain.Activity](ctx, c, c.endpoint(accountID, "activities", params))
}
