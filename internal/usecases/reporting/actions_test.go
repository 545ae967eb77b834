package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

func TestAggregateActions(t *testing.T) {
	events := []domain.ChangeEvent{
		{Date: "2024-01-02", EventType: "create_ad", Description: "Utworzono reklamę"},
		{Date: "2024-01-01", EventType: "update_ad_set_budget", Description: "Zmieniono budżet zestawu reklam"},
		{Date: "2024-01-02", EventType: "create_ad", Description: "Utworzono reklamę"},
		{Date: "2024-01-02", EventType: "update_campaign_name", Description: "Zmieniono nazwę kampanii"},
		{Date: "2024-01-01", EventType: "create_campaign"},
	}

	actions := AggregateActions(events)

	assert.Equal(t, []string{"2024-01-02", "2024-01-01"}, actions.Dates())
	assert.Equal(t, []string{"Utworzono reklamę", "Zmieniono nazwę kampanii"}, actions.Get("2024-01-02").Items())
	assert.Equal(t, []string{"Zmieniono budżet zestawu reklam", "create_campaign"}, actions.Get("2024-01-01").Items())
	assert.Equal(t, 0, actions.Get("2024-01-03").Len())
}

func TestAggregateActions_DuplicateCreateAd(t *testing.T) {
	events := []domain.ChangeEvent{
		{Date: "2024-01-01", EventType: "create_ad", Description: "Utworzono reklamę", ObjectName: "A"},
		{Date: "2024-01-01", EventType: "create_ad", Description: "Utworzono reklamę", ObjectName: "B"},
		{Date: "2024-01-01", EventType: "create_ad", Description: "Utworzono reklamę", ObjectName: "C"},
	}

	actions := AggregateActions(events)

	assert.Equal(t, []string{"Utworzono reklamę"}, actions.Get("2024-01-01").Items())
}

func TestAggregateActions_Empty(t *testing.T) {
	actions := AggregateActions(nil)

	assert.Equal(t, 0, actions.Len())
	assert.Equal(t, []string{}, actions.Dates())
}
