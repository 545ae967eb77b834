package reporting

import "github.com/vfg2006/growth-dashboard-api/internal/domain"

// AggregateActions agrupa as descrições por data, sem repetição e na ordem em
// que aparecem. Evento sem descrição entra pelo código do tipo.
func AggregateActions(events []domain.ChangeEvent) *domain.ActionsByDate {
	actions := domain.NewActionsByDate()

	for _, event := range events {
		description := event.Description
		if description == "" {
			description = event.EventType
		}
		actions.Add(event.Date, description)
	}

	return actions
}
