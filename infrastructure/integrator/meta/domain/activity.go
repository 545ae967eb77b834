package metadomain

// Activity é um registro do edge /activities da conta de anúncios
type Activity struct {
	ActorID         string `json:"actor_id,omitempty"`
	ActorName       string `json:"actor_name,omitempty"`
	EventType       string `json:"event_type"`
	EventTime       string `json:"event_time"`
	ObjectID        string `json:"object_id,omitempty"`
	ObjectName      string `json:"object_name,omitempty"`
	ObjectType      string `json:"object_type,omitempty"`
	TranslatedEvent string `json:"translated_event_type,omitempty"`
}

// EventTimeLayout é o formato de event_time devolvido pela Graph API
const EventTimeLayout = "2006-01-02T15:04:05-0700"

const (
	LocalePL = "pl"
	LocaleEN = "en"
)

// EventDescriptions é a lista de tipos de evento reconhecidos com a descrição por idioma.
// Eventos fora desta lista são descartados.
var EventDescriptions = map[string]map[string]string{
	LocalePL: {
		"update_ad_set_target_spec": "Zmieniono grupę odbiorców w zestawie reklam",
		"update_ad_set_budget":      "Zmieniono budżet zestawu reklam",
		"update_ad_set_run_status":  "Zmieniono status zestawu reklam",
		"update_ad_friendly_name":   "Zmieniono nazwę reklamy",
		"create_ad":                 "Utworzono reklamę",
		"update_ad_creative":        "Zmieniono kreację",
		"update_ad_run_status":      "Zmieniono status reklamy",
		"update_campaign_budget":    "Zmieniono budżet kampanii",
		"update_campaign_name":      "Zmieniono nazwę kampanii",
		"create_campaign":           "Utworzono kampanię",
	},
	LocaleEN: {
		"update_ad_set_target_spec": "Ad set audience changed",
		"update_ad_set_budget":      "Ad set budget changed",
		"update_ad_set_run_status":  "Ad set status changed",
		"update_ad_friendly_name":   "Ad name changed",
		"create_ad":                 "Ad created",
		"update_ad_creative":        "Creative changed",
		"update_ad_run_status":      "Ad status changed",
		"update_campaign_budget":    "Campaign budget changed",
		"update_campaign_name":      "Campaign name changed",
		"create_campaign":           "Campaign created",
	},
}

// DescribeEvent retorna a descrição do tipo de evento no idioma pedido.
// Idioma desconhecido cai no polonês; tipo desconhecido retorna ok=false.
func DescribeEvent(locale, eventType string) (string, bool) {
	descriptions, ok := EventDescriptions[locale]
	if !ok {
		descriptions = EventDescriptions[LocalePL]
	}

	description, ok := descriptions[eventType]
	return description, ok
}
