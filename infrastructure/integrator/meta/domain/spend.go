package metadomain

import "encoding/json"

// SpendInsight é uma linha diária do edge /insights no nível da conta
type SpendInsight struct {
	AccountCurrency string `json:"account_currency,omitempty"`
	DateStart       string `json:"date_start"`
	DateStop        string `json:"date_stop,omitempty"`
	Spend           string `json:"spend"`
}

// CurrencyAmount é o valor monetário como a Graph API devolve nas transações
type CurrencyAmount struct {
	Amount             string `json:"amount"`
	AmountInHundredths string `json:"amount_in_hundredths,omitempty"`
	Currency           string `json:"currency,omitempty"`
}

// Transaction é uma cobrança do edge /transactions. Time é um timestamp unix em segundos.
type Transaction struct {
	ID     string         `json:"id,omitempty"`
	Time   int64          `json:"time"`
	Amount CurrencyAmount `json:"amount"`
}

// UnmarshalJSON aceita o objeto completo ou o valor simples (string ou número)
func (a *CurrencyAmount) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '{' {
		type plain CurrencyAmount
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*a = CurrencyAmount(p)
		return nil
	}

	var value json.Number
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	a.Amount = value.String()
	return nil
}
