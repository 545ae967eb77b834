package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces é a precisão de valores monetários (unidade menor da moeda)
const MoneyPlaces = 2

// Money é um valor monetário decimal, serializado em JSON como número
type Money struct {
	decimal.Decimal
}

var ZeroMoney = Money{Decimal: decimal.Zero}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func NewMoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

// ParseMoney converte o texto decimal retornado pelas APIs
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroMoney, err
	}
	return Money{Decimal: d}, nil
}

func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

func (m Money) Abs() Money {
	return Money{Decimal: m.Decimal.Abs()}
}

// Rounded arredonda para duas casas decimais
func (m Money) Rounded() Money {
	return Money{Decimal: m.Decimal.Round(MoneyPlaces)}
}

// NonNegative retorna zero para valores negativos
func (m Money) NonNegative() Money {
	if m.Decimal.IsNegative() {
		return ZeroMoney
	}
	return m
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

func (m Money) Float64() float64 {
	return m.Decimal.Round(MoneyPlaces).InexactFloat64()
}

// MarshalJSON escreve o valor arredondado sem aspas
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.Round(MoneyPlaces).String()), nil
}

// UnmarshalJSON aceita número, string numérica ou null
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	return m.Decimal.UnmarshalJSON(data)
}
