package domain

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ActionSeparator é usado para juntar ações em CSV e planilhas
const ActionSeparator = " | "

var actionSplitter = regexp.MustCompile(`\s*\|\s*|,\s*`)

// ActionSet é um conjunto ordenado de descrições: ordem de inserção, sem duplicatas
type ActionSet struct {
	items []string
}

func NewActionSet(items ...string) ActionSet {
	s := ActionSet{items: make([]string, 0, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// ParseActionSet normaliza a representação em texto ("a | b" ou "a, b")
func ParseActionSet(raw string) ActionSet {
	s := ActionSet{items: []string{}}
	for _, part := range actionSplitter.Split(raw, -1) {
		s.Add(part)
	}
	return s
}

// Add insere a descrição caso ainda não exista. Strings vazias são ignoradas.
func (s *ActionSet) Add(item string) bool {
	item = strings.TrimSpace(item)
	if item == "" || slices.Contains(s.items, item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

func (s ActionSet) Len() int { return len(s.items) }

func (s ActionSet) Contains(item string) bool {
	return slices.Contains(s.items, item)
}

// Items retorna uma cópia das descrições, nunca nil
func (s ActionSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s ActionSet) Join(sep string) string {
	return strings.Join(s.items, sep)
}

func (s ActionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// UnmarshalJSON aceita lista, string separada por "|" ou ",", ou null
func (s *ActionSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = NewActionSet()
		return nil
	case len(data) > 0 && data[0] == '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = ParseActionSet(raw)
		return nil
	default:
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*s = NewActionSet(items...)
		return nil
	}
}

// ActionsByDate agrupa ações por dia. Dates() itera na ordem da primeira aparição de cada dia.
type ActionsByDate struct {
	order  []string
	byDate map[string]*ActionSet
}

func NewActionsByDate() *ActionsByDate {
	return &ActionsByDate{byDate: make(map[string]*ActionSet)}
}

func (a *ActionsByDate) Add(date, description string) {
	set, ok := a.byDate[date]
	if !ok {
		set = &ActionSet{items: []string{}}
		a.byDate[date] = set
		a.order = append(a.order, date)
	}
	set.Add(description)
}

// Get retorna as ações do dia ou um conjunto vazio
func (a *ActionsByDate) Get(date string) ActionSet {
	if a == nil {
		return NewActionSet()
	}
	set, ok := a.byDate[date]
	if !ok {
		return NewActionSet()
	}
	return NewActionSet(set.items...)
}

func (a *ActionsByDate) Dates() []string {
	if a == nil {
		return []string{}
	}
	return append([]string{}, a.order...)
}

func (a *ActionsByDate) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}
